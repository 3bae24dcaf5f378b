package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP              HTTP
	Logger            Logger
	Postgres          Postgres
	Redis             Redis
	Kafka             Kafka
	Mailer            Mailer
	Poll              Poll
	Gateways          Gateways
	AuthServiceURL    string        `env:"AUTH_SERVICE_URL"`
	AuthRetryAttempts int           `env:"AUTH_RETRY_ATTEMPTS" envDefault:"2"`
	StorefrontURL     string        `env:"STOREFRONT_API_URL"`
	StorefrontTimeout time.Duration `env:"STOREFRONT_API_TIMEOUT" envDefault:"10s"`
	NotifyChannel     string        `env:"NOTIFY_CHANNEL" envDefault:"kafka"` // kafka or mail
	OutcomeRetention  time.Duration `env:"OUTCOME_RETENTION" envDefault:"720h"`
	FinishedRunTTL    time.Duration `env:"FINISHED_RUN_TTL" envDefault:"1h"`
	PruneInterval     time.Duration `env:"PRUNE_INTERVAL" envDefault:"1h"`
	ReconcileInterval time.Duration `env:"RECONCILE_RETRY_INTERVAL" envDefault:"30s"`
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Redis struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD" envDefault:""`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	FlashTTL time.Duration `env:"REDIS_FLASH_TTL" envDefault:"1h"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	NotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"notifications"`
}

type Mailer struct {
	Host     string `env:"MAILER_HOST" envDefault:""`
	Port     int    `env:"MAILER_PORT" envDefault:"465"`
	Login    string `env:"MAILER_LOGIN" envDefault:""`
	Password string `env:"MAILER_PASSWORD" envDefault:""`
	From     string `env:"MAILER_FROM" envDefault:"shop@example.com"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Antique Store"`
}

// Poll holds attempt budgets per payment surface.
type Poll struct {
	RedirectMaxAttempts int           `env:"POLL_REDIRECT_MAX_ATTEMPTS" envDefault:"120"`
	RedirectInterval    time.Duration `env:"POLL_REDIRECT_INTERVAL" envDefault:"2s"`
	QRMaxAttempts       int           `env:"POLL_QR_MAX_ATTEMPTS" envDefault:"360"`
	QRInterval          time.Duration `env:"POLL_QR_INTERVAL" envDefault:"5s"`
}

type Gateways struct {
	VNPaySurface string        `env:"GATEWAY_VNPAY_SURFACE" envDefault:"redirect"`
	MomoSurface  string        `env:"GATEWAY_MOMO_SURFACE" envDefault:"qr"`
	SessionTTL   time.Duration `env:"GATEWAY_SESSION_TTL" envDefault:"30m"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
