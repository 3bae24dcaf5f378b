package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/samandr77/microservices/checkout/internal/api"
	"github.com/samandr77/microservices/checkout/internal/clients/auth"
	"github.com/samandr77/microservices/checkout/internal/clients/storefront"
	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/navigation"
	"github.com/samandr77/microservices/checkout/internal/notify"
	"github.com/samandr77/microservices/checkout/internal/poller"
	"github.com/samandr77/microservices/checkout/internal/reconciler"
	"github.com/samandr77/microservices/checkout/internal/repository"
	"github.com/samandr77/microservices/checkout/internal/service"
	"github.com/samandr77/microservices/checkout/internal/surface"
	"github.com/samandr77/microservices/checkout/pkg/broker"
	"github.com/samandr77/microservices/checkout/pkg/config"
	"github.com/samandr77/microservices/checkout/pkg/job"
	"github.com/samandr77/microservices/checkout/pkg/logger"
	"github.com/samandr77/microservices/checkout/pkg/postgres"
)

const (
	ReadTimeout      = 3 * time.Second
	WriteTimeout     = 15 * time.Second
	ShutdownTimeout  = 10 * time.Second
	PruneTimeout     = time.Minute
	ReconcileTimeout = 20 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	repo := repository.New(pool)

	rdb, err := navigation.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	panicOnErr("connect to redis", err)
	defer rdb.Close()

	flash := navigation.NewStore(rdb, cfg.Redis.FlashTTL)

	var notifier reconciler.Notifier

	switch cfg.NotifyChannel {
	case "mail":
		notifier = notify.NewMail(cfg.Mailer)
	default:
		producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
		defer producer.Close()

		notifier = notify.NewBroker(producer)
	}

	clock := clockwork.NewRealClock()

	board := surface.NewBoard()
	presenters := map[entity.SurfaceKind]surface.Presenter{
		entity.SurfaceRedirect: surface.NewRedirect(board),
		entity.SurfaceQR:       surface.NewQR(board, clock),
	}

	storefrontClient := storefront.NewClient(cfg.StorefrontURL, cfg.StorefrontTimeout)
	authClient := auth.NewClient(cfg.AuthServiceURL, cfg.AuthRetryAttempts)

	rec := reconciler.New(repo, repo, notifier, flash, clock)

	surfaces, err := gatewaySurfaces(cfg.Gateways)
	panicOnErr("parse gateway surfaces", err)

	s := service.New(repo, storefrontClient, rec, flash, board, presenters, clock, service.Config{
		Surfaces: surfaces,
		Polls: map[entity.SurfaceKind]poller.Config{
			entity.SurfaceRedirect: {MaxAttempts: cfg.Poll.RedirectMaxAttempts, Interval: cfg.Poll.RedirectInterval},
			entity.SurfaceQR:       {MaxAttempts: cfg.Poll.QRMaxAttempts, Interval: cfg.Poll.QRInterval},
		},
		SessionTTL:       cfg.Gateways.SessionTTL,
		OutcomeRetention: cfg.OutcomeRetention,
		FinishedRunTTL:   cfg.FinishedRunTTL,
	})

	jobs := job.NewService(clock).
		RegisterJob("prune outcomes", cfg.PruneInterval, s.Prune).
		WithTimeout(PruneTimeout).
		RegisterJob("retry reconciliation", cfg.ReconcileInterval, s.ReconcilePending).
		WithTimeout(ReconcileTimeout)
	jobs.Start(ctx)

	router := api.NewRouter(api.NewHandler(s), api.NewMiddleware(authClient))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, stop := context.WithTimeout(ctx, ShutdownTimeout)
		defer stop()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		s.Shutdown()

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func gatewaySurfaces(cfg config.Gateways) (map[entity.PaymentMethod]entity.SurfaceKind, error) {
	surfaces := map[entity.PaymentMethod]entity.SurfaceKind{
		entity.PaymentMethodVNPay: entity.SurfaceKind(cfg.VNPaySurface),
		entity.PaymentMethodMomo:  entity.SurfaceKind(cfg.MomoSurface),
	}

	for method, kind := range surfaces {
		err := kind.Validate()
		if err != nil {
			return nil, fmt.Errorf("gateway %s: %w", method, err)
		}
	}

	return surfaces, nil
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
