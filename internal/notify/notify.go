package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/pkg/broker"
	"github.com/samandr77/microservices/checkout/pkg/config"
)

// TagHeader carries the notification tag so that downstream consumers can drop duplicates.
const TagHeader = "X-Notification-Tag"

type Publisher interface {
	Publish(ctx context.Context, key string, event broker.NotificationEvent) error
}

// Broker hands notifications over to the notification service through kafka.
type Broker struct {
	p Publisher
}

func NewBroker(p Publisher) *Broker {
	return &Broker{p: p}
}

func (b *Broker) Notify(ctx context.Context, n entity.Notification) error {
	var recipients []string
	if n.Recipient != "" {
		recipients = []string{n.Recipient}
	}

	err := b.p.Publish(ctx, n.Tag, broker.NotificationEvent{
		Type:       "email",
		Tag:        n.Tag,
		OrderID:    n.OrderID,
		Outcome:    n.Outcome.String(),
		Subject:    n.Subject,
		Message:    n.Message,
		Recipients: recipients,
	})
	if err != nil {
		return fmt.Errorf("publish notification %s: %w", n.Tag, err)
	}

	slog.DebugContext(ctx, "notification published", "tag", n.Tag)

	return nil
}

type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mail sends notifications directly over SMTP.
type Mail struct {
	dialer   Dialer
	from     string
	fromName string
}

func NewMail(cfg config.Mailer) *Mail {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return NewMailWithDialer(dialer, cfg.From, cfg.FromName)
}

func NewMailWithDialer(d Dialer, from, fromName string) *Mail {
	return &Mail{
		dialer:   d,
		from:     from,
		fromName: fromName,
	}
}

func (m *Mail) Notify(ctx context.Context, n entity.Notification) error {
	if n.Recipient == "" {
		return fmt.Errorf("%w: notification %s has no recipient", entity.ErrInvalidArgument, n.Tag)
	}

	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", n.Recipient)
	msg.SetHeader("Subject", n.Subject)
	msg.SetHeader(TagHeader, n.Tag)
	msg.SetBody("text/plain", n.Message)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.DebugContext(ctx, "notification mailed", "tag", n.Tag)

	return nil
}
