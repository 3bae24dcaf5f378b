package reconciler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jonboulle/clockwork"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -typed

type Ledger interface {
	ClaimOutcome(ctx context.Context, orderID string, outcome entity.Outcome, at time.Time) (bool, error)
}

type CartCleaner interface {
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type Notifier interface {
	Notify(ctx context.Context, n entity.Notification) error
}

type Navigator interface {
	Navigate(ctx context.Context, userID uuid.UUID, orderID string, state entity.NavigationState) error
}

const (
	MessagePlaced        = "Order placed successfully!"
	MessageNoPaymentLink = "Order placed, but the payment link could not be generated. You can retry the payment from the order page."
	MessagePaid          = "Payment successful! Your order has been confirmed."
	MessageFailed        = "Payment failed. You can retry the payment from the order page."
)

// Target is the order a terminal outcome applies to.
type Target struct {
	User  entity.User
	Order entity.OrderRef
	// Stop ends the payment run and closes its surface. May be nil.
	Stop func()
}

func (t Target) stop() {
	if t.Stop != nil {
		t.Stop()
	}
}

// Reconciler applies each terminal outcome of an order once, no matter how
// many times it is delivered.
type Reconciler struct {
	ledger Ledger
	cart   CartCleaner
	notify Notifier
	nav    Navigator
	clock  clockwork.Clock
}

func New(ledger Ledger, cart CartCleaner, notify Notifier, nav Navigator, clock clockwork.Clock) *Reconciler {
	return &Reconciler{
		ledger: ledger,
		cart:   cart,
		notify: notify,
		nav:    nav,
		clock:  clock,
	}
}

// OrderPlaced finishes a checkout that needs no online payment confirmation.
func (r *Reconciler) OrderPlaced(ctx context.Context, t Target, message string) error {
	ctx = logger.WithOrderID(ctx, t.Order.ID)

	claimed, err := r.claim(ctx, t, entity.OutcomePlaced)
	if err != nil || !claimed {
		return err
	}

	if message == "" {
		message = MessagePlaced
	}

	return errors.Join(
		r.clearCart(ctx, t),
		r.navigate(ctx, t, entity.NavigationState{Message: message}),
	)
}

// PaymentCompleted claims the paid outcome, then clears the cart, notifies and
// navigates. Delivering it again after an error is safe.
func (r *Reconciler) PaymentCompleted(ctx context.Context, t Target, report entity.StatusReport) error {
	ctx = logger.WithOrderID(ctx, t.Order.ID)

	// The run ends either way; a failed claim is left to the caller to deliver again.
	defer t.stop()

	claimed, err := r.claim(ctx, t, entity.OutcomePaid)
	if err != nil || !claimed {
		return err
	}

	slog.InfoContext(ctx, "payment confirmed", "transaction_id", report.TransactionID)

	return errors.Join(
		r.clearCart(ctx, t),
		r.send(ctx, t, entity.OutcomePaid, "Payment received",
			fmt.Sprintf("Your payment for order %s was successful.", t.Order)),
		r.navigate(ctx, t, entity.NavigationState{Message: MessagePaid, PaymentSuccess: true}),
	)
}

// PaymentFailed leaves the cart as it is so the user can retry.
func (r *Reconciler) PaymentFailed(ctx context.Context, t Target, report *entity.StatusReport) error {
	ctx = logger.WithOrderID(ctx, t.Order.ID)

	defer t.stop()

	claimed, err := r.claim(ctx, t, entity.OutcomeFailed)
	if err != nil || !claimed {
		return err
	}

	if report != nil {
		slog.InfoContext(ctx, "payment failed", "transaction_id", report.TransactionID)
	}

	return errors.Join(
		r.send(ctx, t, entity.OutcomeFailed, "Payment failed",
			fmt.Sprintf("The payment for order %s did not go through. You can retry it from your order page.", t.Order)),
		r.navigate(ctx, t, entity.NavigationState{Message: MessageFailed, PaymentFailed: true}),
	)
}

// PaymentTimedOut is silent: the payment may still complete out of band, so
// nothing is claimed and a later run can reconcile the order.
func (r *Reconciler) PaymentTimedOut(ctx context.Context, t Target, attempts int) {
	ctx = logger.WithOrderID(ctx, t.Order.ID)

	slog.InfoContext(ctx, "payment status unknown after poll budget", "attempts", attempts)
}

func (r *Reconciler) claim(ctx context.Context, t Target, outcome entity.Outcome) (bool, error) {
	claimed, err := r.ledger.ClaimOutcome(ctx, t.Order.ID, outcome, r.clock.Now())
	if err != nil {
		return false, fmt.Errorf("reconcile order %s as %s: %w", t.Order, outcome, err)
	}

	if !claimed {
		slog.DebugContext(ctx, "outcome already reconciled", "outcome", outcome)
	}

	return claimed, nil
}

func (r *Reconciler) clearCart(ctx context.Context, t Target) error {
	if err := r.cart.ClearCart(ctx, t.User.ID); err != nil {
		slog.ErrorContext(ctx, "clear cart", "error", err)
		return fmt.Errorf("clear cart: %w", err)
	}

	return nil
}

func (r *Reconciler) send(ctx context.Context, t Target, outcome entity.Outcome, subject, message string) error {
	err := r.notify.Notify(ctx, entity.Notification{
		Tag:       entity.NotificationTag(outcome, t.Order.ID),
		OrderID:   t.Order.ID,
		Outcome:   outcome,
		Subject:   subject,
		Message:   message,
		Recipient: t.User.Email,
		CreatedAt: r.clock.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "send notification", "error", err)
		return fmt.Errorf("notify: %w", err)
	}

	return nil
}

func (r *Reconciler) navigate(ctx context.Context, t Target, state entity.NavigationState) error {
	if err := r.nav.Navigate(ctx, t.User.ID, t.Order.ID, state); err != nil {
		slog.ErrorContext(ctx, "navigate to order", "error", err)
		return fmt.Errorf("navigate: %w", err)
	}

	return nil
}
