package surface

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

// Redirect sends the user to the gateway's hosted payment page.
type Redirect struct {
	opener Opener
}

func NewRedirect(opener Opener) *Redirect {
	return &Redirect{
		opener: opener,
	}
}

// Open publishes the redirect URL. A blocked opener yields a no-op handle and
// ErrSurfaceBlocked; callers keep polling in that case.
func (r *Redirect) Open(ctx context.Context, session entity.PaymentSession) (Handle, error) {
	if session.RedirectURL == "" {
		return Noop, fmt.Errorf("%w: session has no redirect url", entity.ErrInvalidArgument)
	}

	gen, err := r.opener.Publish(ctx, View{
		OrderID:     session.OrderID,
		Kind:        entity.SurfaceRedirect,
		RedirectURL: session.RedirectURL,
		ExpiresAt:   session.ExpiresAt,
	})
	if err != nil {
		if errors.Is(err, entity.ErrSurfaceBlocked) {
			slog.WarnContext(ctx, "payment window blocked", "order_id", session.OrderID)
			return Noop, err
		}

		return Noop, fmt.Errorf("publish redirect: %w", err)
	}

	slog.InfoContext(ctx, "payment window opened", "order_id", session.OrderID, "kind", entity.SurfaceRedirect)

	return newHandle(func() {
		r.opener.Close(session.OrderID, gen)
	}), nil
}
