package surface

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

const countdownStep = time.Second

// QR shows a scannable code with bank details and a countdown to session expiry.
// Reaching zero only marks the view expired: the payment may still complete and
// the status poll is left running.
type QR struct {
	board *Board
	clock clockwork.Clock
}

func NewQR(board *Board, clock clockwork.Clock) *QR {
	return &QR{
		board: board,
		clock: clock,
	}
}

func (q *QR) Open(ctx context.Context, session entity.PaymentSession) (Handle, error) {
	if session.QRImageURL == "" {
		return Noop, fmt.Errorf("%w: session has no qr image", entity.ErrInvalidArgument)
	}

	bank := session.Bank
	remaining := session.Remaining(q.clock.Now())

	gen, err := q.board.Publish(ctx, View{
		OrderID:          session.OrderID,
		Kind:             entity.SurfaceQR,
		QRImageURL:       session.QRImageURL,
		Bank:             &bank,
		PaymentMessage:   session.PaymentMessage,
		ExpiresAt:        session.ExpiresAt,
		RemainingSeconds: seconds(remaining),
		Expired:          remaining == 0,
	})
	if err != nil {
		if errors.Is(err, entity.ErrSurfaceBlocked) {
			return Noop, err
		}

		return Noop, fmt.Errorf("publish qr: %w", err)
	}

	slog.InfoContext(ctx, "payment qr shown", "order_id", session.OrderID, "expires_in", remaining.String())

	stop := make(chan struct{})
	done := make(chan struct{})

	go q.countdown(context.WithoutCancel(ctx), session, gen, stop, done)

	return newHandle(func() {
		close(stop)
		<-done
		q.board.Close(session.OrderID, gen)
	}), nil
}

func (q *QR) countdown(ctx context.Context, session entity.PaymentSession, gen uint64, stop, done chan struct{}) {
	defer close(done)

	for {
		remaining := session.Remaining(q.clock.Now())

		alive := q.board.Update(session.OrderID, gen, func(v *View) {
			v.RemainingSeconds = seconds(remaining)
			v.Expired = remaining == 0
		})
		if !alive {
			return
		}

		if remaining == 0 {
			slog.InfoContext(ctx, "payment qr expired", "order_id", session.OrderID)
			return
		}

		select {
		case <-stop:
			return
		case <-q.clock.After(min(countdownStep, remaining)):
		}
	}
}

func seconds(d time.Duration) int {
	return int(d / time.Second)
}
