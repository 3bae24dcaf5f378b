package service

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/poller"
	"github.com/samandr77/microservices/checkout/internal/surface"
)

const statePolling = "polling"

// run is one payment attempt of an order: a surface and the poll watching it.
type run struct {
	order     entity.OrderRef
	userID    uuid.UUID
	method    entity.PaymentMethod
	kind      entity.SurfaceKind
	cfg       poller.Config
	cancel    context.CancelFunc
	handle    surface.Handle
	done      chan struct{}
	startedAt time.Time

	mu         sync.Mutex
	status     entity.PaymentStatus
	attempts   int
	state      poller.State
	isFinished bool
	finishedAt time.Time
	// pending redelivers an outcome whose reconciliation failed.
	pending func(ctx context.Context) error
}

// stop cancels the poll and closes the surface. It does not wait for the poll to return.
func (r *run) stop() {
	r.cancel()
	r.handle.Close()
}

func (r *run) update(status entity.PaymentStatus, attempts int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.status = status
	r.attempts = attempts
}

func (r *run) setPending(fn func(ctx context.Context) error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending = fn
}

// redeliver retries a failed reconciliation. It reports whether there was one to retry.
func (r *run) redeliver(ctx context.Context) (bool, error) {
	r.mu.Lock()
	fn := r.pending
	r.mu.Unlock()

	if fn == nil {
		return false, nil
	}

	err := fn(ctx)
	if err != nil {
		return true, err
	}

	r.setPending(nil)

	return true, nil
}

// paid reports whether the gateway confirmed the payment of this run.
func (r *run) paid() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.isFinished && r.state.Result == poller.ResultCompleted
}

func (r *run) finish(state poller.State, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = state
	r.attempts = state.Attempts
	r.isFinished = true
	r.finishedAt = at

	// Timeout keeps a QR on screen: the payment may still go through.
	if state.Result == poller.ResultCancelled {
		r.handle.Close()
	}
}

func (r *run) finished() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.isFinished
}

func (r *run) finishedBefore(t time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.isFinished && r.pending == nil && r.finishedAt.Before(t)
}

func (r *run) snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Order:       r.order,
		Method:      r.method,
		Surface:     r.kind,
		Status:      r.status,
		Attempts:    r.attempts,
		MaxAttempts: max(r.cfg.MaxAttempts, 1),
		State:       statePolling,
		StartedAt:   r.startedAt,
	}

	if r.isFinished {
		snap.State = r.state.Result.String()
	}

	return snap
}
