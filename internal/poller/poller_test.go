package poller_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/poller"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock interface {
	clockwork.Clock
	Advance(d time.Duration)
	BlockUntil(n int)
}

type fakeQuerier struct {
	mu      sync.Mutex
	replies []reply
	ids     []string
	block   chan struct{} // when set, queries wait for ctx to be cancelled
	entered chan struct{}
}

func (q *fakeQuerier) PaymentStatus(ctx context.Context, identifier string) (entity.StatusReport, error) {
	q.mu.Lock()
	n := len(q.ids)
	q.ids = append(q.ids, identifier)
	q.mu.Unlock()

	if q.block != nil {
		close(q.entered)
		<-ctx.Done()

		return entity.StatusReport{Identifier: identifier, Status: entity.PaymentStatusCompleted}, nil
	}

	r := q.replies[len(q.replies)-1]
	if n < len(q.replies) {
		r = q.replies[n]
	}

	if r.err != nil {
		return entity.StatusReport{}, r.err
	}

	return entity.StatusReport{Identifier: identifier, Status: r.status}, nil
}

func (q *fakeQuerier) calls() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.ids)
}

type recorder struct {
	mu        sync.Mutex
	updates   []entity.PaymentStatus
	attempts  []int
	completes int
	errs      []*poller.PollError
}

func (r *recorder) handlers() poller.Handlers {
	return poller.Handlers{
		OnUpdate: func(status entity.PaymentStatus, _ entity.StatusReport, attempts int) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.updates = append(r.updates, status)
			r.attempts = append(r.attempts, attempts)
		},
		OnComplete: func(entity.StatusReport) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.completes++
		},
		OnError: func(err *poller.PollError) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.errs = append(r.errs, err)
		},
	}
}

// runTicking starts Run and advances the fake clock through the given number of waits.
func runTicking(
	ctx context.Context,
	p *poller.Poller,
	clock fakeClock,
	cfg poller.Config,
	h poller.Handlers,
	waits int,
) poller.State {
	done := make(chan poller.State, 1)

	go func() {
		done <- p.Run(ctx, entity.OrderRef{ID: "42", Number: "ORD-42"}, cfg, h)
	}()

	for i := 0; i < waits; i++ {
		clock.BlockUntil(1)
		clock.Advance(cfg.Interval)
	}

	return <-done
}

func TestPoller_Run_CompletedAfterPending(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	start := clock.Now()
	q := &fakeQuerier{replies: statuses(
		entity.PaymentStatusPending,
		entity.PaymentStatusPending,
		entity.PaymentStatusCompleted,
	)}
	rec := &recorder{}
	cfg := poller.Config{MaxAttempts: 3, Interval: 10 * time.Millisecond}

	s := runTicking(context.Background(), poller.New(q, clock), clock, cfg, rec.handlers(), 2)

	require.Equal(t, poller.ResultCompleted, s.Result)
	require.Equal(t, []string{"ORD-42", "ORD-42", "ORD-42"}, q.ids)
	require.Len(t, rec.updates, 3)
	require.Equal(t, []int{1, 2, 3}, rec.attempts)
	require.Equal(t, 1, rec.completes)
	require.Empty(t, rec.errs)
	require.Equal(t, 20*time.Millisecond, clock.Since(start))
}

func TestPoller_Run_Timeout(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	start := clock.Now()
	q := &fakeQuerier{replies: statuses(entity.PaymentStatusPending)}
	rec := &recorder{}
	cfg := poller.Config{MaxAttempts: 4, Interval: 2 * time.Second}

	s := runTicking(context.Background(), poller.New(q, clock), clock, cfg, rec.handlers(), 3)

	require.Equal(t, poller.ResultTimeout, s.Result)
	require.Equal(t, 4, q.calls())
	require.Zero(t, rec.completes)
	require.Len(t, rec.errs, 1)
	require.ErrorIs(t, rec.errs[0], entity.ErrPollTimeout)
	require.LessOrEqual(t, clock.Since(start), time.Duration(cfg.MaxAttempts)*cfg.Interval)
}

func TestPoller_Run_PaymentFailed(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	q := &fakeQuerier{replies: statuses(entity.PaymentStatusPending, entity.PaymentStatusFailed)}
	rec := &recorder{}
	cfg := poller.Config{MaxAttempts: 10, Interval: 5 * time.Second}

	s := runTicking(context.Background(), poller.New(q, clock), clock, cfg, rec.handlers(), 1)

	require.Equal(t, poller.ResultFailed, s.Result)
	require.Equal(t, 2, q.calls())
	require.Len(t, rec.errs, 1)
	require.ErrorIs(t, rec.errs[0], entity.ErrPaymentFailed)
}

func TestPoller_Run_TransientErrorKeepsPolling(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	q := &fakeQuerier{replies: []reply{
		{err: errors.New("dial tcp: connection refused")},
		{status: entity.PaymentStatusCompleted},
	}}
	rec := &recorder{}
	cfg := poller.Config{MaxAttempts: 3, Interval: time.Second}

	s := runTicking(context.Background(), poller.New(q, clock), clock, cfg, rec.handlers(), 1)

	require.Equal(t, poller.ResultCompleted, s.Result)
	require.Equal(t, []entity.PaymentStatus{entity.PaymentStatusCompleted}, rec.updates)
	require.Equal(t, []int{2}, rec.attempts)
	require.Empty(t, rec.errs)
}

func TestPoller_Run_CancelBetweenTicks(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	q := &fakeQuerier{replies: statuses(entity.PaymentStatusPending, entity.PaymentStatusCompleted)}
	rec := &recorder{}
	cfg := poller.Config{MaxAttempts: 5, Interval: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan poller.State, 1)

	go func() {
		done <- poller.New(q, clock).Run(ctx, entity.OrderRef{ID: "42"}, cfg, rec.handlers())
	}()

	clock.BlockUntil(1)
	cancel()

	s := <-done

	require.Equal(t, poller.ResultCancelled, s.Result)
	require.Equal(t, 1, q.calls())
	require.Len(t, rec.updates, 1)
	require.Zero(t, rec.completes)
	require.Empty(t, rec.errs)
}

func TestPoller_Run_CancelledBeforeStart(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	q := &fakeQuerier{replies: statuses(entity.PaymentStatusCompleted)}
	rec := &recorder{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := poller.New(q, clock).Run(ctx, entity.OrderRef{ID: "42"}, poller.Config{MaxAttempts: 5}, rec.handlers())

	require.Equal(t, poller.ResultCancelled, s.Result)
	require.Zero(t, q.calls())
	require.Empty(t, rec.updates)
	require.Zero(t, rec.completes)
	require.Empty(t, rec.errs)
}

func TestPoller_Run_LateResponseIsDiscarded(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	q := &fakeQuerier{block: make(chan struct{}), entered: make(chan struct{})}
	rec := &recorder{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan poller.State, 1)

	go func() {
		done <- poller.New(q, clock).Run(ctx, entity.OrderRef{ID: "42"}, poller.Config{MaxAttempts: 5}, rec.handlers())
	}()

	<-q.entered
	cancel()

	s := <-done

	require.Equal(t, poller.ResultCancelled, s.Result)
	require.Empty(t, rec.updates)
	require.Zero(t, rec.completes)
	require.Empty(t, rec.errs)
}

func TestPoller_Run_NilHandlers(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	q := &fakeQuerier{replies: statuses(entity.PaymentStatusFailed)}

	s := poller.New(q, clock).Run(context.Background(), entity.OrderRef{ID: "42"}, poller.Config{MaxAttempts: 1}, poller.Handlers{})

	require.Equal(t, poller.ResultFailed, s.Result)
}
