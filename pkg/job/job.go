package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type job struct {
	name     string
	interval time.Duration
	timeout  time.Duration
	fn       func(ctx context.Context) error
}

// Service runs registered jobs on fixed intervals until the context is done.
// A job runs once right after Start and then on every tick.
type Service struct {
	clock clockwork.Clock
	jobs  []job
	wg    sync.WaitGroup
}

func NewService(clock clockwork.Clock) *Service {
	return &Service{
		clock: clock,
	}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !isEnabled {
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

// WithTimeout limits every run of the last registered job.
func (s *Service) WithTimeout(d time.Duration) *Service {
	if len(s.jobs) > 0 {
		s.jobs[len(s.jobs)-1].timeout = d
	}

	return s
}

func (s *Service) Start(ctx context.Context) {
	for _, v := range s.jobs {
		s.wg.Add(1)

		go s.startJob(ctx, v)
	}
}

func (s *Service) startJob(ctx context.Context, j job) {
	defer s.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := s.clock.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		start := s.clock.Now()

		err := s.runOnce(ctx, l, j)
		if err != nil {
			l.ErrorContext(ctx, "job failed", "error", err)
		} else {
			l.DebugContext(ctx, "job done", "took", s.clock.Since(start))
		}

		select {
		case <-ctx.Done():
			l.DebugContext(ctx, "context done")
			return

		case <-ticker.Chan():
		}
	}
}

func (s *Service) runOnce(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.ErrorContext(ctx, "job panic", "error", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if j.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	return j.fn(ctx)
}

// Stop waits for all started jobs to return.
func (s *Service) Stop() {
	s.wg.Wait()
}
