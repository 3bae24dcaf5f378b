package poller

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=poller.go -destination=../mocks/poller.go -package=mocks -typed

type Querier interface {
	PaymentStatus(ctx context.Context, identifier string) (entity.StatusReport, error)
}

type Config struct {
	MaxAttempts int
	Interval    time.Duration
}

// Handlers are invoked from the polling goroutine in tick order. Any of them may be nil.
type Handlers struct {
	OnUpdate   func(status entity.PaymentStatus, report entity.StatusReport, attempts int)
	OnComplete func(report entity.StatusReport)
	OnError    func(err *PollError)
}

type Poller struct {
	q     Querier
	clock clockwork.Clock
}

func New(q Querier, clock clockwork.Clock) *Poller {
	return &Poller{
		q:     q,
		clock: clock,
	}
}

// Run polls payment status for order until a terminal status, an exhausted
// attempt budget or ctx cancellation. It blocks and returns the final state.
func (p *Poller) Run(ctx context.Context, order entity.OrderRef, cfg Config, h Handlers) State {
	l := slog.Default().With("order", order.Identifier())

	s := NewState(order, cfg)
	queue := []Event{Start{}}

	for len(queue) > 0 {
		ev := queue[0]
		queue = queue[1:]

		var effects []Effect

		s, effects = Transition(s, ev)

		for _, eff := range effects {
			switch eff := eff.(type) {
			case Schedule:
				queue = append(queue, p.wait(ctx, eff.Delay))

			case Query:
				queue = append(queue, p.query(ctx, l, eff.Identifier))

			case Update:
				if h.OnUpdate != nil {
					h.OnUpdate(eff.Status, eff.Report, eff.Attempts)
				}

			case Complete:
				l.InfoContext(ctx, "payment completed", "attempts", s.Attempts)

				if h.OnComplete != nil {
					h.OnComplete(eff.Report)
				}

			case Fail:
				l.InfoContext(ctx, "payment poll stopped", "reason", eff.Err.Kind.String(), "attempts", s.Attempts)

				if h.OnError != nil {
					h.OnError(eff.Err)
				}
			}
		}
	}

	if s.Result == ResultCancelled {
		l.DebugContext(ctx, "payment poll cancelled", "attempts", s.Attempts)
	}

	return s
}

func (p *Poller) wait(ctx context.Context, d time.Duration) Event {
	if ctx.Err() != nil {
		return Cancel{}
	}

	if d <= 0 {
		return Tick{}
	}

	select {
	case <-ctx.Done():
		return Cancel{}
	case <-p.clock.After(d):
	}

	if ctx.Err() != nil {
		return Cancel{}
	}

	return Tick{}
}

func (p *Poller) query(ctx context.Context, l *slog.Logger, identifier string) Event {
	if ctx.Err() != nil {
		return Cancel{}
	}

	report, err := p.q.PaymentStatus(ctx, identifier)

	// A response that arrives after cancellation is dropped.
	if ctx.Err() != nil {
		return Cancel{}
	}

	if err != nil {
		l.WarnContext(ctx, "payment status query failed", "error", err)
		return QueryFailed{Err: err}
	}

	l.DebugContext(ctx, "payment status", "status", report.Status)

	return QueryResult{Report: report}
}
