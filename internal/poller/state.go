package poller

import (
	"fmt"
	"time"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

type Phase int

const (
	PhaseIdle     Phase = iota // not started
	PhaseWaiting               // next tick is scheduled
	PhaseQuerying              // one status query is in flight
	PhaseDone
)

type Result int

const (
	ResultNone Result = iota
	ResultCompleted
	ResultFailed
	ResultTimeout
	ResultCancelled
)

func (r Result) String() string {
	switch r {
	case ResultCompleted:
		return "completed"
	case ResultFailed:
		return "failed"
	case ResultTimeout:
		return "timeout"
	case ResultCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// State of one polling run. It is owned by a single run and never persisted.
type State struct {
	Order       entity.OrderRef
	Attempts    int
	MaxAttempts int
	Interval    time.Duration
	Status      entity.PaymentStatus
	Phase       Phase
	Cancelled   bool
	Result      Result
}

func NewState(order entity.OrderRef, cfg Config) State {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return State{
		Order:       order,
		MaxAttempts: maxAttempts,
		Interval:    cfg.Interval,
		Status:      entity.PaymentStatusPending,
		Phase:       PhaseIdle,
	}
}

func (s State) Done() bool {
	return s.Phase == PhaseDone
}

type Event interface {
	event()
}

type (
	Start       struct{}
	Tick        struct{}
	Cancel      struct{}
	QueryResult struct{ Report entity.StatusReport }
	QueryFailed struct{ Err error }
)

func (Start) event()       {}
func (Tick) event()        {}
func (Cancel) event()      {}
func (QueryResult) event() {}
func (QueryFailed) event() {}

type Effect interface {
	effect()
}

// Schedule the next Tick after Delay.
type Schedule struct{ Delay time.Duration }

// Query issues one status query for Identifier.
type Query struct{ Identifier string }

// Update reports the status seen by the last query and the attempts used so far.
type Update struct {
	Status   entity.PaymentStatus
	Report   entity.StatusReport
	Attempts int
}

type Complete struct{ Report entity.StatusReport }

type Fail struct{ Err *PollError }

func (Schedule) effect() {}
func (Query) effect()    {}
func (Update) effect()   {}
func (Complete) effect() {}
func (Fail) effect()     {}

type ErrorKind int

const (
	KindPaymentFailed ErrorKind = iota + 1
	KindTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case KindPaymentFailed:
		return "payment_failed"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// PollError is handed to OnError. Timeout is not a payment failure.
type PollError struct {
	Kind     ErrorKind
	Order    entity.OrderRef
	Attempts int
	Report   *entity.StatusReport
}

func (e *PollError) Error() string {
	return fmt.Sprintf("order %s: %s after %d attempts", e.Order, e.Kind, e.Attempts)
}

func (e *PollError) Unwrap() error {
	if e.Kind == KindTimeout {
		return entity.ErrPollTimeout
	}

	return entity.ErrPaymentFailed
}

// Transition is the whole polling state machine. It has no side effects:
// the returned effects are executed by the caller in order.
func Transition(s State, ev Event) (State, []Effect) {
	if s.Phase == PhaseDone {
		return s, nil
	}

	switch ev := ev.(type) {
	case Start:
		if s.Phase != PhaseIdle {
			return s, nil
		}

		s.Phase = PhaseWaiting

		return s, []Effect{Schedule{Delay: 0}}

	case Tick:
		if s.Phase != PhaseWaiting {
			return s, nil
		}

		s.Phase = PhaseQuerying

		return s, []Effect{Query{Identifier: s.Order.Identifier()}}

	case QueryResult:
		if s.Phase != PhaseQuerying {
			return s, nil
		}

		s.Attempts++

		report := ev.Report
		report.Status = entity.ResolveStatus(report.Status, report.PaymentStatus, report.OrderStatus)
		s.Status = report.Status

		effects := []Effect{Update{Status: report.Status, Report: report, Attempts: s.Attempts}}

		switch report.Status {
		case entity.PaymentStatusCompleted:
			s.Phase = PhaseDone
			s.Result = ResultCompleted

			return s, append(effects, Complete{Report: report})

		case entity.PaymentStatusFailed:
			s.Phase = PhaseDone
			s.Result = ResultFailed

			return s, append(effects, Fail{Err: &PollError{
				Kind:     KindPaymentFailed,
				Order:    s.Order,
				Attempts: s.Attempts,
				Report:   &report,
			}})
		}

		return next(s, effects)

	case QueryFailed:
		if s.Phase != PhaseQuerying {
			return s, nil
		}

		s.Attempts++

		return next(s, nil)

	case Cancel:
		s.Cancelled = true
		s.Phase = PhaseDone
		s.Result = ResultCancelled

		return s, nil
	}

	return s, nil
}

func next(s State, effects []Effect) (State, []Effect) {
	if s.Attempts < s.MaxAttempts {
		s.Phase = PhaseWaiting
		return s, append(effects, Schedule{Delay: s.Interval})
	}

	s.Phase = PhaseDone
	s.Result = ResultTimeout

	return s, append(effects, Fail{Err: &PollError{
		Kind:     KindTimeout,
		Order:    s.Order,
		Attempts: s.Attempts,
	}})
}
