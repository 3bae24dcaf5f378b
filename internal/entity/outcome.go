package entity

import (
	"fmt"
	"time"
)

type Outcome string

const (
	OutcomePlaced Outcome = "placed"
	OutcomePaid   Outcome = "paid"
	OutcomeFailed Outcome = "failed"
)

func (o Outcome) String() string {
	return string(o)
}

// Stage groups outcomes that may be reconciled only once per order.
func (o Outcome) Stage() string {
	switch o {
	case OutcomePlaced:
		return "checkout"
	default:
		return "payment"
	}
}

// Notification is sent once per order outcome. Tag is stable per order and outcome.
type Notification struct {
	Tag       string
	OrderID   string
	Outcome   Outcome
	Subject   string
	Message   string
	Recipient string
	CreatedAt time.Time
}

func NotificationTag(outcome Outcome, orderID string) string {
	switch outcome {
	case OutcomePaid:
		return "payment-success-" + orderID
	case OutcomeFailed:
		return "payment-failed-" + orderID
	default:
		return fmt.Sprintf("order-%s-%s", outcome, orderID)
	}
}

// NavigationState is carried once to the order detail view.
type NavigationState struct {
	Message        string `json:"message"`
	PaymentSuccess bool   `json:"paymentSuccess,omitempty"`
	PaymentFailed  bool   `json:"paymentFailed,omitempty"`
}

func OrderDetailRoute(orderID string) string {
	return "/orders/" + orderID
}
