package entity

import (
	"fmt"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "cod"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodVNPay        PaymentMethod = "vnpay"
	PaymentMethodMomo         PaymentMethod = "momo"
)

func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentMethodCOD, PaymentMethodBankTransfer, PaymentMethodVNPay, PaymentMethodMomo:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidArgument, p)
	}
}

// IsSynchronous reports whether creating the order already is the terminal success.
func (p PaymentMethod) IsSynchronous() bool {
	return p == PaymentMethodCOD || p == PaymentMethodBankTransfer
}

// Gateway returns the gateway path segment of the session creation endpoint.
func (p PaymentMethod) Gateway() string {
	return string(p)
}

func (p PaymentMethod) String() string {
	return string(p)
}

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

func (s PaymentStatus) String() string {
	return string(s)
}

// ResolveStatus merges status flags reported for one payment.
// A completed flag wins over a stale failed one.
func ResolveStatus(statuses ...PaymentStatus) PaymentStatus {
	seen := make(map[PaymentStatus]bool, len(statuses))
	for _, s := range statuses {
		seen[s] = true
	}

	switch {
	case seen[PaymentStatusCompleted]:
		return PaymentStatusCompleted
	case seen[PaymentStatusFailed]:
		return PaymentStatusFailed
	case seen[PaymentStatusProcessing]:
		return PaymentStatusProcessing
	default:
		return PaymentStatusPending
	}
}

// StatusReport is one answer of the payment status endpoint.
type StatusReport struct {
	Identifier    string
	Status        PaymentStatus
	PaymentStatus PaymentStatus // as reported in data.payment
	OrderStatus   PaymentStatus // as reported in data.order, may be empty
	TransactionID string
	Raw           []byte
}

type SurfaceKind string

const (
	SurfaceRedirect SurfaceKind = "redirect"
	SurfaceQR       SurfaceKind = "qr"
)

func (k SurfaceKind) Validate() error {
	switch k {
	case SurfaceRedirect, SurfaceQR:
		return nil
	default:
		return fmt.Errorf("%w: unknown surface kind %q", ErrInvalidArgument, k)
	}
}

type BankInfo struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
}

// PaymentSession is the artifact presented to the user to pay out of band.
// At most one live session exists per order.
type PaymentSession struct {
	OrderID        string
	Method         PaymentMethod
	RedirectURL    string
	QRImageURL     string
	Bank           BankInfo
	PaymentMessage string
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

func (s PaymentSession) Kind() SurfaceKind {
	if s.QRImageURL != "" {
		return SurfaceQR
	}

	return SurfaceRedirect
}

// Remaining returns the time left until expiry, never negative.
func (s PaymentSession) Remaining(now time.Time) time.Duration {
	d := s.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}

	return d
}

func (s PaymentSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
