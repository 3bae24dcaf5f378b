package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Order is created by the storefront backend and is read-only for us.
type Order struct {
	ID          string
	Number      string
	TotalAmount decimal.Decimal
}

func (o Order) Ref() OrderRef {
	return OrderRef{ID: o.ID, Number: o.Number}
}

// PlacedOrder records who placed an order through checkout and how it was to be paid.
type PlacedOrder struct {
	ID        string
	Number    string
	UserID    uuid.UUID
	Method    PaymentMethod
	CreatedAt time.Time
}

// OrderRef identifies an order towards the payment status endpoint.
type OrderRef struct {
	ID     string
	Number string
}

// Identifier returns the order number when known and falls back to the order id.
func (r OrderRef) Identifier() string {
	if r.Number != "" {
		return r.Number
	}

	return r.ID
}

func (r OrderRef) String() string {
	return r.Identifier()
}

type ShippingAddress struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
}

func (a ShippingAddress) String() string {
	parts := make([]string, 0, 4) //nolint:mnd

	for _, v := range []string{a.FullName, a.Phone, a.Address, a.City} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, ", ")
}

type CheckoutRequest struct {
	Shipping ShippingAddress
	Notes    string
	Method   PaymentMethod
}

func (r CheckoutRequest) Validate() error {
	if strings.TrimSpace(r.Shipping.Address) == "" {
		return fmt.Errorf("%w: shipping address is required", ErrInvalidArgument)
	}

	return r.Method.Validate()
}

// OrderRequest is what gets sent to the storefront backend on checkout.
type OrderRequest struct {
	ShippingAddress string
	Notes           string
	Method          PaymentMethod
	Items           []CartItem
}
