package surface

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

// View is what the frontend renders for an open surface.
type View struct {
	OrderID          string             `json:"orderId"`
	Kind             entity.SurfaceKind `json:"kind"`
	RedirectURL      string             `json:"redirectUrl,omitempty"`
	QRImageURL       string             `json:"qrImageUrl,omitempty"`
	Bank             *entity.BankInfo   `json:"bank,omitempty"`
	PaymentMessage   string             `json:"paymentMessage,omitempty"`
	ExpiresAt        time.Time          `json:"expiresAt"`
	RemainingSeconds int                `json:"remainingSeconds"`
	Expired          bool               `json:"expired"`
	ClosedByUser     bool               `json:"closedByUser"`
}

// Opener makes a view visible to the user.
type Opener interface {
	Publish(ctx context.Context, v View) (uint64, error)
	Close(orderID string, gen uint64)
}

type entry struct {
	gen  uint64
	view View
}

// Board keeps the surface of every order the frontend is currently paying for.
// A newer Publish for the same order replaces the older one; stale generations
// can neither update nor close it.
type Board struct {
	mu      sync.RWMutex
	gen     uint64
	entries map[string]entry
}

func NewBoard() *Board {
	return &Board{
		entries: make(map[string]entry),
	}
}

func (b *Board) Publish(_ context.Context, v View) (uint64, error) {
	if v.OrderID == "" {
		return 0, fmt.Errorf("%w: empty order id", entity.ErrInvalidArgument)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	b.entries[v.OrderID] = entry{gen: b.gen, view: v}

	return b.gen, nil
}

func (b *Board) Update(orderID string, gen uint64, fn func(v *View)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[orderID]
	if !ok || e.gen != gen {
		return false
	}

	fn(&e.view)
	b.entries[orderID] = e

	return true
}

func (b *Board) Close(orderID string, gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if e, ok := b.entries[orderID]; ok && e.gen == gen {
		delete(b.entries, orderID)
	}
}

// MarkClosedByUser records that the user dismissed the surface on their own.
func (b *Board) MarkClosedByUser(orderID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[orderID]
	if !ok {
		return fmt.Errorf("surface for order %s: %w", orderID, entity.ErrNotFound)
	}

	e.view.ClosedByUser = true
	b.entries[orderID] = e

	return nil
}

func (b *Board) Snapshot(orderID string) (View, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.entries[orderID]

	return e.view, ok
}
