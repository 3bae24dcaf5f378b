package surface

import (
	"context"
	"sync"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=surface.go -destination=../mocks/surface.go -package=mocks -typed

// Presenter shows a payment session to the user out of band.
type Presenter interface {
	Open(ctx context.Context, session entity.PaymentSession) (Handle, error)
}

// Handle controls one opened surface. Close is safe to call more than once.
type Handle interface {
	Close()
}

type handle struct {
	once    sync.Once
	onClose func()
}

func newHandle(onClose func()) *handle {
	return &handle{onClose: onClose}
}

func (h *handle) Close() {
	h.once.Do(func() {
		if h.onClose != nil {
			h.onClose()
		}
	})
}

// Noop is returned when nothing could be shown.
var Noop Handle = newHandle(nil)
