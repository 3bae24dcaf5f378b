package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type CartItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID int64
	Quantity  int
	CreatedAt time.Time
}

func (c CartItem) Validate() error {
	if c.ProductID <= 0 {
		return fmt.Errorf("%w: product id must be positive, got %d", ErrInvalidArgument, c.ProductID)
	}

	if c.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidArgument, c.Quantity)
	}

	return nil
}
