// Package product holds the catalog of non-canvas goods (prints, postcards,
// merch) that can be sold on an order alongside or instead of sized
// paintings. Amounts are in kopecks.
package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("product not found")
	ErrEmptyName      = errors.New("product has no name")
	ErrNegativeAmount = errors.New("product amounts must not be negative")
)

type Product struct {
	ID        uuid.UUID
	Name      string
	Category  string
	CostPrice int64
	SellPrice int64
	CreatedAt time.Time
	UpdatedAt *time.Time
}
