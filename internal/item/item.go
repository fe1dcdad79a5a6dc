package item

import (
	"errors"
	"time"
)

// Item represents a purchased item whose price is amortized over the days
// since purchase. The id is assigned by the store on creation and never
// reused within a database.
type Item struct {
	ID           int64
	Name         string
	Price        float64
	PurchaseDate time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

var (
	// ErrNotFound is returned when loading an item by id that does not
	// exist, e.g. opening a stale edit link.
	ErrNotFound = errors.New("item not found")

	ErrEmptyName    = errors.New("item name must not be empty")
	ErrInvalidPrice = errors.New("item price must be positive")
	ErrFutureDate   = errors.New("purchase date must not be in the future")
)
