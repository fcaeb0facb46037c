package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bandstand/bandstand/internal/domain/model"
)

// CartRepository describes persistence operations with server-held carts.
type CartRepository interface {
	Get(ctx context.Context, ownerID string) (*model.Cart, error)
	// AddLine merges quantity into an existing line for the same product
	// or inserts a new line with the given unit price snapshot. Merging
	// refreshes the line's staleness clock.
	AddLine(ctx context.Context, ownerID string, productID int64, title string, unitPrice decimal.Decimal, quantity int) error
	// SetQuantity overwrites a line's quantity and refreshes its
	// staleness clock.
	SetQuantity(ctx context.Context, ownerID string, productID int64, quantity int) error
	RemoveLine(ctx context.Context, ownerID string, productID int64) error
	Clear(ctx context.Context, ownerID string) error
	// DeleteStale removes cart lines untouched since the cutoff, at most
	// limit rows per call, and reports how many were removed.
	DeleteStale(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}
