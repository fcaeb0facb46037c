package repository

import (
	"context"

	"github.com/bandstand/bandstand/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create persists the order with its lines in a single transaction.
	// Product rows are re-checked for availability under lock, so two
	// concurrent checkouts cannot both pass a stale availability check.
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	ListByEmail(ctx context.Context, email string) ([]model.Order, error)
	List(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	// UpdateStatus applies an admin-driven transition, rejecting moves
	// out of a terminal status.
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}
