package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order lifecycle. Transitions are admin-driven.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus records the payment outcome attached to an order.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
)

// CheckoutItem references one product in a checkout request.
type CheckoutItem struct {
	ProductID int64
	Quantity  int
}

// CheckoutInput carries everything needed to place an order.
type CheckoutInput struct {
	CustomerName  string
	CustomerEmail string
	Items         []CheckoutItem
	PaymentMethod string
	PaymentRef    string
	// CartOwnerID, when set, names the server-held cart to clear after
	// a successful checkout.
	CartOwnerID string
}

// OrderLine is a product snapshot frozen at order creation time.
type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Title     string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal returns UnitPrice multiplied by Quantity.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is an immutable record of a checkout. Total equals the sum of line
// subtotals at creation time and is never recomputed from the catalog.
type Order struct {
	ID            int64
	Number        string
	CustomerName  string
	CustomerEmail string
	Lines         []OrderLine
	Total         decimal.Decimal
	PaymentMethod string
	PaymentRef    string
	PaymentStatus PaymentStatus
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanTransitionTo reports whether an admin status change is allowed.
// Completed and cancelled orders are terminal.
func (o Order) CanTransitionTo(next OrderStatus) bool {
	if o.Status != OrderStatusProcessing {
		return false
	}
	return next == OrderStatusCompleted || next == OrderStatusCancelled
}
