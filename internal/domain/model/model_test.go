package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCartTotals(t *testing.T) {
	cart := Cart{
		OwnerID: "owner",
		Lines: []CartLine{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
			{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("14.99")},
		},
	}

	if got := cart.TotalItems(); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}
	if got := cart.TotalPrice(); !got.Equal(decimal.RequireFromString("34.97")) {
		t.Fatalf("expected total 34.97, got %s", got)
	}
}

func TestCartTotalsEmpty(t *testing.T) {
	var cart Cart
	if got := cart.TotalItems(); got != 0 {
		t.Fatalf("expected 0 items, got %d", got)
	}
	if got := cart.TotalPrice(); !got.Equal(decimal.Zero) {
		t.Fatalf("expected zero total, got %s", got)
	}
}

func TestOrderLineSubtotal(t *testing.T) {
	line := OrderLine{UnitPrice: decimal.RequireFromString("4.50"), Quantity: 3}
	if got := line.Subtotal(); !got.Equal(decimal.RequireFromString("13.50")) {
		t.Fatalf("expected 13.50, got %s", got)
	}
}

func TestOrderCanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"processing to completed", OrderStatusProcessing, OrderStatusCompleted, true},
		{"processing to cancelled", OrderStatusProcessing, OrderStatusCancelled, true},
		{"processing to processing", OrderStatusProcessing, OrderStatusProcessing, false},
		{"completed is terminal", OrderStatusCompleted, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := Order{Status: tc.from}
			if got := order.CanTransitionTo(tc.to); got != tc.allowed {
				t.Fatalf("expected %v, got %v", tc.allowed, got)
			}
		})
	}
}
