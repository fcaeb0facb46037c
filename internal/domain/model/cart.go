package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine pairs a product with a quantity for one cart owner.
// UnitPrice is snapshotted when the line is created.
type CartLine struct {
	ProductID int64
	Title     string
	Quantity  int
	UnitPrice decimal.Decimal
	AddedAt   time.Time
}

// Subtotal returns UnitPrice multiplied by Quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the server-side cart for one owner token.
type Cart struct {
	OwnerID string
	Lines   []CartLine
}

// TotalItems sums line quantities.
func (c Cart) TotalItems() int {
	var total int
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice sums line subtotals.
func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
