package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutItemRequest names a product and quantity inside a checkout.
type CheckoutItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CheckoutRequest describes the checkout payload. When Items is empty the
// server-held cart identified by the cart cookie is used instead.
type CheckoutRequest struct {
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	Items         []CheckoutItemRequest `json:"items"`
	PaymentMethod string                `json:"payment_method"`
	PaymentRef    string                `json:"payment_ref"`
}

// OrderLineResponse describes one snapshotted order line.
type OrderLineResponse struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse describes a stored order.
type OrderResponse struct {
	ID            int64               `json:"id"`
	Number        string              `json:"number"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	Lines         []OrderLineResponse `json:"lines"`
	Total         decimal.Decimal     `json:"total"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
}

// OrderStatusRequest describes an admin order status change payload.
type OrderStatusRequest struct {
	Status string `json:"status"`
}
