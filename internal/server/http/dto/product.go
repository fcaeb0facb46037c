package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest describes create/update payload for a catalog product.
type ProductRequest struct {
	Title     string          `json:"title"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

// ProductResponse describes a catalog product entry.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
	CreatedAt time.Time       `json:"created_at"`
}
