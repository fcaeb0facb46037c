package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType distinguishes purchasable catalog entries.
type ProductType string

const (
	ProductTypeSong  ProductType = "song"
	ProductTypeAlbum ProductType = "album"
)

// Product is a purchasable catalog record.
type Product struct {
	ID        int64
	Title     string
	Type      ProductType
	Price     decimal.Decimal
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
