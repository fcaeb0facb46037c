package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/domain/repository"
)

// CartUseCase manages server-held carts keyed by an owner token.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Get returns the cart for the owner. An unknown or empty owner yields an
// empty cart rather than an error.
func (u *CartUseCase) Get(ctx context.Context, ownerID string) (*model.Cart, error) {
	if ownerID == "" {
		return &model.Cart{}, nil
	}
	return u.carts.Get(ctx, ownerID)
}

// Add puts quantity of a product into the cart, merging into an existing
// line for the same product. An empty ownerID mints a fresh owner token.
// The catalog price is snapshotted into the line at add time.
func (u *CartUseCase) Add(ctx context.Context, ownerID string, productID int64, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Available {
		return nil, domainErrors.ErrProductUnavailable
	}

	if ownerID == "" {
		ownerID = uuid.NewString()
	}

	if err := u.carts.AddLine(ctx, ownerID, productID, product.Title, product.Price, quantity); err != nil {
		return nil, err
	}

	return u.carts.Get(ctx, ownerID)
}

// Update sets a line's quantity; zero or negative removes the line.
func (u *CartUseCase) Update(ctx context.Context, ownerID string, productID int64, quantity int) (*model.Cart, error) {
	if ownerID == "" {
		return nil, domainErrors.ErrNotFound
	}

	if quantity <= 0 {
		if err := u.carts.RemoveLine(ctx, ownerID, productID); err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
		return u.carts.Get(ctx, ownerID)
	}

	if err := u.carts.SetQuantity(ctx, ownerID, productID, quantity); err != nil {
		return nil, err
	}
	return u.carts.Get(ctx, ownerID)
}

// Remove deletes a line from the cart.
func (u *CartUseCase) Remove(ctx context.Context, ownerID string, productID int64) (*model.Cart, error) {
	if ownerID == "" {
		return nil, domainErrors.ErrNotFound
	}
	if err := u.carts.RemoveLine(ctx, ownerID, productID); err != nil {
		return nil, err
	}
	return u.carts.Get(ctx, ownerID)
}

// Clear empties the cart.
func (u *CartUseCase) Clear(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return nil
	}
	return u.carts.Clear(ctx, ownerID)
}

// PurgeStale removes cart lines untouched since the cutoff. Used by the
// background sweeper.
func (u *CartUseCase) PurgeStale(ctx context.Context, olderThan time.Duration, limit int) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	return u.carts.DeleteStale(ctx, cutoff, limit)
}
