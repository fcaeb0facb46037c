package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/domain/repository"
)

// CatalogUseCase manages purchasable products.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

func validateProduct(p model.Product) error {
	if strings.TrimSpace(p.Title) == "" {
		return domainErrors.ErrInvalidInput
	}
	if p.Type != model.ProductTypeSong && p.Type != model.ProductTypeAlbum {
		return domainErrors.ErrInvalidInput
	}
	if p.Price.IsNegative() {
		return domainErrors.ErrInvalidInput
	}
	return nil
}

// Create adds a product to the catalog.
func (u *CatalogUseCase) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, p)
}

// Get fetches one product by id.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns products, optionally restricted to available ones.
func (u *CatalogUseCase) List(ctx context.Context, availableOnly bool) ([]model.Product, error) {
	return u.products.List(ctx, availableOnly)
}

// Update replaces product fields. Prices copied into existing orders are
// unaffected: order lines keep their own snapshot.
func (u *CatalogUseCase) Update(ctx context.Context, p model.Product) (*model.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, p)
}

// Delete removes a product. Hard delete, no undo.
func (u *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}
