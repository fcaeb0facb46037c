package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/domain/repository"
)

// ShowUseCase manages the public show calendar.
type ShowUseCase struct {
	shows repository.ShowRepository
}

// NewShowUseCase constructs ShowUseCase.
func NewShowUseCase(shows repository.ShowRepository) *ShowUseCase {
	return &ShowUseCase{shows: shows}
}

func validateShow(s model.Show) error {
	if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.Venue) == "" {
		return domainErrors.ErrInvalidInput
	}
	if s.Date.IsZero() {
		return domainErrors.ErrInvalidInput
	}
	return nil
}

// Create adds a show to the calendar.
func (u *ShowUseCase) Create(ctx context.Context, s model.Show) (*model.Show, error) {
	if err := validateShow(s); err != nil {
		return nil, err
	}
	return u.shows.Create(ctx, s)
}

// Get fetches one show by id.
func (u *ShowUseCase) Get(ctx context.Context, id int64) (*model.Show, error) {
	return u.shows.GetByID(ctx, id)
}

// List returns shows sorted by date, optionally featured only.
func (u *ShowUseCase) List(ctx context.Context, featuredOnly bool) ([]model.Show, error) {
	return u.shows.List(ctx, featuredOnly)
}

// Update replaces show fields.
func (u *ShowUseCase) Update(ctx context.Context, s model.Show) (*model.Show, error) {
	if err := validateShow(s); err != nil {
		return nil, err
	}
	return u.shows.Update(ctx, s)
}

// Delete removes a show. Hard delete, no undo.
func (u *ShowUseCase) Delete(ctx context.Context, id int64) error {
	return u.shows.Delete(ctx, id)
}
