package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/domain/repository"
)

// MediaUseCase manages the public media gallery.
type MediaUseCase struct {
	media repository.MediaRepository
}

// NewMediaUseCase constructs MediaUseCase.
func NewMediaUseCase(media repository.MediaRepository) *MediaUseCase {
	return &MediaUseCase{media: media}
}

func validateMediaItem(m model.MediaItem) error {
	if strings.TrimSpace(m.Title) == "" || strings.TrimSpace(m.URL) == "" {
		return domainErrors.ErrInvalidInput
	}
	switch m.Type {
	case model.MediaTypeVideo, model.MediaTypeAudio, model.MediaTypePhoto:
		return nil
	default:
		return domainErrors.ErrInvalidInput
	}
}

// Create adds a gallery item.
func (u *MediaUseCase) Create(ctx context.Context, m model.MediaItem) (*model.MediaItem, error) {
	if err := validateMediaItem(m); err != nil {
		return nil, err
	}
	return u.media.Create(ctx, m)
}

// Get fetches one item by id.
func (u *MediaUseCase) Get(ctx context.Context, id int64) (*model.MediaItem, error) {
	return u.media.GetByID(ctx, id)
}

// List returns gallery items newest first, optionally featured only.
func (u *MediaUseCase) List(ctx context.Context, featuredOnly bool) ([]model.MediaItem, error) {
	return u.media.List(ctx, featuredOnly)
}

// Update replaces item fields.
func (u *MediaUseCase) Update(ctx context.Context, m model.MediaItem) (*model.MediaItem, error) {
	if err := validateMediaItem(m); err != nil {
		return nil, err
	}
	return u.media.Update(ctx, m)
}

// Delete removes an item. Hard delete, no undo.
func (u *MediaUseCase) Delete(ctx context.Context, id int64) error {
	return u.media.Delete(ctx, id)
}
