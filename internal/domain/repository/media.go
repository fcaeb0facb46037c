package repository

import (
	"context"

	"github.com/bandstand/bandstand/internal/domain/model"
)

// MediaRepository describes persistence operations with gallery items.
type MediaRepository interface {
	Create(ctx context.Context, item model.MediaItem) (*model.MediaItem, error)
	GetByID(ctx context.Context, id int64) (*model.MediaItem, error)
	List(ctx context.Context, featuredOnly bool) ([]model.MediaItem, error)
	Update(ctx context.Context, item model.MediaItem) (*model.MediaItem, error)
	Delete(ctx context.Context, id int64) error
}
