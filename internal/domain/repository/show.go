package repository

import (
	"context"

	"github.com/bandstand/bandstand/internal/domain/model"
)

// ShowRepository describes persistence operations with calendar shows.
type ShowRepository interface {
	Create(ctx context.Context, show model.Show) (*model.Show, error)
	GetByID(ctx context.Context, id int64) (*model.Show, error)
	List(ctx context.Context, featuredOnly bool) ([]model.Show, error)
	Update(ctx context.Context, show model.Show) (*model.Show, error)
	Delete(ctx context.Context, id int64) error
}
