package repository

import (
	"context"

	"github.com/bandstand/bandstand/internal/domain/model"
)

// MessageRepository describes persistence operations with contact messages.
type MessageRepository interface {
	Create(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error)
	List(ctx context.Context, status model.MessageStatus) ([]model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status model.MessageStatus) (*model.ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}
