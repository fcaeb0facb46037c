package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/domain/repository"
)

// MessageUseCase manages contact/booking messages.
type MessageUseCase struct {
	messages repository.MessageRepository
}

// NewMessageUseCase constructs MessageUseCase.
func NewMessageUseCase(messages repository.MessageRepository) *MessageUseCase {
	return &MessageUseCase{messages: messages}
}

func validMessageStatus(status model.MessageStatus) bool {
	switch status {
	case model.MessageStatusNew, model.MessageStatusRead, model.MessageStatusReplied:
		return true
	default:
		return false
	}
}

// Submit records a message from the public contact form.
func (u *MessageUseCase) Submit(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Message) == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	msg.Status = model.MessageStatusNew
	return u.messages.Create(ctx, msg)
}

// List returns messages newest first, optionally filtered by status.
func (u *MessageUseCase) List(ctx context.Context, status model.MessageStatus) ([]model.ContactMessage, error) {
	if status != "" && !validMessageStatus(status) {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.messages.List(ctx, status)
}

// UpdateStatus moves a message between new/read/replied.
func (u *MessageUseCase) UpdateStatus(ctx context.Context, id int64, status model.MessageStatus) (*model.ContactMessage, error) {
	if !validMessageStatus(status) {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.messages.UpdateStatus(ctx, id, status)
}

// Delete removes a message. Hard delete, no undo.
func (u *MessageUseCase) Delete(ctx context.Context, id int64) error {
	return u.messages.Delete(ctx, id)
}
