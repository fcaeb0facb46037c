package model

import "time"

// MessageStatus tracks admin handling of a contact message.
type MessageStatus string

const (
	MessageStatusNew     MessageStatus = "new"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

// ContactMessage is a booking/contact inquiry submitted from the public site.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	EventType string
	EventDate string
	Message   string
	Status    MessageStatus
	CreatedAt time.Time
}
