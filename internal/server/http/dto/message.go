package dto

import "time"

// ContactRequest describes the public contact form payload.
type ContactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EventType string `json:"event_type"`
	EventDate string `json:"event_date"`
	Message   string `json:"message"`
}

// MessageResponse describes a stored contact message.
type MessageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	EventType string    `json:"event_type"`
	EventDate string    `json:"event_date"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageStatusRequest describes an admin status change payload.
type MessageStatusRequest struct {
	Status string `json:"status"`
}
