package dto

import "time"

// ShowRequest describes create/update payload for a show entry.
type ShowRequest struct {
	Title       string    `json:"title"`
	Venue       string    `json:"venue"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	TicketURL   string    `json:"ticket_url"`
	Featured    bool      `json:"featured"`
}

// ShowResponse describes a show calendar entry.
type ShowResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Venue       string    `json:"venue"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	TicketURL   string    `json:"ticket_url"`
	Featured    bool      `json:"featured"`
}
