package model

import "time"

// Show describes a calendar entry for a live performance.
type Show struct {
	ID          int64
	Title       string
	Venue       string
	Date        time.Time
	Time        string
	Description string
	TicketURL   string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
