package model

import "time"

// MediaType describes the kind of gallery entry.
type MediaType string

const (
	MediaTypeVideo MediaType = "video"
	MediaTypeAudio MediaType = "audio"
	MediaTypePhoto MediaType = "photo"
)

// MediaItem is one entry of the public media gallery.
type MediaItem struct {
	ID          int64
	Title       string
	Type        MediaType
	URL         string
	Description string
	Duration    string
	Featured    bool
	CreatedAt   time.Time
}
