package dto

import "time"

// ImageResponse describes one managed upload.
type ImageResponse struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
	URL        string    `json:"url"`
}

// ImageRenameRequest describes a rename payload.
type ImageRenameRequest struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}
