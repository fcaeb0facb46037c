package dto

// MediaRequest describes create/update payload for a gallery entry.
type MediaRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Featured    bool   `json:"featured"`
}

// MediaResponse describes a media gallery entry.
type MediaResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Featured    bool   `json:"featured"`
}
