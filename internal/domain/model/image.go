package model

import "time"

// ImageFile describes one managed image asset on disk.
type ImageFile struct {
	Name       string
	Size       int64
	ModifiedAt time.Time
}
