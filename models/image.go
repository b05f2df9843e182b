package models

import "strings"

// Image holds the uploaded binary together with its metadata. Rows are
// write-once: nothing updates an image after creation, it can only be
// deleted. Associations reference images, images reference nothing.
type Image struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Filename     string `gorm:"type:varchar(100);not null;index:uniq_image_filename,unique" json:"filename"`
	OriginalName string `gorm:"type:varchar(300);not null" json:"original_name"`
	MimeType     string `gorm:"type:varchar(50);not null" json:"mime_type"`
	Size         int64  `gorm:"not null" json:"size"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Data         []byte `json:"-"`
	ThumbData    []byte `json:"-"`
	ThumbWidth   int    `json:"thumb_width"`
	ThumbHeight  int    `json:"thumb_height"`
	CreatedAt    int64  `json:"created_at"`
}

// IsImageMimeType reports whether the given content type is acceptable
// for upload.
func IsImageMimeType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
