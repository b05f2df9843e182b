package store

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ismilebharmal/prompt-techniques/models"
	"github.com/ismilebharmal/prompt-techniques/utils"
)

// ImageStore persists uploaded images in the database. Images are
// write-once: Store and Fetch, plus Delete for the admin surface.
type ImageStore struct {
	db        *gorm.DB
	maxSize   int64
	thumbSize uint
}

func NewImageStore(db *gorm.DB, maxSize int64, thumbSize uint) *ImageStore {
	return &ImageStore{db: db, maxSize: maxSize, thumbSize: thumbSize}
}

// Store validates and persists an uploaded payload. A jpeg thumbnail is
// generated alongside; a payload that cannot be decoded as an image is
// rejected even when its declared mime type looks right.
func (s *ImageStore) Store(data []byte, originalName, mimeType string) (*models.Image, error) {
	if !models.IsImageMimeType(mimeType) {
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrValidation, mimeType)
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: image of %d bytes exceeds the %d byte limit", ErrValidation, len(data), s.maxSize)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image payload", ErrValidation)
	}
	thumb, dims, err := utils.CreateThumb(s.thumbSize, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot decode image: %v", ErrValidation, err)
	}
	image := models.Image{
		Filename:     uuid.NewString() + strings.ToLower(filepath.Ext(originalName)),
		OriginalName: originalName,
		MimeType:     mimeType,
		Size:         int64(len(data)),
		Width:        dims.OldX,
		Height:       dims.OldY,
		Data:         data,
		ThumbData:    thumb,
		ThumbWidth:   dims.NewX,
		ThumbHeight:  dims.NewY,
		CreatedAt:    time.Now().Unix(),
	}
	if err := s.db.Create(&image).Error; err != nil {
		return nil, translate(err)
	}
	return &image, nil
}

// Fetch returns the full row including the binary payload.
func (s *ImageStore) Fetch(id uint64) (*models.Image, error) {
	var image models.Image
	if err := s.db.First(&image, id).Error; err != nil {
		if translate(err) == ErrNotFound {
			return nil, notFound("image", id)
		}
		return nil, translate(err)
	}
	return &image, nil
}

// Meta returns metadata only - binary columns are not selected, so list
// and join paths never drag blobs around.
func (s *ImageStore) Meta(id uint64) (*models.Image, error) {
	var image models.Image
	err := s.db.Select("id, filename, original_name, mime_type, size, width, height, thumb_width, thumb_height, created_at").
		First(&image, id).Error
	if err != nil {
		if translate(err) == ErrNotFound {
			return nil, notFound("image", id)
		}
		return nil, translate(err)
	}
	return &image, nil
}

// List returns image metadata pages, newest first.
func (s *ImageStore) List(offset, limit int) ([]models.Image, int64, error) {
	var total int64
	if err := s.db.Model(&models.Image{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	var images []models.Image
	err := s.db.Select("id, filename, original_name, mime_type, size, width, height, thumb_width, thumb_height, created_at").
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&images).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return images, total, nil
}

// Delete removes an image row. Associations referencing it go away via
// the foreign key cascade.
func (s *ImageStore) Delete(id uint64) error {
	result := s.db.Delete(&models.Image{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("image", id)
	}
	return nil
}
