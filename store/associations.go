package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AssociationStore manages the junction table between one owning entity
// kind (project or slide) and images. Both kinds share the same shape,
// so a single implementation is parameterized with the table names.
//
// Cover semantics: at most one association per owner carries is_cover.
// Every cover write funnels through SetCover / Attach, which express
// the change as a single conditional UPDATE inside a transaction, so a
// concurrent reader never sees two covers. The owning entity's legacy
// image_id column is maintained in the same transaction as a
// denormalized cache of the cover - the junction flag is authoritative.
type AssociationStore struct {
	db         *gorm.DB
	table      string // junction table
	ownerCol   string // owner fk column in the junction
	ownerTable string // owning entity table
	ownerName  string // for error messages
}

func ProjectImages(db *gorm.DB) *AssociationStore {
	return &AssociationStore{db: db, table: "project_images", ownerCol: "project_id", ownerTable: "projects", ownerName: "project"}
}

func SlideImages(db *gorm.DB) *AssociationStore {
	return &AssociationStore{db: db, table: "slide_images", ownerCol: "slide_id", ownerTable: "slides", ownerName: "slide"}
}

// AssociatedImage is one row of List: image metadata joined with the
// association's order and cover flag. No binary columns.
type AssociatedImage struct {
	AssociationID uint64 `json:"association_id"`
	ImageID       uint64 `json:"image_id"`
	Filename      string `json:"filename"`
	OriginalName  string `json:"original_name"`
	MimeType      string `json:"mime_type"`
	Size          int64  `json:"size"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	IsCover       bool   `json:"is_cover"`
	DisplayOrder  int    `json:"display_order"`
}

// ImageOrder is one (image, position) pair of a Reorder call.
type ImageOrder struct {
	ImageID uint64 `json:"image_id" binding:"required"`
	Order   int    `json:"order"`
}

// Attach links an image to an owner. Attaching the same image twice is
// a conflict, backed by the unique (owner, image) index.
func (s *AssociationStore) Attach(ownerID, imageID uint64, isCover bool, order int) (uint64, error) {
	var id uint64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.ownerExists(tx, ownerID); err != nil {
			return err
		}
		var n int64
		if err := tx.Table("images").Where("id = ?", imageID).Count(&n).Error; err != nil {
			return translate(err)
		}
		if n == 0 {
			return notFound("image", imageID)
		}
		if err := tx.Table(s.table).Where(s.ownerCol+" = ? AND image_id = ?", ownerID, imageID).Count(&n).Error; err != nil {
			return translate(err)
		}
		if n > 0 {
			return fmt.Errorf("image %d already attached to %s %d: %w", imageID, s.ownerName, ownerID, ErrConflict)
		}
		err := tx.Table(s.table).Create(map[string]interface{}{
			s.ownerCol:      ownerID,
			"image_id":      imageID,
			"display_order": order,
			"is_cover":      false,
			"created_at":    time.Now().Unix(),
		}).Error
		if err != nil {
			return translate(err)
		}
		if isCover {
			if err := s.applyCover(tx, ownerID, imageID); err != nil {
				return err
			}
		}
		return translate(tx.Table(s.table).
			Select("id").
			Where(s.ownerCol+" = ? AND image_id = ?", ownerID, imageID).
			Scan(&id).Error)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Detach removes the link if present. Detaching an absent link is a
// no-op - callers treat DELETE as idempotent.
func (s *AssociationStore) Detach(ownerID, imageID uint64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var row struct {
			ID      uint64
			IsCover bool
		}
		result := tx.Table(s.table).
			Select("id, is_cover").
			Where(s.ownerCol+" = ? AND image_id = ?", ownerID, imageID).
			Limit(1).
			Scan(&row)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		if err := tx.Exec("DELETE FROM "+s.table+" WHERE id = ?", row.ID).Error; err != nil {
			return translate(err)
		}
		if row.IsCover {
			// The cover is gone, clear the cached reference as well.
			if err := tx.Table(s.ownerTable).Where("id = ?", ownerID).Update("image_id", nil).Error; err != nil {
				return translate(err)
			}
		}
		return nil
	})
}

// SetCover marks the given image as the owner's only cover. The clear
// and set are one conditional UPDATE, so two racing calls can never
// leave two covers behind - last write wins whole.
func (s *AssociationStore) SetCover(ownerID, imageID uint64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Table(s.table).Where(s.ownerCol+" = ? AND image_id = ?", ownerID, imageID).Count(&n).Error; err != nil {
			return translate(err)
		}
		if n == 0 {
			if err := s.ownerExists(tx, ownerID); err != nil {
				return err
			}
			return fmt.Errorf("image %d is not attached to %s %d: %w", imageID, s.ownerName, ownerID, ErrNotFound)
		}
		return s.applyCover(tx, ownerID, imageID)
	})
}

func (s *AssociationStore) applyCover(tx *gorm.DB, ownerID, imageID uint64) error {
	err := tx.Table(s.table).
		Where(s.ownerCol+" = ?", ownerID).
		Update("is_cover", gorm.Expr("image_id = ?", imageID)).Error
	if err != nil {
		return translate(err)
	}
	return translate(tx.Table(s.ownerTable).Where("id = ?", ownerID).Update("image_id", imageID).Error)
}

// Reorder bulk-updates display positions. Images of the owner that are
// not listed keep their current position; listed images that are not
// attached are skipped. Applied in one transaction, so readers never
// observe a half-applied ordering.
func (s *AssociationStore) Reorder(ownerID uint64, orders []ImageOrder) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.ownerExists(tx, ownerID); err != nil {
			return err
		}
		for _, o := range orders {
			err := tx.Table(s.table).
				Where(s.ownerCol+" = ? AND image_id = ?", ownerID, o.ImageID).
				Update("display_order", o.Order).Error
			if err != nil {
				return translate(err)
			}
		}
		return nil
	})
}

// List returns the owner's images ordered by display_order, ties broken
// by association id, so repeated calls yield the same sequence. An
// unknown owner is an error, distinct from an owner with no images.
func (s *AssociationStore) List(ownerID uint64) ([]AssociatedImage, error) {
	if err := s.ownerExists(s.db, ownerID); err != nil {
		return nil, err
	}
	result := []AssociatedImage{}
	err := s.db.Table(s.table).
		Select(s.table+".id AS association_id, "+s.table+".image_id, images.filename, images.original_name, images.mime_type, images.size, images.width, images.height, "+s.table+".is_cover, "+s.table+".display_order").
		Joins("JOIN images ON images.id = "+s.table+".image_id").
		Where(s.ownerCol+" = ?", ownerID).
		Order(s.table + ".display_order ASC, " + s.table + ".id ASC").
		Scan(&result).Error
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (s *AssociationStore) ownerExists(tx *gorm.DB, ownerID uint64) error {
	var n int64
	if err := tx.Table(s.ownerTable).Where("id = ?", ownerID).Count(&n).Error; err != nil {
		return translate(err)
	}
	if n == 0 {
		return notFound(s.ownerName, ownerID)
	}
	return nil
}
