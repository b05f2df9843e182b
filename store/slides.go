package store

import (
	"gorm.io/gorm"

	"github.com/ismilebharmal/prompt-techniques/models"
)

// SlideStore is CRUD over hero slideshow slides.
type SlideStore struct {
	db     *gorm.DB
	Images *AssociationStore
}

func NewSlideStore(db *gorm.DB) *SlideStore {
	return &SlideStore{db: db, Images: SlideImages(db)}
}

type SlideWithImages struct {
	models.Slide
	Images []AssociatedImage `json:"images"`
}

func (s *SlideStore) Create(slide *models.Slide) error {
	return translate(s.db.Create(slide).Error)
}

func (s *SlideStore) Get(id uint64) (*models.Slide, error) {
	var slide models.Slide
	if err := s.db.First(&slide, id).Error; err != nil {
		if translate(err) == ErrNotFound {
			return nil, notFound("slide", id)
		}
		return nil, translate(err)
	}
	return &slide, nil
}

func (s *SlideStore) GetWithImages(id uint64) (*SlideWithImages, error) {
	slide, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	images, err := s.Images.List(id)
	if err != nil {
		return nil, err
	}
	return &SlideWithImages{Slide: *slide, Images: images}, nil
}

// List returns slides in slideshow order; active filters when non-nil.
func (s *SlideStore) List(active *bool) ([]models.Slide, error) {
	query := s.db.Order("order_index ASC, id ASC")
	if active != nil {
		query = query.Where("active = ?", *active)
	}
	var slides []models.Slide
	if err := query.Find(&slides).Error; err != nil {
		return nil, translate(err)
	}
	return slides, nil
}

// ListActiveWithImages is the slideshow read path: active slides in
// order, each with its ordered image metadata.
func (s *SlideStore) ListActiveWithImages() ([]SlideWithImages, error) {
	active := true
	slides, err := s.List(&active)
	if err != nil {
		return nil, err
	}
	result := make([]SlideWithImages, 0, len(slides))
	for _, slide := range slides {
		images, err := s.Images.List(slide.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, SlideWithImages{Slide: slide, Images: images})
	}
	return result, nil
}

func (s *SlideStore) Update(id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := s.db.Model(&models.Slide{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("slide", id)
	}
	return nil
}

func (s *SlideStore) Delete(id uint64) error {
	result := s.db.Delete(&models.Slide{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("slide", id)
	}
	return nil
}
