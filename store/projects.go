package store

import (
	"gorm.io/gorm"

	"github.com/ismilebharmal/prompt-techniques/models"
)

// ProjectStore is CRUD over projects plus the image-composed read path.
type ProjectStore struct {
	db     *gorm.DB
	Images *AssociationStore
}

func NewProjectStore(db *gorm.DB) *ProjectStore {
	return &ProjectStore{db: db, Images: ProjectImages(db)}
}

type ProjectWithImages struct {
	models.Project
	Images []AssociatedImage `json:"images"`
}

func (s *ProjectStore) Create(project *models.Project) error {
	return translate(s.db.Create(project).Error)
}

func (s *ProjectStore) Get(id uint64) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if translate(err) == ErrNotFound {
			return nil, notFound("project", id)
		}
		return nil, translate(err)
	}
	return &project, nil
}

// GetWithImages joins the project with its ordered image metadata.
func (s *ProjectStore) GetWithImages(id uint64) (*ProjectWithImages, error) {
	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	images, err := s.Images.List(id)
	if err != nil {
		return nil, err
	}
	return &ProjectWithImages{Project: *project, Images: images}, nil
}

// List returns projects ordered for presentation; featured filters when
// non-nil.
func (s *ProjectStore) List(featured *bool) ([]models.Project, error) {
	query := s.db.Order("order_index ASC, id ASC")
	if featured != nil {
		query = query.Where("featured = ?", *featured)
	}
	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, translate(err)
	}
	return projects, nil
}

func (s *ProjectStore) Update(id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := s.db.Model(&models.Project{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("project", id)
	}
	return nil
}

// Delete removes the project; its associations go with it via the
// foreign key cascade, the image rows stay.
func (s *ProjectStore) Delete(id uint64) error {
	result := s.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("project", id)
	}
	return nil
}
