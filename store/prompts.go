package store

import (
	"gorm.io/gorm"

	"github.com/ismilebharmal/prompt-techniques/models"
)

// PromptStore is CRUD plus gallery search over prompt templates.
type PromptStore struct {
	db *gorm.DB
}

func NewPromptStore(db *gorm.DB) *PromptStore {
	return &PromptStore{db: db}
}

// ListPromptsParams are the public gallery filters.
type ListPromptsParams struct {
	Query    string
	Category string
	Featured *bool
	Offset   int
	Limit    int
}

func (s *PromptStore) Create(prompt *models.Prompt) error {
	return translate(s.db.Create(prompt).Error)
}

func (s *PromptStore) Get(id uint64) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := s.db.First(&prompt, id).Error; err != nil {
		if translate(err) == ErrNotFound {
			return nil, notFound("prompt", id)
		}
		return nil, translate(err)
	}
	return &prompt, nil
}

func (s *PromptStore) List(params ListPromptsParams) ([]models.Prompt, int64, error) {
	query := s.db.Model(&models.Prompt{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR content LIKE ? OR tags LIKE ?", like, like, like, like)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Featured != nil {
		query = query.Where("featured = ?", *params.Featured)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	query = query.Order("order_index ASC, id ASC")
	if params.Limit > 0 {
		query = query.Offset(params.Offset).Limit(params.Limit)
	}
	var prompts []models.Prompt
	if err := query.Find(&prompts).Error; err != nil {
		return nil, 0, translate(err)
	}
	return prompts, total, nil
}

// Categories returns the distinct category values in use, for the
// gallery filter dropdown.
func (s *PromptStore) Categories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Prompt{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

// IncrementCopyCount bumps the one-click copy counter.
func (s *PromptStore) IncrementCopyCount(id uint64) error {
	result := s.db.Model(&models.Prompt{}).Where("id = ?", id).
		UpdateColumn("copy_count", gorm.Expr("copy_count + 1"))
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("prompt", id)
	}
	return nil
}

func (s *PromptStore) Update(id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := s.db.Model(&models.Prompt{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("prompt", id)
	}
	return nil
}

func (s *PromptStore) Delete(id uint64) error {
	result := s.db.Delete(&models.Prompt{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("prompt", id)
	}
	return nil
}
