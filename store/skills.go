package store

import (
	"gorm.io/gorm"

	"github.com/ismilebharmal/prompt-techniques/models"
)

type SkillStore struct {
	db *gorm.DB
}

func NewSkillStore(db *gorm.DB) *SkillStore {
	return &SkillStore{db: db}
}

func (s *SkillStore) Create(skill *models.Skill) error {
	return translate(s.db.Create(skill).Error)
}

func (s *SkillStore) Get(id uint64) (*models.Skill, error) {
	var skill models.Skill
	if err := s.db.First(&skill, id).Error; err != nil {
		if translate(err) == ErrNotFound {
			return nil, notFound("skill", id)
		}
		return nil, translate(err)
	}
	return &skill, nil
}

func (s *SkillStore) List() ([]models.Skill, error) {
	var skills []models.Skill
	err := s.db.Order("category ASC, order_index ASC, id ASC").Find(&skills).Error
	if err != nil {
		return nil, translate(err)
	}
	return skills, nil
}

func (s *SkillStore) Update(id uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := s.db.Model(&models.Skill{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("skill", id)
	}
	return nil
}

func (s *SkillStore) Delete(id uint64) error {
	result := s.db.Delete(&models.Skill{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("skill", id)
	}
	return nil
}
