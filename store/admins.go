package store

import (
	"gorm.io/gorm"

	"github.com/ismilebharmal/prompt-techniques/models"
)

type AdminStore struct {
	db *gorm.DB
}

func NewAdminStore(db *gorm.DB) *AdminStore {
	return &AdminStore{db: db}
}

func (s *AdminStore) GetByUsername(username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.db.First(&admin, "username = ?", username).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (s *AdminStore) GetByID(id uint64) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.db.First(&admin, id).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

// EnsureAdmin creates the bootstrap dashboard user when it does not
// exist yet. An empty password skips creation, leaving the admin API
// unreachable until one is configured.
func (s *AdminStore) EnsureAdmin(username, password string) error {
	if password == "" {
		return nil
	}
	var n int64
	if err := s.db.Model(&models.AdminUser{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return translate(err)
	}
	if n > 0 {
		return nil
	}
	admin := models.AdminUser{Username: username}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	return translate(s.db.Create(&admin).Error)
}
