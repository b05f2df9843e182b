package models

import "golang.org/x/crypto/bcrypt"

// AdminUser gates the dashboard API. A single bootstrap user is created
// from config on startup.
type AdminUser struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
	Username     string `gorm:"type:varchar(150);not null;index:uniq_admin_username,unique" json:"username"`
	PasswordHash string `gorm:"type:varchar(128);not null" json:"-"`
}

func (u *AdminUser) SetPassword(plainText string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainText), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *AdminUser) CheckPassword(plainText string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plainText)) == nil
}
