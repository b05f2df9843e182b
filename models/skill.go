package models

type Skill struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
	Name       string `gorm:"type:varchar(150);not null" json:"name"`
	Category   string `gorm:"type:varchar(100);index" json:"category"`
	Level      int    `gorm:"not null;default:0" json:"level"` // 0-100
	OrderIndex int    `gorm:"not null;default:0" json:"order_index"`
}
