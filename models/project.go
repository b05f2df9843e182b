package models

// Project is a portfolio entry. ImageID mirrors the cover association
// and is maintained by the association store - it is a denormalized
// cache, the project_images.is_cover flag is authoritative.
type Project struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
	Title       string  `gorm:"type:varchar(300);not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"type:varchar(100);index" json:"category"`
	ProjectType string  `gorm:"type:varchar(100)" json:"project_type"`
	OrderIndex  int     `gorm:"not null;default:0;index:project_featured_order,priority:2" json:"order_index"`
	Featured    bool    `gorm:"not null;default:false;index:project_featured_order,priority:1" json:"featured"`
	LiveURL     string  `gorm:"type:varchar(500)" json:"live_url"`
	RepoURL     string  `gorm:"type:varchar(500)" json:"repo_url"`
	StartedAt   *int64  `json:"started_at"`
	CompletedAt *int64  `json:"completed_at"`
	ImageID     *uint64 `json:"image_id"`
	Image       *Image  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}
