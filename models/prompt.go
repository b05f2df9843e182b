package models

// Prompt is a reusable prompt template shown in the public gallery.
// Tags is a comma separated list, matched with LIKE in search.
type Prompt struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
	Title       string `gorm:"type:varchar(300);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Content     string `gorm:"type:text;not null" json:"content"`
	Category    string `gorm:"type:varchar(100);index" json:"category"`
	Tags        string `gorm:"type:varchar(500)" json:"tags"`
	Featured    bool   `gorm:"not null;default:false;index" json:"featured"`
	OrderIndex  int    `gorm:"not null;default:0" json:"order_index"`
	CopyCount   int64  `gorm:"not null;default:0" json:"copy_count"`
}
