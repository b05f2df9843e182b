package models

// Slide is one entry of the landing page hero slideshow. Like Project,
// ImageID is a cache of the cover association.
type Slide struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
	Title       string `gorm:"type:varchar(300);not null" json:"title"`
	Subtitle    string `gorm:"type:varchar(300)" json:"subtitle"`
	Description string `gorm:"type:text" json:"description"`
	OrderIndex  int    `gorm:"not null;default:0;index:slide_active_order,priority:2" json:"order_index"`
	// No default tag: gorm would omit a zero-value (inactive) field on
	// Create and the column default would silently flip it back on.
	Active  bool    `gorm:"not null;index:slide_active_order,priority:1" json:"active"`
	ImageID *uint64 `json:"image_id"`
	Image   *Image  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}
