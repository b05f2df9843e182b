package models

// ProjectImage links a project to an image. The (project_id, image_id)
// pair is unique - an image can be attached to a project at most once.
// DisplayOrder is presentation only, ties break by association id.
type ProjectImage struct {
	ID           uint64  `gorm:"primaryKey" json:"id"`
	ProjectID    uint64  `gorm:"not null;index:uniq_project_image,unique,priority:1" json:"project_id"`
	Project      Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ImageID      uint64  `gorm:"not null;index:uniq_project_image,unique,priority:2" json:"image_id"`
	Image        Image   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	DisplayOrder int     `gorm:"not null;default:0" json:"display_order"`
	IsCover      bool    `gorm:"not null;default:false" json:"is_cover"`
	CreatedAt    int64   `json:"created_at"`
}

// SlideImage is the slide counterpart of ProjectImage.
type SlideImage struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	SlideID      uint64 `gorm:"not null;index:uniq_slide_image,unique,priority:1" json:"slide_id"`
	Slide        Slide  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ImageID      uint64 `gorm:"not null;index:uniq_slide_image,unique,priority:2" json:"image_id"`
	Image        Image  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
	IsCover      bool   `gorm:"not null;default:false" json:"is_cover"`
	CreatedAt    int64  `json:"created_at"`
}
