package handlers

import (
	"gorm.io/gorm"

	"github.com/ismilebharmal/prompt-techniques/config"
	"github.com/ismilebharmal/prompt-techniques/store"
)

// Handlers bundles the stores behind the HTTP surface. Everything is
// constructed once at startup and injected - no package state.
type Handlers struct {
	cfg      *config.Config
	Images   *store.ImageStore
	Prompts  *store.PromptStore
	Projects *store.ProjectStore
	Slides   *store.SlideStore
	Skills   *store.SkillStore
	Admins   *store.AdminStore
}

func New(db *gorm.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		cfg:      cfg,
		Images:   store.NewImageStore(db, cfg.Upload.MaxImageSize, cfg.Upload.ThumbSize),
		Prompts:  store.NewPromptStore(db),
		Projects: store.NewProjectStore(db),
		Slides:   store.NewSlideStore(db),
		Skills:   store.NewSkillStore(db),
		Admins:   store.NewAdminStore(db),
	}
}
