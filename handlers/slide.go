package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ismilebharmal/prompt-techniques/models"
)

type slideCreateRequest struct {
	Title       string `json:"title" binding:"required,max=300"`
	Subtitle    string `json:"subtitle" binding:"max=300"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
	Active      *bool  `json:"active"`
}

type slideUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=300"`
	Subtitle    *string `json:"subtitle" binding:"omitempty,max=300"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
	Active      *bool   `json:"active"`
}

// SlideList feeds the hero slideshow: active slides in order, each with
// its image metadata.
func (h *Handlers) SlideList(c *gin.Context) {
	slides, err := h.Slides.ListActiveWithImages()
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, slides)
}

// AdminSlideList includes inactive slides for the dashboard.
func (h *Handlers) AdminSlideList(c *gin.Context) {
	slides, err := h.Slides.List(nil)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, slides)
}

func (h *Handlers) SlideGet(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	slide, err := h.Slides.GetWithImages(id)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *Handlers) SlideCreate(c *gin.Context) {
	r := slideCreateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		abortBindError(c, err)
		return
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	slide := models.Slide{
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Description: r.Description,
		OrderIndex:  r.OrderIndex,
		Active:      active,
	}
	if err := h.Slides.Create(&slide); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *Handlers) SlideUpdate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r := slideUpdateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		abortBindError(c, err)
		return
	}
	updates := map[string]interface{}{}
	setString(updates, "title", r.Title)
	setString(updates, "subtitle", r.Subtitle)
	setString(updates, "description", r.Description)
	setInt(updates, "order_index", r.OrderIndex)
	setBool(updates, "active", r.Active)
	if err := h.Slides.Update(id, updates); err != nil {
		abortStoreError(c, err)
		return
	}
	slide, err := h.Slides.GetWithImages(id)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *Handlers) SlideDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Slides.Delete(id); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": ""})
}
