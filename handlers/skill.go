package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ismilebharmal/prompt-techniques/models"
)

type skillCreateRequest struct {
	Name       string `json:"name" binding:"required,max=150"`
	Category   string `json:"category" binding:"max=100"`
	Level      int    `json:"level" binding:"min=0,max=100"`
	OrderIndex int    `json:"order_index"`
}

type skillUpdateRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=150"`
	Category   *string `json:"category" binding:"omitempty,max=100"`
	Level      *int    `json:"level" binding:"omitempty,min=0,max=100"`
	OrderIndex *int    `json:"order_index"`
}

func (h *Handlers) SkillList(c *gin.Context) {
	skills, err := h.Skills.List()
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *Handlers) SkillCreate(c *gin.Context) {
	r := skillCreateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		abortBindError(c, err)
		return
	}
	skill := models.Skill{
		Name:       r.Name,
		Category:   r.Category,
		Level:      r.Level,
		OrderIndex: r.OrderIndex,
	}
	if err := h.Skills.Create(&skill); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *Handlers) SkillUpdate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r := skillUpdateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		abortBindError(c, err)
		return
	}
	updates := map[string]interface{}{}
	setString(updates, "name", r.Name)
	setString(updates, "category", r.Category)
	setInt(updates, "level", r.Level)
	setInt(updates, "order_index", r.OrderIndex)
	if err := h.Skills.Update(id, updates); err != nil {
		abortStoreError(c, err)
		return
	}
	skill, err := h.Skills.Get(id)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *Handlers) SkillDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Skills.Delete(id); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": ""})
}
