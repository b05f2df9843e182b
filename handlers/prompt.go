package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ismilebharmal/prompt-techniques/models"
	"github.com/ismilebharmal/prompt-techniques/store"
)

type promptListRequest struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	Featured string `form:"featured"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

type promptCreateRequest struct {
	Title       string `json:"title" binding:"required,max=300"`
	Description string `json:"description"`
	Content     string `json:"content" binding:"required"`
	Category    string `json:"category" binding:"max=100"`
	Tags        string `json:"tags" binding:"max=500"`
	Featured    bool   `json:"featured"`
	OrderIndex  int    `json:"order_index"`
}

type promptUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=300"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Tags        *string `json:"tags" binding:"omitempty,max=500"`
	Featured    *bool   `json:"featured"`
	OrderIndex  *int    `json:"order_index"`
}

// PromptList is the public gallery: full-text-ish search plus category
// and featured filters, paged.
func (h *Handlers) PromptList(c *gin.Context) {
	r := promptListRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		abortBindError(c, err)
		return
	}
	if r.PerPage <= 0 || r.PerPage > 100 {
		r.PerPage = 50
	}
	if r.Page < 1 {
		r.Page = 1
	}
	params := store.ListPromptsParams{
		Query:    r.Query,
		Category: r.Category,
		Offset:   (r.Page - 1) * r.PerPage,
		Limit:    r.PerPage,
	}
	if r.Featured != "" {
		featured := r.Featured == "1" || r.Featured == "true"
		params.Featured = &featured
	}
	prompts, total, err := h.Prompts.List(params)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompts": prompts, "total": total, "page": r.Page, "per_page": r.PerPage})
}

func (h *Handlers) PromptGet(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	prompt, err := h.Prompts.Get(id)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, prompt)
}

func (h *Handlers) PromptCategories(c *gin.Context) {
	categories, err := h.Prompts.Categories()
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// PromptCopy counts one-click template copies from the gallery.
func (h *Handlers) PromptCopy(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Prompts.IncrementCopyCount(id); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": ""})
}

func (h *Handlers) PromptCreate(c *gin.Context) {
	r := promptCreateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		abortBindError(c, err)
		return
	}
	prompt := models.Prompt{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		Category:    r.Category,
		Tags:        r.Tags,
		Featured:    r.Featured,
		OrderIndex:  r.OrderIndex,
	}
	if err := h.Prompts.Create(&prompt); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, prompt)
}

func (h *Handlers) PromptUpdate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r := promptUpdateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		abortBindError(c, err)
		return
	}
	updates := map[string]interface{}{}
	setString(updates, "title", r.Title)
	setString(updates, "description", r.Description)
	setString(updates, "content", r.Content)
	setString(updates, "category", r.Category)
	setString(updates, "tags", r.Tags)
	setBool(updates, "featured", r.Featured)
	setInt(updates, "order_index", r.OrderIndex)
	if err := h.Prompts.Update(id, updates); err != nil {
		abortStoreError(c, err)
		return
	}
	prompt, err := h.Prompts.Get(id)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, prompt)
}

func (h *Handlers) PromptDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Prompts.Delete(id); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": ""})
}

// AdminPromptList lists everything without public filters, newest
// first, for the dashboard table.
func (h *Handlers) AdminPromptList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage := 50
	prompts, total, err := h.Prompts.List(store.ListPromptsParams{Offset: (page - 1) * perPage, Limit: perPage})
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompts": prompts, "total": total, "page": page, "per_page": perPage})
}

func setString(updates map[string]interface{}, key string, value *string) {
	if value != nil {
		updates[key] = *value
	}
}

func setBool(updates map[string]interface{}, key string, value *bool) {
	if value != nil {
		updates[key] = *value
	}
}

func setInt(updates map[string]interface{}, key string, value *int) {
	if value != nil {
		updates[key] = *value
	}
}
