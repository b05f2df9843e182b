package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ismilebharmal/prompt-techniques/models"
)

type projectCreateRequest struct {
	Title       string `json:"title" binding:"required,max=300"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"max=100"`
	ProjectType string `json:"project_type" binding:"max=100"`
	OrderIndex  int    `json:"order_index"`
	Featured    bool   `json:"featured"`
	LiveURL     string `json:"live_url" binding:"omitempty,url,max=500"`
	RepoURL     string `json:"repo_url" binding:"omitempty,url,max=500"`
	StartedAt   *int64 `json:"started_at"`
	CompletedAt *int64 `json:"completed_at"`
}

type projectUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=300"`
	Description *string `json:"description"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	ProjectType *string `json:"project_type" binding:"omitempty,max=100"`
	OrderIndex  *int    `json:"order_index"`
	Featured    *bool   `json:"featured"`
	LiveURL     *string `json:"live_url" binding:"omitempty,url,max=500"`
	RepoURL     *string `json:"repo_url" binding:"omitempty,url,max=500"`
	StartedAt   *int64  `json:"started_at"`
	CompletedAt *int64  `json:"completed_at"`
}

// ProjectList serves the public portfolio grid; ?featured=1 narrows to
// the landing page picks.
func (h *Handlers) ProjectList(c *gin.Context) {
	var featured *bool
	if v := c.Query("featured"); v != "" {
		f := v == "1" || v == "true"
		featured = &f
	}
	projects, err := h.Projects.List(featured)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ProjectGet returns the project together with its ordered gallery
// image metadata. Binary content is fetched per image separately.
func (h *Handlers) ProjectGet(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	project, err := h.Projects.GetWithImages(id)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handlers) ProjectCreate(c *gin.Context) {
	r := projectCreateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		abortBindError(c, err)
		return
	}
	project := models.Project{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		ProjectType: r.ProjectType,
		OrderIndex:  r.OrderIndex,
		Featured:    r.Featured,
		LiveURL:     r.LiveURL,
		RepoURL:     r.RepoURL,
		StartedAt:   r.StartedAt,
		CompletedAt: r.CompletedAt,
	}
	if err := h.Projects.Create(&project); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handlers) ProjectUpdate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r := projectUpdateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		abortBindError(c, err)
		return
	}
	updates := map[string]interface{}{}
	setString(updates, "title", r.Title)
	setString(updates, "description", r.Description)
	setString(updates, "category", r.Category)
	setString(updates, "project_type", r.ProjectType)
	setInt(updates, "order_index", r.OrderIndex)
	setBool(updates, "featured", r.Featured)
	setString(updates, "live_url", r.LiveURL)
	setString(updates, "repo_url", r.RepoURL)
	if r.StartedAt != nil {
		updates["started_at"] = *r.StartedAt
	}
	if r.CompletedAt != nil {
		updates["completed_at"] = *r.CompletedAt
	}
	if err := h.Projects.Update(id, updates); err != nil {
		abortStoreError(c, err)
		return
	}
	project, err := h.Projects.GetWithImages(id)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handlers) ProjectDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Projects.Delete(id); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": ""})
}
