package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ismilebharmal/prompt-techniques/store"
)

// The image association sub-operations are identical for projects and
// slides, so the handlers are built once per association store and
// mounted under both route groups.

type attachRequest struct {
	ImageID uint64 `json:"image_id" binding:"required"`
	IsCover bool   `json:"is_cover"`
	Order   int    `json:"order"`
}

type setCoverRequest struct {
	ImageID uint64 `json:"image_id" binding:"required"`
}

type reorderRequest struct {
	Images []store.ImageOrder `json:"images" binding:"required,min=1,dive"`
}

func attachImage(assoc *store.AssociationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		r := attachRequest{}
		if err := c.ShouldBindJSON(&r); err != nil {
			abortBindError(c, err)
			return
		}
		associationID, err := assoc.Attach(id, r.ImageID, r.IsCover, r.Order)
		if err != nil {
			abortStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"error": "", "association_id": associationID})
	}
}

func detachImage(assoc *store.AssociationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		imageID, ok := paramID(c, "imageId")
		if !ok {
			return
		}
		// Detach is idempotent, an absent link is still a 200.
		if err := assoc.Detach(id, imageID); err != nil {
			abortStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"error": ""})
	}
}

func setCoverImage(assoc *store.AssociationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		r := setCoverRequest{}
		if err := c.ShouldBindJSON(&r); err != nil {
			abortBindError(c, err)
			return
		}
		if err := assoc.SetCover(id, r.ImageID); err != nil {
			abortStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"error": ""})
	}
}

func reorderImages(assoc *store.AssociationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		r := reorderRequest{}
		if err := c.ShouldBindJSON(&r); err != nil {
			abortBindError(c, err)
			return
		}
		if err := assoc.Reorder(id, r.Images); err != nil {
			abortStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"error": ""})
	}
}

func listImages(assoc *store.AssociationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		images, err := assoc.List(id)
		if err != nil {
			abortStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, images)
	}
}

// mountAssociationRoutes wires the five sub-operations under an owning
// entity group.
func mountAssociationRoutes(g *gin.RouterGroup, assoc *store.AssociationStore) {
	g.GET("/:id/images", listImages(assoc))
	g.POST("/:id/images", attachImage(assoc))
	g.DELETE("/:id/images/:imageId", detachImage(assoc))
	g.PUT("/:id/images/cover", setCoverImage(assoc))
	g.PUT("/:id/images/order", reorderImages(assoc))
}
