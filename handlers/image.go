package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ismilebharmal/prompt-techniques/utils"
)

// ImageUpload accepts a multipart "file" part, sniffs the real content
// type from the payload and hands it to the image store.
func (h *Handlers) ImageUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file part"})
		return
	}
	if file.Size > h.cfg.Upload.MaxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("file exceeds the %d byte limit", h.cfg.Upload.MaxImageSize)})
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file part"})
		return
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, h.cfg.Upload.MaxImageSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file part"})
		return
	}
	mimeType := http.DetectContentType(data)
	image, err := h.Images.Store(data, file.Filename, mimeType)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

// ImageFetch serves the binary. Images never change, so the response
// carries a long max-age; ?thumb=1 returns the jpeg thumbnail instead.
func (h *Handlers) ImageFetch(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	image, err := h.Images.Fetch(id)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.Header("cache-control", "private, max-age="+strconv.Itoa(utils.CacheImages))
	if c.Query("thumb") == "1" && len(image.ThumbData) > 0 {
		c.Data(http.StatusOK, "image/jpeg", image.ThumbData)
		return
	}
	if c.Query("download") == "1" {
		c.Header("content-disposition", "attachment; filename=\""+image.OriginalName+"\"")
	}
	c.Data(http.StatusOK, image.MimeType, image.Data)
}

func (h *Handlers) AdminImageList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage := 50
	images, total, err := h.Images.List((page-1)*perPage, perPage)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": images, "total": total, "page": page, "per_page": perPage})
}

func (h *Handlers) ImageDelete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Images.Delete(id); err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": ""})
}
