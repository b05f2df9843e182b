package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// Image rows never change after upload, so fetch responses can be
	// cached for a long time.
	CacheImages = 30 * 86400
)

// CacheControl returns middleware that stamps every response with a
// cache-control header. maxAge == 0 means no-cache; a handler can
// still override the header for its own responses.
func CacheControl(maxAge int) gin.HandlerFunc {
	value := "no-cache"
	if maxAge > 0 {
		value = "private, max-age=" + strconv.Itoa(maxAge)
	}
	return func(c *gin.Context) {
		c.Header("cache-control", value)
		c.Next()
	}
}
