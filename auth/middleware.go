package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ismilebharmal/prompt-techniques/store"
)

const adminContextKey = "admin"

// RequireAdmin guards the dashboard routes: a valid session pointing at
// an existing admin user, or 401.
func RequireAdmin(admins *store.AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := LoadSession(c).Admin(admins)
		if admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
			return
		}
		c.Set(adminContextKey, admin)
		c.Next()
	}
}
