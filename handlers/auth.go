package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ismilebharmal/prompt-techniques/auth"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handlers) AdminLogin(c *gin.Context) {
	r := loginRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		abortBindError(c, err)
		return
	}
	admin, err := h.Admins.GetByUsername(r.Username)
	if err != nil || !admin.CheckPassword(r.Password) {
		// Same response for unknown user and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	session := auth.LoadSession(c)
	if err := session.LoginAdmin(admin.ID); err != nil {
		logrus.WithError(err).Error("cannot save session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "username": admin.Username})
}

func (h *Handlers) AdminLogout(c *gin.Context) {
	auth.LoadSession(c).Logout()
	c.JSON(http.StatusOK, gin.H{"error": ""})
}

// AdminStatus tells the dashboard whether the session is still good.
func (h *Handlers) AdminStatus(c *gin.Context) {
	admin := auth.LoadSession(c).Admin(h.Admins)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "username": admin.Username})
}
