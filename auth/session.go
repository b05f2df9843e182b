package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/ismilebharmal/prompt-techniques/models"
	"github.com/ismilebharmal/prompt-techniques/store"
)

const adminIDKey = "admin_id"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{Session: sessions.Default(c)}
}

func (s *Session) LoginAdmin(id uint64) error {
	s.Set(adminIDKey, id)
	return s.Save()
}

func (s *Session) Logout() {
	s.Delete(adminIDKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = s.Save()
}

// Admin resolves the session's admin user, nil when not logged in.
func (s *Session) Admin(admins *store.AdminStore) *models.AdminUser {
	id, ok := s.Get(adminIDKey).(uint64)
	if !ok || id == 0 {
		return nil
	}
	admin, err := admins.GetByID(id)
	if err != nil {
		return nil
	}
	return admin
}
