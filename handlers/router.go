package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/ismilebharmal/prompt-techniques/auth"
	"github.com/ismilebharmal/prompt-techniques/config"
	"github.com/ismilebharmal/prompt-techniques/utils"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

// NewRouter builds the full HTTP surface around an injected DB handle.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if cfg.Server.Debug {
		router.Use(utils.ErrorLogMiddleware)
	}

	allowOrigins := []string{"*"}
	if cfg.Server.CORSOrigins != "" {
		allowOrigins = splitComma(cfg.Server.CORSOrigins)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	sessionKey := cfg.Server.SessionKey
	if sessionKey == "" {
		// Sessions won't survive a restart without a configured key.
		sessionKey = uuid.NewString()
	}
	cookieStore := gormsessions.NewStore(db, true, []byte(sessionKey))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime, HttpOnly: true})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))

	if !cfg.Server.Debug {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/images"})))
	}
	router.Use(utils.CacheControl(0)) // no-cache by default, image fetch overrides

	h := New(db, cfg)
	loginLimiter := utils.NewIPRateLimiter(rate.Every(2*time.Second), 5)

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public gallery surface
	api.GET("/prompts", h.PromptList)
	api.GET("/prompts/:id", h.PromptGet)
	api.POST("/prompts/:id/copy", h.PromptCopy)
	api.GET("/prompt-categories", h.PromptCategories)
	api.GET("/projects", h.ProjectList)
	api.GET("/projects/:id", h.ProjectGet)
	api.GET("/slides", h.SlideList)
	api.GET("/skills", h.SkillList)
	api.GET("/images/:id", h.ImageFetch)

	// Admin dashboard surface
	admin := api.Group("/admin")
	admin.POST("/login", loginLimiter.Handler(), h.AdminLogin)
	admin.POST("/logout", h.AdminLogout)
	admin.GET("/status", h.AdminStatus)

	guarded := admin.Group("", auth.RequireAdmin(h.Admins))
	guarded.GET("/prompts", h.AdminPromptList)
	guarded.POST("/prompts", h.PromptCreate)
	guarded.PUT("/prompts/:id", h.PromptUpdate)
	guarded.DELETE("/prompts/:id", h.PromptDelete)

	projects := guarded.Group("/projects")
	projects.GET("", h.ProjectList)
	projects.GET("/:id", h.ProjectGet)
	projects.POST("", h.ProjectCreate)
	projects.PUT("/:id", h.ProjectUpdate)
	projects.DELETE("/:id", h.ProjectDelete)
	mountAssociationRoutes(projects, h.Projects.Images)

	slides := guarded.Group("/slides")
	slides.GET("", h.AdminSlideList)
	slides.GET("/:id", h.SlideGet)
	slides.POST("", h.SlideCreate)
	slides.PUT("/:id", h.SlideUpdate)
	slides.DELETE("/:id", h.SlideDelete)
	mountAssociationRoutes(slides, h.Slides.Images)

	guarded.GET("/skills", h.SkillList)
	guarded.POST("/skills", h.SkillCreate)
	guarded.PUT("/skills/:id", h.SkillUpdate)
	guarded.DELETE("/skills/:id", h.SkillDelete)

	guarded.GET("/images", h.AdminImageList)
	guarded.POST("/images", h.ImageUpload)
	guarded.DELETE("/images/:id", h.ImageDelete)

	return router
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
