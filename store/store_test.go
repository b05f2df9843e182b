package store

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ismilebharmal/prompt-techniques/models"
)

const (
	testMaxImageSize = 10 << 20
	testThumbSize    = 64
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive and
	// serializes concurrent access.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.Migrate(db))
	return db
}

// pngBytes renders a small solid png for upload tests.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func createTestImage(t *testing.T, db *gorm.DB) *models.Image {
	t.Helper()
	images := NewImageStore(db, testMaxImageSize, testThumbSize)
	image, err := images.Store(pngBytes(t, 20, 10), "test.png", "image/png")
	require.NoError(t, err)
	return image
}

func createTestProject(t *testing.T, db *gorm.DB, title string) *models.Project {
	t.Helper()
	projects := NewProjectStore(db)
	project := &models.Project{Title: title}
	require.NoError(t, projects.Create(project))
	return project
}

func createTestSlide(t *testing.T, db *gorm.DB, title string) *models.Slide {
	t.Helper()
	slides := NewSlideStore(db)
	slide := &models.Slide{Title: title, Active: true}
	require.NoError(t, slides.Create(slide))
	return slide
}
