package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ismilebharmal/prompt-techniques/models"
)

func countCovers(images []AssociatedImage) int {
	n := 0
	for _, img := range images {
		if img.IsCover {
			n++
		}
	}
	return n
}

func TestAttachAndList(t *testing.T) {
	db := newTestDB(t)
	assoc := ProjectImages(db)
	project := createTestProject(t, db, "p1")
	imgA := createTestImage(t, db)
	imgB := createTestImage(t, db)

	idA, err := assoc.Attach(project.ID, imgA.ID, false, 1)
	require.NoError(t, err)
	assert.NotZero(t, idA)
	_, err = assoc.Attach(project.ID, imgB.ID, false, 0)
	require.NoError(t, err)

	images, err := assoc.List(project.ID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	// display_order ascending: B (0) before A (1)
	assert.Equal(t, imgB.ID, images[0].ImageID)
	assert.Equal(t, imgA.ID, images[1].ImageID)
	assert.Equal(t, "test.png", images[0].OriginalName)
	assert.Zero(t, countCovers(images))
}

func TestAttachDuplicateIsConflict(t *testing.T) {
	db := newTestDB(t)
	assoc := ProjectImages(db)
	project := createTestProject(t, db, "p1")
	img := createTestImage(t, db)

	_, err := assoc.Attach(project.ID, img.ID, false, 0)
	require.NoError(t, err)
	_, err = assoc.Attach(project.ID, img.ID, false, 5)
	assert.ErrorIs(t, err, ErrConflict)

	images, err := assoc.List(project.ID)
	require.NoError(t, err)
	assert.Len(t, images, 1, "the failed attach must not leave a duplicate row")
}

func TestAttachUnknownOwnerOrImage(t *testing.T) {
	db := newTestDB(t)
	assoc := ProjectImages(db)
	project := createTestProject(t, db, "p1")
	img := createTestImage(t, db)

	_, err := assoc.Attach(9999, img.ID, false, 0)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = assoc.Attach(project.ID, 9999, false, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDetachRoundTrip(t *testing.T) {
	db := newTestDB(t)
	assoc := ProjectImages(db)
	project := createTestProject(t, db, "p1")
	imgA := createTestImage(t, db)
	imgB := createTestImage(t, db)

	_, err := assoc.Attach(project.ID, imgA.ID, false, 0)
	require.NoError(t, err)
	before, err := assoc.List(project.ID)
	require.NoError(t, err)

	_, err = assoc.Attach(project.ID, imgB.ID, false, 1)
	require.NoError(t, err)
	require.NoError(t, assoc.Detach(project.ID, imgB.ID))

	after, err := assoc.List(project.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after, "attach followed by detach restores the prior list")

	// Detaching an absent link is a no-op.
	assert.NoError(t, assoc.Detach(project.ID, imgB.ID))
}

func TestDetachCoverClearsCachedReference(t *testing.T) {
	db := newTestDB(t)
	store := NewProjectStore(db)
	project := createTestProject(t, db, "p1")
	img := createTestImage(t, db)

	_, err := store.Images.Attach(project.ID, img.ID, true, 0)
	require.NoError(t, err)
	loaded, err := store.Get(project.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.ImageID)
	assert.Equal(t, img.ID, *loaded.ImageID)

	require.NoError(t, store.Images.Detach(project.ID, img.ID))
	loaded, err = store.Get(project.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.ImageID)
}

func TestSetCoverScenario(t *testing.T) {
	db := newTestDB(t)
	store := NewProjectStore(db)
	project := createTestProject(t, db, "P")
	imgA := createTestImage(t, db)
	imgB := createTestImage(t, db)

	_, err := store.Images.Attach(project.ID, imgA.ID, true, 0)
	require.NoError(t, err)
	_, err = store.Images.Attach(project.ID, imgB.ID, false, 1)
	require.NoError(t, err)

	require.NoError(t, store.Images.SetCover(project.ID, imgB.ID))

	images, err := store.Images.List(project.ID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.False(t, images[0].IsCover, "A lost its cover flag")
	assert.True(t, images[1].IsCover, "B is the cover now")
	assert.Equal(t, 1, countCovers(images))

	loaded, err := store.Get(project.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.ImageID)
	assert.Equal(t, imgB.ID, *loaded.ImageID)
}

func TestSetCoverRequiresAttachment(t *testing.T) {
	db := newTestDB(t)
	assoc := ProjectImages(db)
	project := createTestProject(t, db, "p1")
	img := createTestImage(t, db)

	err := assoc.SetCover(project.ID, img.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	err = assoc.SetCover(9999, img.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConcurrentSetCoverKeepsSingleCover(t *testing.T) {
	db := newTestDB(t)
	assoc := ProjectImages(db)
	project := createTestProject(t, db, "p1")
	imgA := createTestImage(t, db)
	imgB := createTestImage(t, db)
	_, err := assoc.Attach(project.ID, imgA.ID, false, 0)
	require.NoError(t, err)
	_, err = assoc.Attach(project.ID, imgB.ID, false, 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		target := imgA.ID
		if i%2 == 0 {
			target = imgB.ID
		}
		wg.Add(1)
		go func(imageID uint64) {
			defer wg.Done()
			_ = assoc.SetCover(project.ID, imageID)
		}(target)
	}
	wg.Wait()

	images, err := assoc.List(project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, countCovers(images), "racing cover writes must never leave two covers")
}

func TestListOrderIsStableWithTies(t *testing.T) {
	db := newTestDB(t)
	assoc := ProjectImages(db)
	project := createTestProject(t, db, "p1")
	var ids []uint64
	for i := 0; i < 4; i++ {
		img := createTestImage(t, db)
		_, err := assoc.Attach(project.ID, img.ID, false, 7) // all tied
		require.NoError(t, err)
		ids = append(ids, img.ID)
	}

	first, err := assoc.List(project.ID)
	require.NoError(t, err)
	require.Len(t, first, 4)
	// Ties break by association id, which follows insertion order here.
	for i, img := range first {
		assert.Equal(t, ids[i], img.ImageID)
	}
	second, err := assoc.List(project.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second, "list is deterministic across calls")
}

func TestReorderIsIdempotentAndPartial(t *testing.T) {
	db := newTestDB(t)
	assoc := ProjectImages(db)
	project := createTestProject(t, db, "p1")
	imgA := createTestImage(t, db)
	imgB := createTestImage(t, db)
	imgC := createTestImage(t, db)
	for i, img := range []*models.Image{imgA, imgB, imgC} {
		_, err := assoc.Attach(project.ID, img.ID, false, i)
		require.NoError(t, err)
	}

	orders := []ImageOrder{
		{ImageID: imgA.ID, Order: 10},
		{ImageID: imgB.ID, Order: 5},
	}
	require.NoError(t, assoc.Reorder(project.ID, orders))
	once, err := assoc.List(project.ID)
	require.NoError(t, err)

	require.NoError(t, assoc.Reorder(project.ID, orders))
	twice, err := assoc.List(project.ID)
	require.NoError(t, err)
	assert.Equal(t, once, twice, "applying the same ordering twice changes nothing")

	// C was not part of the input and keeps its position.
	require.Len(t, once, 3)
	assert.Equal(t, imgC.ID, once[0].ImageID)
	assert.Equal(t, 2, once[0].DisplayOrder)
	assert.Equal(t, imgB.ID, once[1].ImageID)
	assert.Equal(t, imgA.ID, once[2].ImageID)
}

func TestOwnerDeleteCascadesAssociationsOnly(t *testing.T) {
	db := newTestDB(t)
	store := NewProjectStore(db)
	p1 := createTestProject(t, db, "p1")
	p2 := createTestProject(t, db, "p2")
	imgShared := createTestImage(t, db)
	imgOwn := createTestImage(t, db)

	_, err := store.Images.Attach(p1.ID, imgShared.ID, false, 0)
	require.NoError(t, err)
	_, err = store.Images.Attach(p1.ID, imgOwn.ID, false, 1)
	require.NoError(t, err)
	_, err = store.Images.Attach(p2.ID, imgShared.ID, false, 0)
	require.NoError(t, err)

	require.NoError(t, store.Delete(p1.ID))

	var links int64
	require.NoError(t, db.Table("project_images").Where("project_id = ?", p1.ID).Count(&links).Error)
	assert.Zero(t, links, "associations of the deleted project are gone")

	remaining, err := store.Images.List(p2.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "unrelated associations are untouched")

	var imageCount int64
	require.NoError(t, db.Table("images").Count(&imageCount).Error)
	assert.EqualValues(t, 2, imageCount, "image rows survive owner deletion")
}

func TestListUnknownOwner(t *testing.T) {
	db := newTestDB(t)
	assoc := ProjectImages(db)
	_, err := assoc.List(42)
	assert.ErrorIs(t, err, ErrNotFound, "an unknown owner is not an empty gallery")
}

func TestSlideAssociations(t *testing.T) {
	db := newTestDB(t)
	store := NewSlideStore(db)
	slide := createTestSlide(t, db, "hero")
	img := createTestImage(t, db)

	_, err := store.Images.Attach(slide.ID, img.ID, true, 0)
	require.NoError(t, err)

	loaded, err := store.GetWithImages(slide.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Images, 1)
	assert.True(t, loaded.Images[0].IsCover)
	require.NotNil(t, loaded.ImageID)
	assert.Equal(t, img.ID, *loaded.ImageID)
}
