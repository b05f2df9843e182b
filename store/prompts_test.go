package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ismilebharmal/prompt-techniques/models"
)

func seedPrompts(t *testing.T, store *PromptStore) {
	t.Helper()
	prompts := []models.Prompt{
		{Title: "Chain of thought", Content: "Think step by step", Category: "reasoning", Featured: true, OrderIndex: 1},
		{Title: "Few shot", Content: "Here are some examples", Category: "reasoning", OrderIndex: 2},
		{Title: "Persona", Content: "You are a helpful assistant", Category: "style", Tags: "tone,voice", OrderIndex: 3},
	}
	for i := range prompts {
		require.NoError(t, store.Create(&prompts[i]))
	}
}

func TestPromptSearchAndFilters(t *testing.T) {
	db := newTestDB(t)
	store := NewPromptStore(db)
	seedPrompts(t, store)

	results, total, err := store.List(ListPromptsParams{Query: "step"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "Chain of thought", results[0].Title)

	_, total, err = store.List(ListPromptsParams{Category: "reasoning"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	featured := true
	results, _, err = store.List(ListPromptsParams{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Featured)

	// Tags participate in search.
	_, total, err = store.List(ListPromptsParams{Query: "voice"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestPromptListOrderAndPaging(t *testing.T) {
	db := newTestDB(t)
	store := NewPromptStore(db)
	seedPrompts(t, store)

	page, total, err := store.List(ListPromptsParams{Offset: 0, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Chain of thought", page[0].Title)
	assert.Equal(t, "Few shot", page[1].Title)
}

func TestPromptCategories(t *testing.T) {
	db := newTestDB(t)
	store := NewPromptStore(db)
	seedPrompts(t, store)

	categories, err := store.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"reasoning", "style"}, categories)
}

func TestPromptCopyCount(t *testing.T) {
	db := newTestDB(t)
	store := NewPromptStore(db)
	prompt := models.Prompt{Title: "t", Content: "c"}
	require.NoError(t, store.Create(&prompt))

	require.NoError(t, store.IncrementCopyCount(prompt.ID))
	require.NoError(t, store.IncrementCopyCount(prompt.ID))
	loaded, err := store.Get(prompt.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, loaded.CopyCount)

	assert.ErrorIs(t, store.IncrementCopyCount(999), ErrNotFound)
}

func TestPromptUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	store := NewPromptStore(db)
	prompt := models.Prompt{Title: "old", Content: "body", Category: "misc"}
	require.NoError(t, store.Create(&prompt))

	require.NoError(t, store.Update(prompt.ID, map[string]interface{}{"title": "new"}))
	loaded, err := store.Get(prompt.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", loaded.Title)
	assert.Equal(t, "body", loaded.Content, "unlisted fields are untouched")

	assert.ErrorIs(t, store.Update(999, map[string]interface{}{"title": "x"}), ErrNotFound)
}

func TestPromptDelete(t *testing.T) {
	db := newTestDB(t)
	store := NewPromptStore(db)
	prompt := models.Prompt{Title: "t", Content: "c"}
	require.NoError(t, store.Create(&prompt))

	require.NoError(t, store.Delete(prompt.ID))
	_, err := store.Get(prompt.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(prompt.ID), ErrNotFound)
}
