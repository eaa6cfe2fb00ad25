//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelsud/bookshelf/note"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	container, cleanup := SetupPostgresContainer(t, ctx)
	defer cleanup()

	CreateTestSchema(t, ctx, container.DB)
	repo := NewRepository(container.DB)

	t.Run("insert sets created_at and returns the row", func(t *testing.T) {
		page := 42
		created, err := repo.Insert(ctx, note.Note{
			Content:    "The map is not the territory.",
			PageNumber: &page,
			BookID:     1,
		})
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		require.NotNil(t, created.PageNumber)
		assert.Equal(t, 42, *created.PageNumber)
	})

	t.Run("insert without page number stores NULL", func(t *testing.T) {
		created, err := repo.Insert(ctx, note.Note{
			Content: "No page for this one.",
			BookID:  1,
		})
		require.NoError(t, err)
		assert.Nil(t, created.PageNumber)
	})

	t.Run("notes list in creation order across interleaved books", func(t *testing.T) {
		const bookID = 77
		const otherBookID = 78

		first, err := repo.Insert(ctx, note.Note{Content: "first", BookID: bookID})
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)
		_, err = repo.Insert(ctx, note.Note{Content: "someone else's", BookID: otherBookID})
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)
		second, err := repo.Insert(ctx, note.Note{Content: "second", BookID: bookID})
		require.NoError(t, err)

		notes, err := repo.SelectByBook(ctx, bookID)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, first.ID, notes[0].ID)
		assert.Equal(t, second.ID, notes[1].ID)
		assert.True(t, !notes[1].CreatedAt.Before(notes[0].CreatedAt))
	})

	t.Run("book without notes yields no rows", func(t *testing.T) {
		notes, err := repo.SelectByBook(ctx, 999999)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("orphan notes are accepted", func(t *testing.T) {
		// no foreign key on book_id, so a note can outlive its book
		created, err := repo.Insert(ctx, note.Note{Content: "orphan", BookID: 999999})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
	})

	t.Run("update replaces content and keeps the rest", func(t *testing.T) {
		page := 7
		created, err := repo.Insert(ctx, note.Note{Content: "draft", PageNumber: &page, BookID: 5})
		require.NoError(t, err)

		updated, err := repo.UpdateContent(ctx, created.ID, "final")
		require.NoError(t, err)

		assert.Equal(t, "final", updated.Content)
		require.NotNil(t, updated.PageNumber)
		assert.Equal(t, 7, *updated.PageNumber)
		assert.Equal(t, created.BookID, updated.BookID)
		assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Millisecond)
	})

	t.Run("update missing note returns ErrNotFound", func(t *testing.T) {
		_, err := repo.UpdateContent(ctx, 999999, "nope")
		assert.ErrorIs(t, err, note.ErrNotFound)
	})

	t.Run("delete removes the note", func(t *testing.T) {
		created, err := repo.Insert(ctx, note.Note{Content: "short lived", BookID: 5})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))
		assert.ErrorIs(t, repo.Delete(ctx, created.ID), note.ErrNotFound)
	})
}
