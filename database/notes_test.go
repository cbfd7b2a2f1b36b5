package database

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"quick-notes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNote(t *testing.T) {
	ctx := context.Background()
	_, notes := setupTestNotes(t)

	tests := []struct {
		name     string
		title    string
		content  string
		category []int64
	}{
		{name: "Single category", title: "Shopping", content: "Milk, eggs", category: []int64{1}},
		{name: "Several categories", title: "Trip", content: "Book train", category: []int64{2, 3}},
		{name: "No category", title: "Loose", content: "Nothing filed", category: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, err := notes.ReadAllNotes(ctx)
			require.NoError(t, err)

			created, err := notes.CreateNote(ctx, tt.title, tt.content, tt.category)
			require.NoError(t, err)
			assert.NotZero(t, created.ID)

			after, err := notes.ReadAllNotes(ctx)
			require.NoError(t, err)
			require.Len(t, after, len(before)+1)

			got := after[len(after)-1]
			assert.Equal(t, created.ID, got.ID)
			assert.Equal(t, tt.title, got.Title)
			assert.Equal(t, tt.content, got.Content)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, "07-03-2024 @ 09:05", got.DateCreated)
			assert.Equal(t, got.DateCreated, got.DateUpdated)
		})
	}
}

func TestCreateNote_TimestampIsZeroPadded(t *testing.T) {
	ctx := context.Background()
	_, notes := setupTestNotes(t)
	notes.now = func() time.Time { return time.Date(2025, time.January, 2, 3, 4, 59, 0, time.Local) }

	created, err := notes.CreateNote(ctx, "Early", "Before dawn", nil)
	require.NoError(t, err)
	assert.Equal(t, "02-01-2025 @ 03:04", created.DateCreated)
	assert.Equal(t, []int64{}, created.Category)
}

func TestReadAllNotes_Empty(t *testing.T) {
	_, notes := setupTestNotes(t)

	all, err := notes.ReadAllNotes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestReadNote(t *testing.T) {
	ctx := context.Background()
	_, notes := setupTestNotes(t)

	created, err := notes.CreateNote(ctx, "Title", "Body", []int64{4})
	require.NoError(t, err)

	t.Run("Existing note", func(t *testing.T) {
		got, err := notes.ReadNote(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *created, *got)
	})

	t.Run("Missing note", func(t *testing.T) {
		got, err := notes.ReadNote(ctx, created.ID+100)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()
	_, notes := setupTestNotes(t)

	created, err := notes.CreateNote(ctx, "Draft", "First pass", []int64{1})
	require.NoError(t, err)

	t.Run("Overwrites mutable fields only", func(t *testing.T) {
		err := notes.UpdateNote(ctx, created.ID, "Final", "Second pass", []int64{2, 3}, "08-03-2024 @ 17:30")
		require.NoError(t, err)

		got, err := notes.ReadNote(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Final", got.Title)
		assert.Equal(t, "Second pass", got.Content)
		assert.Equal(t, []int64{2, 3}, got.Category)
		assert.Equal(t, "08-03-2024 @ 17:30", got.DateUpdated)
		assert.Equal(t, created.DateCreated, got.DateCreated)
	})

	t.Run("Missing note", func(t *testing.T) {
		err := notes.UpdateNote(ctx, 9999, "x", "y", nil, "08-03-2024 @ 17:30")
		assert.ErrorIs(t, err, ErrNotFound)

		all, err := notes.ReadAllNotes(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1, "a failed update must not insert a record")
	})
}

func TestUpdateSwapNoteID(t *testing.T) {
	ctx := context.Background()
	_, notes := setupTestNotes(t)

	first, err := notes.CreateNote(ctx, "First", "one", []int64{1})
	require.NoError(t, err)
	second, err := notes.CreateNote(ctx, "Second", "two", []int64{2})
	require.NoError(t, err)

	t.Run("Exchanges records between keys", func(t *testing.T) {
		require.NoError(t, notes.UpdateSwapNoteID(ctx, first.ID, second.ID))

		atFirst, err := notes.ReadNote(ctx, first.ID)
		require.NoError(t, err)
		atSecond, err := notes.ReadNote(ctx, second.ID)
		require.NoError(t, err)

		assert.Equal(t, "Second", atFirst.Title)
		assert.Equal(t, []int64{2}, atFirst.Category)
		assert.Equal(t, first.ID, atFirst.ID)
		assert.Equal(t, "First", atSecond.Title)
		assert.Equal(t, second.ID, atSecond.ID)

		all, err := notes.ReadAllNotes(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Swapping back restores order", func(t *testing.T) {
		require.NoError(t, notes.UpdateSwapNoteID(ctx, second.ID, first.ID))

		atFirst, err := notes.ReadNote(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "First", atFirst.Title)
	})

	t.Run("Missing note leaves both untouched", func(t *testing.T) {
		err := notes.UpdateSwapNoteID(ctx, first.ID, 9999)
		assert.ErrorIs(t, err, ErrNotFound)

		atFirst, err := notes.ReadNote(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "First", atFirst.Title)
	})

	t.Run("Same ID is a no-op", func(t *testing.T) {
		require.NoError(t, notes.UpdateSwapNoteID(ctx, first.ID, first.ID))

		atFirst, err := notes.ReadNote(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "First", atFirst.Title)
	})
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()
	_, notes := setupTestNotes(t)

	created, err := notes.CreateNote(ctx, "Temp", "gone soon", nil)
	require.NoError(t, err)

	require.NoError(t, notes.DeleteNote(ctx, created.ID))

	_, err = notes.ReadNote(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("Deleting again succeeds", func(t *testing.T) {
		assert.NoError(t, notes.DeleteNote(ctx, created.ID))
	})

	t.Run("Deleting an unknown ID succeeds", func(t *testing.T) {
		assert.NoError(t, notes.DeleteNote(ctx, 424242))
	})
}

func TestNotesGateway_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	_, notes := setupTestNotes(t)

	const writers = 16
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := notes.CreateNote(ctx, fmt.Sprintf("note %d", i), "concurrent", nil)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	all, err := notes.ReadAllNotes(ctx)
	require.NoError(t, err)
	require.Len(t, all, writers)

	count, err := notes.CountNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, writers, count)

	seen := make(map[int64]bool)
	for i, n := range all {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
		if i > 0 {
			assert.Greater(t, n.ID, all[i-1].ID)
		}
	}
}

func TestScanNote_AppliesDefaults(t *testing.T) {
	ctx := context.Background()
	m, notes := setupTestNotes(t)

	_, err := m.Handle().ExecContext(ctx,
		"INSERT INTO NOTES (TITLE, CONTENT, CATEGORY, CREATED_DATE, UPDATED_DATE) VALUES ('', '', '', 'c', 'u')")
	require.NoError(t, err)

	all, err := notes.ReadAllNotes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.Note{
		ID:          1,
		Title:       "blank",
		Content:     "blank",
		Category:    []int64{},
		DateCreated: "c",
		DateUpdated: "u",
	}, all[0])
}
