package database

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testDBName = "notesdb"

// fixedClock is 07-03-2024 @ 09:05 local time.
func fixedClock() time.Time {
	return time.Date(2024, time.March, 7, 9, 5, 0, 0, time.Local)
}

// newTestManager returns a manager over a temp data directory that is
// closed when the test ends.
func newTestManager(t *testing.T, seed bool) *Manager {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewManager(t.TempDir(), seed, logger)
	m.now = fixedClock
	t.Cleanup(func() { m.CloseDB() })
	return m
}

// setupTestNotes initialises an unseeded database and returns its notes gateway.
func setupTestNotes(t *testing.T) (*Manager, *NotesGateway) {
	t.Helper()

	m := newTestManager(t, false)
	_, err := m.Initialise(context.Background(), testDBName)
	require.NoError(t, err)
	require.NotNil(t, m.Notes())
	return m, m.Notes()
}
