package services

import (
	"context"
	"quick-notes/models"
	"strings"
	"time"
)

// NoteService handles business logic for notes
type NoteService struct {
	repo NoteRepository
	now  func() time.Time
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{
		repo: repo,
		now:  time.Now,
	}
}

// List retrieves all notes in store order
func (ns *NoteService) List(ctx context.Context) ([]models.Note, error) {
	return ns.repo.ReadAllNotes(ctx)
}

// Get retrieves a single note
func (ns *NoteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return ns.repo.ReadNote(ctx, id)
}

// Create stores a new note and returns it with its assigned ID
func (ns *NoteService) Create(ctx context.Context, title, content string, category []int64) (*models.Note, error) {
	return ns.repo.CreateNote(ctx, strings.TrimSpace(title), content, category)
}

// Update rewrites a note. An empty date means "now"
func (ns *NoteService) Update(ctx context.Context, id int64, title, content string, category []int64, date string) (*models.Note, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if date == "" {
		date = models.FormatTimestamp(ns.now())
	}

	if err := ns.repo.UpdateNote(ctx, id, strings.TrimSpace(title), content, category, date); err != nil {
		return nil, err
	}

	return ns.repo.ReadNote(ctx, id)
}

// Swap exchanges the positions of two notes
func (ns *NoteService) Swap(ctx context.Context, id1, id2 int64) error {
	if id1 <= 0 || id2 <= 0 {
		return ErrInvalidID
	}
	if id1 == id2 {
		return ErrSameID
	}
	return ns.repo.UpdateSwapNoteID(ctx, id1, id2)
}

// Delete removes a note
func (ns *NoteService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return ns.repo.DeleteNote(ctx, id)
}
