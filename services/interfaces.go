package services

import (
	"context"
	"quick-notes/models"
)

// NoteRepository defines the interface for note data access.
// Production uses *database.NotesGateway
type NoteRepository interface {
	CreateNote(ctx context.Context, title, content string, category []int64) (*models.Note, error)
	ReadNote(ctx context.Context, id int64) (*models.Note, error)
	ReadAllNotes(ctx context.Context) ([]models.Note, error)
	UpdateNote(ctx context.Context, id int64, title, content string, category []int64, date string) error
	UpdateSwapNoteID(ctx context.Context, id1, id2 int64) error
	DeleteNote(ctx context.Context, id int64) error
}

// CategoryRepository defines the interface for category data access.
// Production uses *database.CategoryGateway
type CategoryRepository interface {
	CreateCategory(ctx context.Context, name, description string) (*models.Category, error)
	ReadCategory(ctx context.Context, id int64) (*models.Category, error)
	ReadAllCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, id int64, name, description string) error
	DeleteCategory(ctx context.Context, id int64) error
}
