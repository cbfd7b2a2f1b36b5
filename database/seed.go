package database

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	"quick-notes/models"
)

//go:embed sample_data/categories.json
var sampleCategoriesJSON []byte

//go:embed sample_data/notes.json
var sampleNotesJSON []byte

type categorySeed struct {
	Categories []models.Category `json:"categories"`
}

type noteSeed struct {
	Notes []models.Note `json:"notes"`
}

// SampleCategories returns the bundled sample categories.
func SampleCategories() ([]models.Category, error) {
	var seed categorySeed
	if err := json.Unmarshal(sampleCategoriesJSON, &seed); err != nil {
		return nil, fmt.Errorf("parse sample categories: %w", err)
	}
	return seed.Categories, nil
}

// SampleNotes returns the bundled sample notes.
func SampleNotes() ([]models.Note, error) {
	var seed noteSeed
	if err := json.Unmarshal(sampleNotesJSON, &seed); err != nil {
		return nil, fmt.Errorf("parse sample notes: %w", err)
	}
	return seed.Notes, nil
}

// insertCategories adds every category in one transaction. Identifiers in the
// input are ignored; the store assigns them.
func insertCategories(ctx context.Context, db *DB, categories []models.Category) error {
	return db.transaction(ctx, ErrWrite, func(tx *sql.Tx) error {
		for _, c := range categories {
			c.ID = 0
			if _, err := putCategory(ctx, tx, c); err != nil {
				return fmt.Errorf("insert category %q: %w", c.Name, err)
			}
		}
		return nil
	})
}

func insertNotes(ctx context.Context, db *DB, notes []models.Note) error {
	return db.transaction(ctx, ErrWrite, func(tx *sql.Tx) error {
		for _, n := range notes {
			n.ID = 0
			if _, err := putNote(ctx, tx, n); err != nil {
				return fmt.Errorf("insert note %q: %w", n.Title, err)
			}
		}
		return nil
	})
}

// seedSampleData populates a freshly created database. It is advisory:
// failures are logged and never returned, and the handle stays usable.
func (m *Manager) seedSampleData(ctx context.Context, db *DB) {
	m.logger.Info("creating sample categories", "name", db.Name())
	categories, err := SampleCategories()
	if err == nil {
		err = insertCategories(ctx, db, categories)
	}
	if err != nil {
		m.logger.Error("failed to add sample categories", "name", db.Name(), "error", err)
	} else {
		m.logger.Info("sample categories added", "name", db.Name(), "count", len(categories))
	}

	m.logger.Info("creating sample notes", "name", db.Name())
	notes, err := SampleNotes()
	if err == nil {
		err = insertNotes(ctx, db, notes)
	}
	if err != nil {
		m.logger.Error("failed to add sample notes", "name", db.Name(), "error", err)
		return
	}
	m.logger.Info("sample notes added", "name", db.Name(), "count", len(notes))
}
