package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quick-notes/models"

	"golang.org/x/sync/errgroup"
)

const noteColumns = "ID, TITLE, CONTENT, CATEGORY, CREATED_DATE, UPDATED_DATE"

// NotesGateway provides CRUD operations on the NOTES collection. Each call
// runs in its own transaction.
type NotesGateway struct {
	db  *DB
	now func() time.Time
}

func NewNotesGateway(db *DB) *NotesGateway {
	return &NotesGateway{db: db, now: time.Now}
}

func (g *NotesGateway) handle() (*DB, error) {
	if g == nil {
		return nil, ErrClosed
	}
	if err := g.db.ensureOpen(); err != nil {
		return nil, err
	}
	return g.db, nil
}

// CreateNote inserts a new note with both timestamps set to the current
// time and returns it with its store-assigned ID.
func (g *NotesGateway) CreateNote(ctx context.Context, title, content string, category []int64) (*models.Note, error) {
	db, err := g.handle()
	if err != nil {
		return nil, err
	}

	if category == nil {
		category = []int64{}
	}
	stamp := models.FormatTimestamp(g.now())
	note := models.Note{
		Title:       title,
		Content:     content,
		Category:    category,
		DateCreated: stamp,
		DateUpdated: stamp,
	}

	err = db.transaction(ctx, ErrWrite, func(tx *sql.Tx) error {
		id, err := putNote(ctx, tx, note)
		if err != nil {
			return fmt.Errorf("create note: %w", err)
		}
		note.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ReadNote fetches a note by ID.
func (g *NotesGateway) ReadNote(ctx context.Context, id int64) (*models.Note, error) {
	db, err := g.handle()
	if err != nil {
		return nil, err
	}

	var note *models.Note
	err = db.transaction(ctx, ErrRead, func(tx *sql.Tx) error {
		note, err = getNote(ctx, tx, id, ErrRead)
		return err
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// ReadAllNotes returns every note in key order.
func (g *NotesGateway) ReadAllNotes(ctx context.Context) ([]models.Note, error) {
	db, err := g.handle()
	if err != nil {
		return nil, err
	}

	notes := make([]models.Note, 0)
	err = db.transaction(ctx, ErrRead, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, "SELECT "+noteColumns+" FROM NOTES ORDER BY ID ASC")
		if err != nil {
			return fmt.Errorf("read all notes: %w: %w", ErrRead, err)
		}
		defer rows.Close()

		for rows.Next() {
			note, err := scanNote(rows)
			if err != nil {
				return fmt.Errorf("read all notes: %w: %w", ErrRead, err)
			}
			notes = append(notes, note)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("read all notes: %w: %w", ErrRead, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNote overwrites the mutable fields of an existing note and sets its
// updated date. The creation date is preserved.
func (g *NotesGateway) UpdateNote(ctx context.Context, id int64, title, content string, category []int64, date string) error {
	db, err := g.handle()
	if err != nil {
		return err
	}

	return db.transaction(ctx, ErrWrite, func(tx *sql.Tx) error {
		note, err := getNote(ctx, tx, id, ErrWrite)
		if err != nil {
			return fmt.Errorf("update note: %w", err)
		}

		note.Title = title
		note.Content = content
		note.Category = category
		note.DateUpdated = date

		if _, err := putNote(ctx, tx, *note); err != nil {
			return fmt.Errorf("update note %d: %w", id, err)
		}
		return nil
	})
}

// UpdateSwapNoteID exchanges the keys of two notes. Both notes are fetched
// concurrently; once both have arrived each is re-put under the other's ID
// in the same transaction, so either both moves commit or neither does.
func (g *NotesGateway) UpdateSwapNoteID(ctx context.Context, id1, id2 int64) error {
	db, err := g.handle()
	if err != nil {
		return err
	}

	return db.transaction(ctx, ErrWrite, func(tx *sql.Tx) error {
		var note1, note2 *models.Note

		grp, gctx := errgroup.WithContext(ctx)
		grp.Go(func() error {
			n, err := getNote(gctx, tx, id1, ErrWrite)
			note1 = n
			return err
		})
		grp.Go(func() error {
			n, err := getNote(gctx, tx, id2, ErrWrite)
			note2 = n
			return err
		})
		if err := grp.Wait(); err != nil {
			return fmt.Errorf("swap notes %d and %d: %w", id1, id2, err)
		}

		if id1 == id2 {
			return nil
		}

		note1.ID, note2.ID = note2.ID, note1.ID
		for _, n := range []*models.Note{note1, note2} {
			if _, err := putNote(ctx, tx, *n); err != nil {
				return fmt.Errorf("swap notes %d and %d: %w", id1, id2, err)
			}
		}
		return nil
	})
}

// DeleteNote removes a note. Deleting a missing note is not an error.
func (g *NotesGateway) DeleteNote(ctx context.Context, id int64) error {
	db, err := g.handle()
	if err != nil {
		return err
	}

	return db.transaction(ctx, ErrWrite, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM NOTES WHERE ID = ?", id); err != nil {
			return fmt.Errorf("delete note %d: %w: %w", id, ErrWrite, err)
		}
		return nil
	})
}

func (g *NotesGateway) CountNotes(ctx context.Context) (int, error) {
	db, err := g.handle()
	if err != nil {
		return 0, err
	}
	return countRecords(ctx, db, StoreNotes)
}

// getNote fetches one note. A missing row is ErrNotFound; any other failure
// is reported under class, the error class of the calling operation.
func getNote(ctx context.Context, q querier, id int64, class error) (*models.Note, error) {
	row := q.QueryRowContext(ctx, "SELECT "+noteColumns+" FROM NOTES WHERE ID = ?", id)
	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("note %d: %w: %w", id, class, err)
	}
	return &note, nil
}

// putNote inserts the note, replacing any stored record with the same ID.
// A zero ID lets the store assign one.
func putNote(ctx context.Context, tx *sql.Tx, n models.Note) (int64, error) {
	category, err := encodeCategory(n.Category)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	var id any
	if n.ID != 0 {
		id = n.ID
	}

	res, err := tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO NOTES (`+noteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, n.Title, n.Content, category, n.DateCreated, n.DateUpdated)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if n.ID != 0 {
		return n.ID, nil
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return newID, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	var category string
	if err := row.Scan(&note.ID, &note.Title, &note.Content, &category, &note.DateCreated, &note.DateUpdated); err != nil {
		return models.Note{}, err
	}

	ids, err := decodeCategory(category)
	if err != nil {
		return models.Note{}, err
	}
	note.Category = ids

	return note.WithDefaults(), nil
}

func encodeCategory(ids []int64) (string, error) {
	if ids == nil {
		ids = []int64{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encode category: %w", err)
	}
	return string(b), nil
}

func decodeCategory(s string) ([]int64, error) {
	ids := []int64{}
	if s == "" {
		return ids, nil
	}
	if err := json.Unmarshal([]byte(s), &ids); err != nil {
		return nil, fmt.Errorf("decode category %q: %w", s, err)
	}
	return ids, nil
}

func countRecords(ctx context.Context, db *DB, collectionName string) (int, error) {
	var n int
	err := db.transaction(ctx, ErrRead, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+collectionName).Scan(&n); err != nil {
			return fmt.Errorf("count %s: %w: %w", collectionName, ErrRead, err)
		}
		return nil
	})
	return n, err
}
