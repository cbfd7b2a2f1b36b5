package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quick-notes/models"
)

const categoryColumns = "ID, TITLE, DESCRIPTION"

// CategoryGateway provides CRUD operations on the CATEGORIES collection.
type CategoryGateway struct {
	db *DB
}

func NewCategoryGateway(db *DB) *CategoryGateway {
	return &CategoryGateway{db: db}
}

func (g *CategoryGateway) handle() (*DB, error) {
	if g == nil {
		return nil, ErrClosed
	}
	if err := g.db.ensureOpen(); err != nil {
		return nil, err
	}
	return g.db, nil
}

func (g *CategoryGateway) CreateCategory(ctx context.Context, name, description string) (*models.Category, error) {
	db, err := g.handle()
	if err != nil {
		return nil, err
	}

	category := models.Category{Name: name, Description: description}
	err = db.transaction(ctx, ErrWrite, func(tx *sql.Tx) error {
		id, err := putCategory(ctx, tx, category)
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		category.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (g *CategoryGateway) ReadCategory(ctx context.Context, id int64) (*models.Category, error) {
	db, err := g.handle()
	if err != nil {
		return nil, err
	}

	var category *models.Category
	err = db.transaction(ctx, ErrRead, func(tx *sql.Tx) error {
		category, err = getCategory(ctx, tx, id, ErrRead)
		return err
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (g *CategoryGateway) ReadAllCategories(ctx context.Context) ([]models.Category, error) {
	db, err := g.handle()
	if err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0)
	err = db.transaction(ctx, ErrRead, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, "SELECT "+categoryColumns+" FROM CATEGORIES ORDER BY ID ASC")
		if err != nil {
			return fmt.Errorf("read all categories: %w: %w", ErrRead, err)
		}
		defer rows.Close()

		for rows.Next() {
			var c models.Category
			if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
				return fmt.Errorf("read all categories: %w: %w", ErrRead, err)
			}
			categories = append(categories, c.WithDefaults())
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("read all categories: %w: %w", ErrRead, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateCategory replaces the name and description of an existing category.
func (g *CategoryGateway) UpdateCategory(ctx context.Context, id int64, name, description string) error {
	db, err := g.handle()
	if err != nil {
		return err
	}

	return db.transaction(ctx, ErrWrite, func(tx *sql.Tx) error {
		category, err := getCategory(ctx, tx, id, ErrWrite)
		if err != nil {
			return fmt.Errorf("update category: %w", err)
		}

		category.Name = name
		category.Description = description
		if _, err := putCategory(ctx, tx, *category); err != nil {
			return fmt.Errorf("update category %d: %w", id, err)
		}
		return nil
	})
}

// DeleteCategory removes a category. Deleting a missing category is not an error.
func (g *CategoryGateway) DeleteCategory(ctx context.Context, id int64) error {
	db, err := g.handle()
	if err != nil {
		return err
	}

	return db.transaction(ctx, ErrWrite, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM CATEGORIES WHERE ID = ?", id); err != nil {
			return fmt.Errorf("delete category %d: %w: %w", id, ErrWrite, err)
		}
		return nil
	})
}

func (g *CategoryGateway) CountCategories(ctx context.Context) (int, error) {
	db, err := g.handle()
	if err != nil {
		return 0, err
	}
	return countRecords(ctx, db, StoreCategories)
}

func getCategory(ctx context.Context, q querier, id int64, class error) (*models.Category, error) {
	var c models.Category
	err := q.QueryRowContext(ctx, "SELECT "+categoryColumns+" FROM CATEGORIES WHERE ID = ?", id).
		Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("category %d: %w: %w", id, class, err)
	}
	c = c.WithDefaults()
	return &c, nil
}

func putCategory(ctx context.Context, tx *sql.Tx, c models.Category) (int64, error) {
	var id any
	if c.ID != 0 {
		id = c.ID
	}

	res, err := tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO CATEGORIES (`+categoryColumns+`)
		VALUES (?, ?, ?)
	`, id, c.Name, c.Description)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if c.ID != 0 {
		return c.ID, nil
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return newID, nil
}
