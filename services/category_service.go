package services

import (
	"context"
	"quick-notes/models"
	"strings"
)

// CategoryService handles business logic for categories
type CategoryService struct {
	repo CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List retrieves all categories
func (cs *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return cs.repo.ReadAllCategories(ctx)
}

func (cs *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return cs.repo.ReadCategory(ctx, id)
}

// Create creates a new category
func (cs *CategoryService) Create(ctx context.Context, name, description string) (*models.Category, error) {
	// Trim whitespace
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	return cs.repo.CreateCategory(ctx, name, strings.TrimSpace(description))
}

// Update updates an existing category
func (cs *CategoryService) Update(ctx context.Context, id int64, name, description string) (*models.Category, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	if err := cs.repo.UpdateCategory(ctx, id, name, strings.TrimSpace(description)); err != nil {
		return nil, err
	}
	return cs.repo.ReadCategory(ctx, id)
}

// Delete deletes a category
func (cs *CategoryService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return cs.repo.DeleteCategory(ctx, id)
}
