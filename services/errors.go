package services

import "errors"

// Common service-level errors
var (
	// Identifier errors
	ErrInvalidID = errors.New("id must be a positive integer")
	ErrSameID    = errors.New("cannot swap a note with itself")

	// Category errors
	ErrCategoryNameRequired = errors.New("category name is required")
)
