package app

import (
	"log/slog"
	"quick-notes/database"
	"quick-notes/services"
	"quick-notes/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Manager    *database.Manager
	Notes      *services.NoteService
	Categories *services.CategoryService
	Validator  *validator.Validator
	Logger     *slog.Logger
}

// New wires services onto the gateways of an initialised manager
func New(manager *database.Manager, logger *slog.Logger) *App {
	return &App{
		Manager:    manager,
		Notes:      services.NewNoteService(manager.Notes()),
		Categories: services.NewCategoryService(manager.Categories()),
		Validator:  validator.New(),
		Logger:     logger,
	}
}
