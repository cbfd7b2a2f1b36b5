package setup

import (
	"quick-notes/app"
	"quick-notes/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", handlers.Health(application))

	api := fiberApp.Group("/api")

	api.Get("/notes", handlers.GetNotes(application))
	api.Post("/notes", handlers.CreateNote(application))
	api.Post("/notes/swap", handlers.SwapNotes(application))
	api.Get("/notes/:id", handlers.GetNote(application))
	api.Put("/notes/:id", handlers.UpdateNote(application))
	api.Delete("/notes/:id", handlers.DeleteNote(application))

	api.Get("/categories", handlers.GetCategories(application))
	api.Post("/categories", handlers.CreateCategory(application))
	api.Get("/categories/:id", handlers.GetCategory(application))
	api.Put("/categories/:id", handlers.UpdateCategory(application))
	api.Delete("/categories/:id", handlers.DeleteCategory(application))
}
