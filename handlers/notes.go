package handlers

import (
	"quick-notes/app"
	"quick-notes/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotes returns every note in store order
func GetNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.List(c.UserContext())
		if err != nil {
			return storeError(c, "Failed to fetch notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// GetNote returns a single note by ID
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "note ID must be a positive integer")
		}

		note, err := a.Notes.Get(c.UserContext(), id)
		if err != nil {
			return storeError(c, "Failed to fetch note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// CreateNote stores a new note
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.Notes.Create(c.UserContext(), req.Title, req.Content, req.Category)
		if err != nil {
			return storeError(c, "Failed to create note", err)
		}

		return created(c, fiber.Map{"note": note})
	}
}

// UpdateNote rewrites an existing note, keeping its creation date
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "note ID must be a positive integer")
		}

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.Notes.Update(c.UserContext(), id, req.Title, req.Content, req.Category, req.Date)
		if err != nil {
			return storeError(c, "Failed to update note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// SwapNotes exchanges the IDs of two notes
func SwapNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SwapNotesRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.Notes.Swap(c.UserContext(), req.ID1, req.ID2); err != nil {
			return storeError(c, "Failed to swap notes", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}

// DeleteNote removes a note. Deleting a missing note succeeds
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "note ID must be a positive integer")
		}

		if err := a.Notes.Delete(c.UserContext(), id); err != nil {
			return storeError(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}
