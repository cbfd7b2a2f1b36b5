package handlers

import (
	"quick-notes/app"
	"quick-notes/models"

	"github.com/gofiber/fiber/v2"
)

func GetCategories(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := a.Categories.List(c.UserContext())
		if err != nil {
			return storeError(c, "Failed to fetch categories", err)
		}

		return success(c, fiber.Map{"categories": categories})
	}
}

func GetCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "category ID must be a positive integer")
		}

		category, err := a.Categories.Get(c.UserContext(), id)
		if err != nil {
			return storeError(c, "Failed to fetch category", err)
		}

		return success(c, fiber.Map{"category": category})
	}
}

func CreateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		// Validate request
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		category, err := a.Categories.Create(c.UserContext(), req.Name, req.Description)
		if err != nil {
			return storeError(c, "Failed to create category", err)
		}

		return created(c, fiber.Map{"category": category})
	}
}

func UpdateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "category ID must be a positive integer")
		}

		var req models.CategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		// Validate request
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		category, err := a.Categories.Update(c.UserContext(), id, req.Name, req.Description)
		if err != nil {
			return storeError(c, "Failed to update category", err)
		}

		return success(c, fiber.Map{"category": category})
	}
}

func DeleteCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "category ID must be a positive integer")
		}

		if err := a.Categories.Delete(c.UserContext(), id); err != nil {
			return storeError(c, "Failed to delete category", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}
