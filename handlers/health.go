package handlers

import (
	"quick-notes/app"

	"github.com/gofiber/fiber/v2"
)

// Health reports liveness and which database is open
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if a.Manager.Handle().IsClosed() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return success(c, fiber.Map{"status": "ok", "database": a.Manager.Name()})
	}
}
