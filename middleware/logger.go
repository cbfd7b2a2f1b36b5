package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// StructuredLogger tags each request with a uuid and logs one line per
// request, naming the collection and record it touched.
func StructuredLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.New().String()

		c.Locals("requestID", requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", len(c.Response().Body())),
		}

		if collection := CollectionFromPath(c.Path()); collection != "" {
			attrs = append(attrs, slog.String("collection", collection))
		}
		if id := c.Params("id"); id != "" {
			attrs = append(attrs, slog.String("record_id", id))
		}

		level, msg := slog.LevelInfo, "request completed"
		switch {
		case err != nil:
			attrs = append(attrs, slog.String("error", err.Error()))
			level, msg = slog.LevelError, "request error"
		case status == fiber.StatusServiceUnavailable:
			level, msg = slog.LevelError, "database unavailable"
		case status >= fiber.StatusInternalServerError:
			level, msg = slog.LevelError, "server error"
		case status >= fiber.StatusBadRequest:
			level, msg = slog.LevelWarn, "client error"
		}
		logger.LogAttrs(c.UserContext(), level, msg, attrs...)

		return err
	}
}

// CollectionFromPath maps /api/notes/... and /api/categories/... to the store
// they operate on. Other paths map to "".
func CollectionFromPath(path string) string {
	rest, ok := strings.CutPrefix(path, "/api/")
	if !ok {
		return ""
	}
	switch segment, _, _ := strings.Cut(rest, "/"); segment {
	case "notes":
		return "NOTES"
	case "categories":
		return "CATEGORIES"
	default:
		return ""
	}
}
