package setup

import (
	"context"
	"log/slog"
	"quick-notes/app"
	"quick-notes/config"
	"quick-notes/database"
)

// InitDatabase opens the configured database, creating and seeding it on first run
func InitDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database.Manager, error) {
	manager := database.NewManager(cfg.DataDir, cfg.SeedSampleData, logger)

	db, err := manager.Initialise(ctx, cfg.DBName)
	if err != nil {
		return nil, err
	}

	logger.Info("database initialized", "name", db.Name(), "path", db.Path())
	return manager, nil
}

// InitApp initializes the application with all dependencies
func InitApp(manager *database.Manager, logger *slog.Logger) *app.App {
	application := app.New(manager, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(manager *database.Manager, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if manager != nil {
		if err := manager.CloseDB(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
