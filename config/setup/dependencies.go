package setup

import (
	"bookmarks-api/app"
	"bookmarks-api/database"
	"log/slog"
)

// InitDatabase opens the configured SQLite database and runs migrations
func InitDatabase(driver, dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(driver, dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "driver", driver, "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	application := app.New(db, logger)
	logger.Info("application initialized with dependency injection")
	return application
}

// Shutdown releases resources held by the application
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
