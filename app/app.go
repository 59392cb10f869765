package app

import (
	"bookmarks-api/database"
	"bookmarks-api/services"
	"bookmarks-api/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	DB              *database.DB
	BookmarkService *services.BookmarkService
	Logger          *slog.Logger
}

// New creates a new App instance with all dependencies
func New(db *database.DB, logger *slog.Logger) *App {
	return &App{
		DB:              db,
		BookmarkService: services.NewBookmarkService(db, database.NewBookmarkRepository(), validator.New()),
		Logger:          logger,
	}
}
