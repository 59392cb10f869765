package setup

import (
	"bookmarks-api/app"
	"bookmarks-api/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes. Bookmarks live under
// prefix + "/bookmarks".
func RegisterRoutes(fiberApp *fiber.App, application *app.App, prefix string) {
	fiberApp.Get("/", handlers.HomePage)
	fiberApp.Get("/health", handlers.Health)

	bookmarks := fiberApp.Group(prefix + "/bookmarks")
	bookmarks.Get("/", handlers.GetBookmarks(application))
	bookmarks.Post("/", handlers.CreateBookmark(application))
	bookmarks.Get("/:id", handlers.GetBookmark(application))
	bookmarks.Patch("/:id", handlers.UpdateBookmark(application))
	bookmarks.Delete("/:id", handlers.DeleteBookmark(application))
}
