package handlers

import (
	"bookmarks-api/app"
	"bookmarks-api/models"
	"bookmarks-api/sanitize"
	"bookmarks-api/services"
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const msgBookmarkMissing = "bookmark doesn't exist"

// GetBookmarks lists every bookmark
func GetBookmarks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookmarks, err := a.BookmarkService.List(c.UserContext())
		if err != nil {
			return err
		}

		return success(c, sanitize.Bookmarks(bookmarks))
	}
}

// GetBookmark retrieves a single bookmark by id
func GetBookmark(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := bookmarkID(c)
		if !ok {
			return notFound(c, msgBookmarkMissing)
		}

		bookmark, err := a.BookmarkService.Get(c.UserContext(), id)
		if errors.Is(err, services.ErrBookmarkNotFound) {
			a.Logger.Warn("bookmark not found", "id", id)
			return notFound(c, msgBookmarkMissing)
		}
		if err != nil {
			return err
		}

		return success(c, sanitize.Bookmark(*bookmark))
	}
}

// CreateBookmark stores a new bookmark and points Location at it
func CreateBookmark(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateBookmarkRequest
		if err := c.BodyParser(&req); err != nil {
			return plainText(c, fiber.StatusBadRequest, "Invalid request body")
		}

		bookmark, err := a.BookmarkService.Create(c.UserContext(), req)
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			a.Logger.Warn("bookmark rejected", "reason", validationErr.Message)
			return plainText(c, fiber.StatusBadRequest, validationErr.Message)
		}
		if err != nil {
			return err
		}

		a.Logger.Info("bookmark created", "id", bookmark.ID)
		location := path.Join(c.Path(), strconv.FormatInt(bookmark.ID, 10))
		return created(c, location, sanitize.Bookmark(*bookmark))
	}
}

// UpdateBookmark applies a partial update. The response has no body; clients
// re-fetch to see the sanitized result.
func UpdateBookmark(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := bookmarkID(c)
		if !ok {
			return notFound(c, msgBookmarkMissing)
		}

		var patch models.BookmarkPatch
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&patch); err != nil {
				return badRequest(c, "Invalid request body")
			}
		}

		err := a.BookmarkService.Update(c.UserContext(), id, patch)
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrBookmarkNotFound):
			a.Logger.Warn("bookmark not found", "id", id)
			return notFound(c, msgBookmarkMissing)
		case errors.As(err, &validationErr):
			return badRequest(c, validationErr.Message)
		case err != nil:
			return err
		}

		a.Logger.Info("bookmark updated", "id", id)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteBookmark removes a bookmark. Both outcomes answer in plain text.
func DeleteBookmark(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := bookmarkID(c)
		if !ok {
			return plainText(c, fiber.StatusNotFound, "Bookmark not found.")
		}

		err := a.BookmarkService.Delete(c.UserContext(), id)
		if errors.Is(err, services.ErrBookmarkNotFound) {
			a.Logger.Warn("bookmark not found", "id", id)
			return plainText(c, fiber.StatusNotFound, "Bookmark not found.")
		}
		if err != nil {
			return err
		}

		a.Logger.Info("bookmark deleted", "id", id)
		return plainText(c, fiber.StatusOK, fmt.Sprintf("Bookmark with id:%q was deleted.", strconv.FormatInt(id, 10)))
	}
}
