package services

import (
	"bookmarks-api/database"
	"bookmarks-api/models"
	"context"
)

// BookmarkRepository defines the interface for bookmark data access.
// Every call receives the storage handle it must run against.
type BookmarkRepository interface {
	GetAll(ctx context.Context, h database.Runner) ([]models.Bookmark, error)
	GetByID(ctx context.Context, h database.Runner, id int64) (*models.Bookmark, error)
	Insert(ctx context.Context, h database.Runner, req models.CreateBookmarkRequest) (*models.Bookmark, error)
	Update(ctx context.Context, h database.Runner, id int64, patch models.BookmarkPatch) (int64, error)
	Delete(ctx context.Context, h database.Runner, id int64) (int64, error)
}

var _ BookmarkRepository = (*database.BookmarkRepository)(nil)
