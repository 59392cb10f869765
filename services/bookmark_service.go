package services

import (
	"bookmarks-api/database"
	"bookmarks-api/models"
	"bookmarks-api/validator"
	"context"
	"errors"
)

// BookmarkService handles business logic for bookmarks.
// Results are returned raw; sanitizing is the caller's job.
type BookmarkService struct {
	db        database.Runner
	repo      BookmarkRepository
	validator *validator.Validator
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(db database.Runner, repo BookmarkRepository, v *validator.Validator) *BookmarkService {
	return &BookmarkService{
		db:        db,
		repo:      repo,
		validator: v,
	}
}

// List retrieves all bookmarks
func (bs *BookmarkService) List(ctx context.Context) ([]models.Bookmark, error) {
	return bs.repo.GetAll(ctx, bs.db)
}

// Get retrieves a single bookmark
func (bs *BookmarkService) Get(ctx context.Context, id int64) (*models.Bookmark, error) {
	b, err := bs.repo.GetByID(ctx, bs.db, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookmarkNotFound
	}
	return b, nil
}

// Create validates and stores a new bookmark. Title is checked before url, so
// a request missing both is reported as an invalid title.
func (bs *BookmarkService) Create(ctx context.Context, req models.CreateBookmarkRequest) (*models.Bookmark, error) {
	if err := bs.validator.Validate(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return nil, err
		}
		if validationErrs.First().Field == "url" {
			return nil, invalid(MsgInvalidURL)
		}
		return nil, invalid(MsgInvalidTitle)
	}
	return bs.repo.Insert(ctx, bs.db, req)
}

// Update applies a partial update to an existing bookmark
func (bs *BookmarkService) Update(ctx context.Context, id int64, patch models.BookmarkPatch) error {
	existing, err := bs.repo.GetByID(ctx, bs.db, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrBookmarkNotFound
	}

	if patch.IsEmpty() {
		return invalid(MsgEmptyPatch)
	}
	// title and url are required columns and cannot be cleared
	if patch.Title.Set && (patch.Title.Null || patch.Title.Value == "") {
		return invalid(MsgInvalidTitle)
	}
	if patch.URL.Set && (patch.URL.Null || patch.URL.Value == "") {
		return invalid(MsgInvalidURL)
	}

	n, err := bs.repo.Update(ctx, bs.db, id, patch)
	if err != nil {
		return err
	}
	if n == 0 {
		// removed between the lookup and the update
		return ErrBookmarkNotFound
	}
	return nil
}

// Delete removes a bookmark
func (bs *BookmarkService) Delete(ctx context.Context, id int64) error {
	n, err := bs.repo.Delete(ctx, bs.db, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}
