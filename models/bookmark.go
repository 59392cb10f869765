package models

import (
	"bytes"
	"encoding/json"
)

type Bookmark struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
	Rating      *int    `json:"rating"`
}

type CreateBookmarkRequest struct {
	Title       string  `json:"title" validate:"required"`
	URL         string  `json:"url" validate:"required"`
	Description *string `json:"description"`
	Rating      *int    `json:"rating"`
}

// Optional records whether a JSON field was present in a request body and,
// if so, whether it was null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a supplied, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null returns a supplied Optional holding JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// BookmarkPatch is a partial update. Fields that were not supplied are left
// untouched by the repository.
type BookmarkPatch struct {
	Title       Optional[string] `json:"title"`
	URL         Optional[string] `json:"url"`
	Description Optional[string] `json:"description"`
	Rating      Optional[int]    `json:"rating"`
}

func (p BookmarkPatch) IsEmpty() bool {
	return !p.Title.Set && !p.URL.Set && !p.Description.Set && !p.Rating.Set
}
