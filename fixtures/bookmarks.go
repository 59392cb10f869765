// Package fixtures provides deterministic bookmark datasets for tests.
package fixtures

import (
	"bookmarks-api/database"
	"bookmarks-api/models"
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

func ptr[T any](v T) *T {
	return &v
}

func MakeBookmarksArray() []models.Bookmark {
	return []models.Bookmark{
		{
			ID:          1,
			Title:       "google",
			URL:         "http://www.google.com",
			Description: ptr("google search engine"),
			Rating:      ptr(3),
		},
		{
			ID:          2,
			Title:       "amazon",
			URL:         "http://www.amazon.com",
			Description: ptr("amazon online shopping"),
			Rating:      ptr(3),
		},
		{
			ID:          3,
			Title:       "ebay",
			URL:         "http://www.ebay.com",
			Description: ptr("ebay online auctionhouse"),
			Rating:      ptr(3),
		},
		{
			ID:          4,
			Title:       "ign",
			URL:         "http://www.ign.com",
			Description: ptr("ign game/hardware reviews"),
			Rating:      ptr(3),
		},
	}
}

// MaliciousBookmark returns a script-injection payload and the response the
// API is expected to produce for it.
func MaliciousBookmark() (malicious, expected models.Bookmark) {
	malicious = models.Bookmark{
		ID:          911,
		Title:       `Naughty naughty very naughty <script>alert("xss");</script>`,
		URL:         `http://example.com <script>alert("xss");</script>`,
		Description: ptr(`Bad image <img src="https://url.to.file.which/does-not.exist" onerror="alert(document.cookie);">. But not <strong>all</strong> bad.`),
	}
	expected = models.Bookmark{
		ID:          911,
		Title:       `Naughty naughty very naughty &lt;script&gt;alert("xss");&lt;/script&gt;`,
		URL:         `http://example.com &lt;script&gt;alert("xss");&lt;/script&gt;`,
		Description: ptr(`Bad image <img src="https://url.to.file.which/does-not.exist">. But not <strong>all</strong> bad.`),
	}
	return malicious, expected
}

// Seed inserts bookmarks with their ids as given.
func Seed(ctx context.Context, h database.Runner, bookmarks []models.Bookmark) error {
	if len(bookmarks) == 0 {
		return nil
	}

	q := sq.Insert("bookmarks").Columns("id", "title", "url", "description", "rating")
	for _, b := range bookmarks {
		var rating sql.NullInt64
		if b.Rating != nil {
			rating = sql.NullInt64{Int64: int64(*b.Rating), Valid: true}
		}
		var description sql.NullString
		if b.Description != nil {
			description = sql.NullString{String: *b.Description, Valid: true}
		}
		q = q.Values(b.ID, b.Title, b.URL, description, rating)
	}

	if _, err := q.RunWith(h).ExecContext(ctx); err != nil {
		return fmt.Errorf("seed bookmarks: %w", err)
	}
	return nil
}
