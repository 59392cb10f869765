// Package sanitize neutralizes markup in bookmark text before it is sent to a client.
//
// Title and url allow no markup at all. Description allows the user generated
// content subset (links, images, emphasis, lists...) with scripts and event
// handler attributes removed. Apply it once, on the way out, and never to data
// that is about to be stored.
package sanitize

import (
	"bookmarks-api/models"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textEscaper  = strings.NewReplacer("<", "&lt;", ">", "&gt;")
	markupPolicy = bluemonday.UGCPolicy()
)

// Text escapes angle brackets so s cannot open or close a tag.
func Text(s string) string {
	return textEscaper.Replace(s)
}

// Markup keeps the safe subset of HTML in s and drops everything else.
func Markup(s string) string {
	return markupPolicy.Sanitize(s)
}

// Bookmark returns a copy of b with its text fields sanitized.
func Bookmark(b models.Bookmark) models.Bookmark {
	out := b
	out.Title = Text(b.Title)
	out.URL = Text(b.URL)
	if b.Description != nil {
		d := Markup(*b.Description)
		out.Description = &d
	}
	return out
}

func Bookmarks(bs []models.Bookmark) []models.Bookmark {
	out := make([]models.Bookmark, len(bs))
	for i, b := range bs {
		out[i] = Bookmark(b)
	}
	return out
}
