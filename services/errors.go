package services

import "errors"

// Common service-level errors
var (
	ErrBookmarkNotFound = errors.New("bookmark doesn't exist")
)

// Client-facing validation messages
const (
	MsgInvalidTitle = "Invalid Title"
	MsgInvalidURL   = "Invalid URL"
	MsgEmptyPatch   = "Request body must contain either 'title', 'url', 'description', or 'rating'"
)

// ValidationError is a client mistake in the request payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
