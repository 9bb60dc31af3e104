package wiki

import (
	"errors"
	"fmt"
)

// Sentinel errors for lookup outcomes the dispatcher handles specially.
var (
	// ErrDisambiguation is returned when the subject matches a disambiguation page.
	ErrDisambiguation = errors.New("wiki: subject is ambiguous")

	// ErrNotFound is returned when no page exists for the subject.
	ErrNotFound = errors.New("wiki: page not found")
)

// APIError represents an error response from the MediaWiki API.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Message is the raw response body.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("wiki: API error %d: %s", e.StatusCode, e.Message)
}

// IsServerError returns true if this is a server-side error (HTTP 5xx).
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}
