package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCredentials indicates no credential is stored for the configured
	// host. Surfaced to the user as-is; there is no anonymous fallback.
	ErrNoCredentials = errors.New("no credentials found for host")

	// ErrNotALink indicates an activation at a point that carries no link.
	// Recoverable: the user simply tries elsewhere.
	ErrNotALink = errors.New("no link at point")

	// ErrNoHost indicates the Confluence host is not configured.
	ErrNoHost = errors.New("confluence host not configured")
)

// APIError reports a non-200 response from the Confluence REST API.
// A request either fully succeeds or fails with this error; nothing is
// rendered on failure and no retry is attempted.
type APIError struct {
	// StatusCode is the HTTP status returned by the API.
	StatusCode int

	// Path is the request path that failed.
	Path string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("confluence API returned %d for %s", e.StatusCode, e.Path)
}

// IsAPIError reports whether err is an APIError, returning it if so.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
