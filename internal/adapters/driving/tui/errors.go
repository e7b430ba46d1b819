package tui

import "errors"

// Errors returned when required ports are missing.
var (
	// ErrMissingSearchService indicates the search service port is nil.
	ErrMissingSearchService = errors.New("missing search service")

	// ErrMissingPageService indicates the page service port is nil.
	ErrMissingPageService = errors.New("missing page service")

	// ErrMissingRenderer indicates the page renderer port is nil.
	ErrMissingRenderer = errors.New("missing page renderer")
)
