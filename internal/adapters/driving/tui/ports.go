// Package tui provides the interactive terminal reader.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"

	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/core/ports/driving"
	"github.com/Whil-/confluence-reader/internal/render"
)

// PageRenderer converts a fetched page into a displayable document.
type PageRenderer interface {
	Render(ctx context.Context, page *domain.Page) (*render.Document, error)
}

// Ports aggregates everything the TUI needs from the core.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs CQL searches.
	Search driving.SearchService

	// Page fetches pages and performs page-scoped actions.
	Page driving.PageService

	// Bookmark lists and removes saved bookmarks.
	Bookmark driving.BookmarkService

	// Renderer converts page bodies into documents.
	Renderer PageRenderer
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	page driving.PageService,
	bookmark driving.BookmarkService,
	renderer PageRenderer,
) *Ports {
	return &Ports{
		Search:   search,
		Page:     page,
		Bookmark: bookmark,
		Renderer: renderer,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Page == nil {
		return ErrMissingPageService
	}
	if p.Renderer == nil {
		return ErrMissingRenderer
	}
	return nil
}
