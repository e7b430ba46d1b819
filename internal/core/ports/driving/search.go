package driving

import (
	"context"

	"github.com/Whil-/confluence-reader/internal/core/domain"
)

// SearchService runs searches against the configured Confluence host.
type SearchService interface {
	// Search builds a CQL query from free-text terms and fetches
	// results. In text mode the terms are wrapped as `text ~ "<terms>"`;
	// in raw mode they pass through unmodified as the query language.
	// A limit <= 0 falls back to the default of 100.
	Search(ctx context.Context, terms string, raw bool, limit int) ([]domain.SearchResult, error)
}
