package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/core/ports/driven"
	"github.com/Whil-/confluence-reader/internal/core/ports/driving"
	"github.com/Whil-/confluence-reader/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// DefaultSearchLimit is the number of results requested when the caller
// does not specify a limit.
const DefaultSearchLimit = 100

// SearchService builds CQL queries and runs them through the API port.
type SearchService struct {
	api driven.ConfluenceAPI
}

// NewSearchService creates a new search service.
func NewSearchService(api driven.ConfluenceAPI) *SearchService {
	return &SearchService{api: api}
}

// Search implements driving.SearchService.
func (s *SearchService) Search(
	ctx context.Context, terms string, raw bool, limit int,
) ([]domain.SearchResult, error) {
	terms = strings.TrimSpace(terms)
	if terms == "" {
		return []domain.SearchResult{}, nil
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	cql := BuildCQL(terms, raw)
	logger.Section("Search")
	logger.Debug("CQL: %q, limit: %d", cql, limit)

	results, err := s.api.Search(ctx, cql, limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	logger.Debug("Results: %d", len(results))
	return results, nil
}

// BuildCQL turns free-text terms into a CQL query. In text mode the
// terms are wrapped in the "text contains" operator; in raw mode the
// terms already are the query language and pass through unmodified.
func BuildCQL(terms string, raw bool) string {
	if raw {
		return terms
	}
	return `text ~ "` + terms + `"`
}
