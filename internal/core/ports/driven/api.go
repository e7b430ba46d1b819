package driven

import (
	"context"

	"github.com/Whil-/confluence-reader/internal/core/domain"
)

// ConfluenceAPI provides authenticated read access to the Confluence
// REST API. Implementations add Basic auth from the credential store and
// fail with domain.APIError on any non-200 response. No call retries.
type ConfluenceAPI interface {
	// Search runs a CQL query against the search endpoint and decodes
	// the result list. The limit caps the number of results requested.
	Search(ctx context.Context, cql string, limit int) ([]domain.SearchResult, error)

	// GetPage fetches a single page with its HTML export representation.
	GetPage(ctx context.Context, id string) (*domain.Page, error)

	// FetchImage retrieves image bytes through the same authenticated
	// request path, so private attachments succeed where an anonymous
	// fetch would not. src may be host-relative or absolute.
	FetchImage(ctx context.Context, src string) ([]byte, error)

	// Host returns the configured Confluence host name.
	Host() string
}
