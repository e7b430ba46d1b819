package driven

import (
	"context"

	"github.com/Whil-/confluence-reader/internal/core/domain"
)

// BookmarkStore persists bookmark records. The store is an external
// collaborator; this system only constructs records and hands them over.
type BookmarkStore interface {
	// Save stores a bookmark record.
	Save(ctx context.Context, bookmark domain.Bookmark) error

	// List returns all bookmark records tagged with our handler,
	// newest first.
	List(ctx context.Context) ([]domain.Bookmark, error)

	// Get retrieves a bookmark by record ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Bookmark, error)

	// Delete removes a bookmark by record ID.
	Delete(ctx context.Context, id string) error
}
