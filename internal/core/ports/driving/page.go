package driving

import (
	"context"

	"github.com/Whil-/confluence-reader/internal/core/domain"
)

// PageService fetches pages and performs page-scoped actions.
type PageService interface {
	// GetPage fetches a page by identifier in its export view.
	GetPage(ctx context.Context, id string) (*domain.Page, error)

	// GetPageByURL extracts the page identifier from a full page URL
	// (as copied from a browser address bar) and fetches that page.
	GetPageByURL(ctx context.Context, pageURL string) (*domain.Page, error)

	// BrowserURL builds the absolute external-browser URL for a page
	// from the configured URL template.
	BrowserURL(page *domain.Page) string

	// Bookmark constructs a bookmark record for the page and hands it
	// to the bookmark store.
	Bookmark(ctx context.Context, page *domain.Page) (domain.Bookmark, error)

	// OpenExternal opens the page in the system browser.
	OpenExternal(page *domain.Page) error

	// OpenURL hands an arbitrary URL to the system browser. Used for
	// external links inside a page body, which keep their literal
	// target.
	OpenURL(url string) error
}

// BookmarkService lists and reopens saved bookmarks.
type BookmarkService interface {
	// List returns all saved bookmarks, newest first.
	List(ctx context.Context) ([]domain.Bookmark, error)

	// Remove deletes a bookmark by record ID.
	Remove(ctx context.Context, id string) error
}
