// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and command results that flow through the
// Elm architecture.
package messages

import (
	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/render"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the search input and results view.
	ViewSearch ViewType = iota
	// ViewPage is the rendered page view.
	ViewPage
	// ViewBookmarks is the saved bookmarks view.
	ViewBookmarks
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewPage:
		return "page"
	case ViewBookmarks:
		return "bookmarks"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Results []domain.SearchResult
	Err     error
}

// PageRequested asks for a page to be fetched and rendered.
type PageRequested struct {
	PageID string
}

// PageURLRequested asks for the page behind a full browser URL.
type PageURLRequested struct {
	URL string
}

// PageLoaded carries a fetched page and its rendered document.
type PageLoaded struct {
	Page *domain.Page
	Doc  *render.Document
	Err  error
}

// BookmarkSaved signals a bookmark was stored.
type BookmarkSaved struct {
	Bookmark domain.Bookmark
	Err      error
}

// BookmarksLoaded carries the list of saved bookmarks.
type BookmarksLoaded struct {
	Bookmarks []domain.Bookmark
	Err       error
}

// BookmarkRemoved signals a bookmark was deleted.
type BookmarkRemoved struct {
	ID  string
	Err error
}

// ExternalOpened signals a URL was handed to the system browser.
type ExternalOpened struct {
	URL string
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
