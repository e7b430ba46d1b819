package domain

import "time"

// BookmarkHandler tags bookmark records with the handler that knows how
// to reopen them. The store itself is an external collaborator and may
// hold records from other handlers.
const BookmarkHandler = "confluence-page"

// Bookmark is a record handed to the bookmark store when the user
// bookmarks a rendered page.
type Bookmark struct {
	// ID is the unique record identifier (UUID).
	ID string

	// Title is the page title at bookmark time.
	Title string

	// PageID identifies the page to reopen.
	PageID string

	// Location is a derived label for where the page lives,
	// e.g. "confluence:example.atlassian.net".
	Location string

	// Handler is the tag naming the handler that reopens this record.
	Handler string

	// CreatedAt is when the bookmark was saved.
	CreatedAt time.Time
}
