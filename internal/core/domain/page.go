package domain

// SearchResult is a single hit from the Confluence search endpoint.
// Results exist only for the lifetime of a listing; they are never stored.
type SearchResult struct {
	// Title is the page title.
	Title string

	// SpaceTitle is the title of the space containing the page.
	SpaceTitle string

	// LastModified is the friendly last-modified timestamp as returned
	// by the API (not parsed; display only).
	LastModified string

	// PageID identifies the page for a follow-up fetch.
	PageID string
}

// Page is a single Confluence page in its export (pre-rendered HTML) view.
// Immutable once fetched; backs exactly one rendered view.
type Page struct {
	// ID is the page identifier.
	ID string

	// Title is the page title.
	Title string

	// HTMLBody is the export_view HTML of the page body.
	HTMLBody string

	// WebLink is the browser-relative link from the API (_links.webui),
	// used to build an "open externally" URL.
	WebLink string
}
