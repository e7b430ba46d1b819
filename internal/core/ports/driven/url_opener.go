package driven

// URLOpener hands a URL to the host's generic opener (the user's
// browser). External links and the "open externally" action go through
// this port; the core never shells out directly.
type URLOpener interface {
	// Open dispatches the URL to the system browser.
	Open(url string) error
}
