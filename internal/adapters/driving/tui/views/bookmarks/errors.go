package bookmarks

import "errors"

// ErrNoBookmarkService indicates the view has no bookmark service.
var ErrNoBookmarkService = errors.New("no bookmark service configured")
