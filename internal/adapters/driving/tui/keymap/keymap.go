// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Search submits a search.
	Search key.Binding

	// Up navigates up in a list or scrolls a page up.
	Up key.Binding

	// Down navigates down in a list or scrolls a page down.
	Down key.Binding

	// Select opens the highlighted result or follows the link at point.
	Select key.Binding

	// NewSearch starts a new search from results view.
	NewSearch key.Binding

	// NextLink jumps to the next link in a page.
	NextLink key.Binding

	// PrevLink jumps to the previous link in a page.
	PrevLink key.Binding

	// Bookmark saves the current page as a bookmark.
	Bookmark key.Binding

	// OpenExternal opens the current page in the system browser.
	OpenExternal key.Binding

	// SortTitle sorts results by title.
	SortTitle key.Binding

	// SortSpace sorts results by space.
	SortSpace key.Binding

	// SortModified sorts results by last modification.
	SortModified key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new search"),
		),
		NextLink: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next link"),
		),
		PrevLink: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev link"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bookmark"),
		),
		OpenExternal: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		SortTitle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "sort by title"),
		),
		SortSpace: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by space"),
		),
		SortModified: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sort by modified"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Back}
}

// ResultsHelp returns keybindings for the results view.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.NewSearch, k.SortTitle, k.Back}
}

// PageHelp returns keybindings for the page view.
func (k *KeyMap) PageHelp() []key.Binding {
	return []key.Binding{k.NextLink, k.Select, k.Bookmark, k.OpenExternal, k.Back}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
