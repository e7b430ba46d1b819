// Package bookmarks provides the saved bookmarks view for the TUI.
package bookmarks

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/keymap"
	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/messages"
	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/styles"
	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/core/ports/driving"
)

// View lists saved bookmarks and reopens them.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	bookmarkService driving.BookmarkService
	ctx             context.Context

	bookmarks []domain.Bookmark
	selected  int
	err       error

	width  int
	height int
	ready  bool
}

// NewView creates a new bookmarks view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	bookmarkService driving.BookmarkService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:          s,
		keymap:          km,
		bookmarkService: bookmarkService,
		ctx:             context.Background(),
		width:           80,
		height:          24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the bookmark list.
func (v *View) Init() tea.Cmd {
	return v.load()
}

// load fetches bookmarks from the store.
func (v *View) load() tea.Cmd {
	return func() tea.Msg {
		if v.bookmarkService == nil {
			return messages.BookmarksLoaded{Err: ErrNoBookmarkService}
		}
		bookmarks, err := v.bookmarkService.List(v.ctx)
		return messages.BookmarksLoaded{Bookmarks: bookmarks, Err: err}
	}
}

// Update handles messages for the bookmarks view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.BookmarksLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.bookmarks = msg.Bookmarks
		if v.selected >= len(v.bookmarks) {
			v.selected = 0
		}
		return v, nil

	case messages.BookmarkRemoved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.load()
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.moveUp()
		return v, nil
	case tea.KeyDown:
		v.moveDown()
		return v, nil
	case tea.KeyEnter:
		return v.openSelected()
	}

	switch msg.String() {
	case "k":
		v.moveUp()
	case "j":
		v.moveDown()
	case "d":
		return v.removeSelected()
	}

	return v, nil
}

// openSelected requests the selected bookmark's page.
func (v *View) openSelected() (*View, tea.Cmd) {
	bookmark := v.Selected()
	if bookmark == nil {
		return v, nil
	}
	pageID := bookmark.PageID
	return v, func() tea.Msg {
		return messages.PageRequested{PageID: pageID}
	}
}

// removeSelected deletes the selected bookmark.
func (v *View) removeSelected() (*View, tea.Cmd) {
	bookmark := v.Selected()
	if bookmark == nil {
		return v, nil
	}
	id := bookmark.ID
	return v, func() tea.Msg {
		err := v.bookmarkService.Remove(v.ctx, id)
		return messages.BookmarkRemoved{ID: id, Err: err}
	}
}

func (v *View) moveUp() {
	if v.selected > 0 {
		v.selected--
	}
}

func (v *View) moveDown() {
	if v.selected < len(v.bookmarks)-1 {
		v.selected++
	}
}

// View renders the bookmarks view.
func (v *View) View() string {
	sections := make([]string, 0, len(v.bookmarks)+4)

	sections = append(sections, v.styles.Title.Render("Bookmarks"), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if len(v.bookmarks) == 0 {
		sections = append(sections, v.styles.Muted.Render("No bookmarks"))
	} else {
		for i, bookmark := range v.bookmarks {
			sections = append(sections, v.renderBookmark(i, bookmark))
		}
	}

	help := v.styles.Help.Render("enter: open | d: delete | esc: back")
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBookmark formats a single bookmark row.
func (v *View) renderBookmark(index int, bookmark domain.Bookmark) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	when := bookmark.CreatedAt.Format("2006-01-02")
	row := fmt.Sprintf("%s%s", indicator, bookmark.Title)
	meta := fmt.Sprintf("  %s  %s", when, bookmark.Location)

	if index == v.selected {
		return v.styles.Selected.Render(row) + v.styles.Muted.Render(meta)
	}
	return v.styles.Normal.Render(row) + v.styles.Muted.Render(meta)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Ready returns whether the view has received dimensions.
func (v *View) Ready() bool {
	return v.ready
}

// Bookmarks returns the loaded bookmarks.
func (v *View) Bookmarks() []domain.Bookmark {
	return v.bookmarks
}

// Selected returns the currently selected bookmark, or nil.
func (v *View) Selected() *domain.Bookmark {
	if len(v.bookmarks) == 0 || v.selected < 0 || v.selected >= len(v.bookmarks) {
		return nil
	}
	return &v.bookmarks[v.selected]
}

// SelectedIndex returns the index of the selected bookmark.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
