// Package page provides the rendered page view for the TUI.
package page

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/components/status"
	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/keymap"
	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/messages"
	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/styles"
	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/core/ports/driving"
	"github.com/Whil-/confluence-reader/internal/render"
)

// View displays a rendered page with a movable cursor. The cursor
// doubles as the point for link activation.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	pageService driving.PageService
	ctx         context.Context

	page   *domain.Page
	doc    *render.Document
	cursor int
	scroll int

	width  int
	height int
	ready  bool
}

// NewView creates a new page view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	pageService driving.PageService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetState(status.StatePage)

	return &View{
		styles:      s,
		keymap:      km,
		statusbar:   bar,
		pageService: pageService,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetDocument installs a page and its rendered document. The cursor
// starts at the top.
func (v *View) SetDocument(page *domain.Page, doc *render.Document) {
	v.page = page
	v.doc = doc
	v.cursor = 0
	v.scroll = 0
	v.statusbar.SetState(status.StatePage)
	v.statusbar.SetMessage("")
}

// Update handles messages for the page view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.BookmarkSaved:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.statusbar.SetState(status.StatePage)
			v.statusbar.SetMessage("Bookmarked: " + msg.Bookmark.Title)
		}
		return v, nil

	case messages.ExternalOpened:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.statusbar.SetState(status.StatePage)
			v.statusbar.SetMessage("Opened in browser")
		}
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.doc == nil {
		return v, nil
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.moveCursor(-1)
		return v, nil
	case tea.KeyDown:
		v.moveCursor(1)
		return v, nil
	case tea.KeyEnter:
		return v.followLink()
	case tea.KeyTab:
		v.jumpToLink(v.doc.NextLinkLine(v.cursor))
		return v, nil
	case tea.KeyShiftTab:
		v.jumpToLink(v.doc.PrevLinkLine(v.cursor))
		return v, nil
	}

	key := msg.String()
	switch {
	case key == "k":
		v.moveCursor(-1)
	case key == "j":
		v.moveCursor(1)
	case key == "g":
		v.cursor = 0
		v.scroll = 0
	case key == "G":
		v.cursor = len(v.doc.Lines) - 1
		v.ensureVisible()
	case keymap.Matches(key, v.keymap.Bookmark):
		return v, v.bookmark()
	case keymap.Matches(key, v.keymap.OpenExternal):
		return v, v.openExternal()
	}

	return v, nil
}

// followLink activates the link on the cursor line. Internal links load
// the target page, external links go to the system browser, and lines
// without a link report failure.
func (v *View) followLink() (*View, tea.Cmd) {
	link, err := v.doc.LinkAt(v.cursor)
	if err != nil {
		if errors.Is(err, domain.ErrNotALink) {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage("No link on this line")
			return v, nil
		}
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(err.Error())
		return v, nil
	}

	switch link.Classification.Class {
	case domain.LinkInternal:
		v.statusbar.SetState(status.StateLoading)
		pageID := link.Classification.PageID
		return v, func() tea.Msg {
			return messages.PageRequested{PageID: pageID}
		}

	case domain.LinkExternal:
		target := link.Classification.Target
		return v, func() tea.Msg {
			err := v.pageService.OpenURL(target)
			return messages.ExternalOpened{URL: target, Err: err}
		}
	}

	return v, nil
}

// bookmark saves the current page.
func (v *View) bookmark() tea.Cmd {
	page := v.page
	return func() tea.Msg {
		bookmark, err := v.pageService.Bookmark(v.ctx, page)
		return messages.BookmarkSaved{Bookmark: bookmark, Err: err}
	}
}

// openExternal opens the current page in the system browser.
func (v *View) openExternal() tea.Cmd {
	page := v.page
	return func() tea.Msg {
		url := v.pageService.BrowserURL(page)
		err := v.pageService.OpenExternal(page)
		return messages.ExternalOpened{URL: url, Err: err}
	}
}

// moveCursor moves the cursor by delta lines, clamped to the document.
func (v *View) moveCursor(delta int) {
	v.cursor += delta
	if v.cursor < 0 {
		v.cursor = 0
	}
	if last := len(v.doc.Lines) - 1; v.cursor > last {
		v.cursor = last
	}
	v.ensureVisible()
}

// jumpToLink moves the cursor to a link line, if there is one.
func (v *View) jumpToLink(line int) {
	if line < 0 {
		return
	}
	v.cursor = line
	v.ensureVisible()
}

// ensureVisible scrolls so the cursor line stays in the viewport.
func (v *View) ensureVisible() {
	viewHeight := v.contentHeight()
	if v.cursor < v.scroll {
		v.scroll = v.cursor
	}
	if v.cursor >= v.scroll+viewHeight {
		v.scroll = v.cursor - viewHeight + 1
	}
}

// contentHeight is the number of document lines shown at once.
func (v *View) contentHeight() int {
	h := v.height - 5 // header, spacing, status bar
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the page view.
func (v *View) View() string {
	if v.doc == nil {
		return v.styles.Muted.Render("No page loaded")
	}

	sections := make([]string, 0, v.contentHeight()+4)

	sections = append(sections, v.styles.Title.Render(v.doc.Title), "")

	end := v.scroll + v.contentHeight()
	if end > len(v.doc.Lines) {
		end = len(v.doc.Lines)
	}
	for i := v.scroll; i < end; i++ {
		line := v.doc.Lines[i]
		if i == v.cursor {
			sections = append(sections, "> "+line)
		} else {
			sections = append(sections, "  "+line)
		}
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
	if v.doc != nil {
		v.ensureVisible()
	}
}

// Ready returns whether the view has received dimensions.
func (v *View) Ready() bool {
	return v.ready
}

// Page returns the currently displayed page.
func (v *View) Page() *domain.Page {
	return v.page
}

// Document returns the currently displayed document.
func (v *View) Document() *render.Document {
	return v.doc
}

// Cursor returns the current cursor line.
func (v *View) Cursor() int {
	return v.cursor
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}
