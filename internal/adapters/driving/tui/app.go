package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/keymap"
	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/messages"
	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/styles"
	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/views/bookmarks"
	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/views/page"
	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/views/search"
	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/render"
)

// historyEntry is one step in the page navigation trail.
type historyEntry struct {
	page *domain.Page
	doc  *render.Document
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// searchView is the search input and results view.
	searchView *search.View

	// pageView is the rendered page view.
	pageView *page.View

	// bookmarksView is the saved bookmarks view.
	bookmarksView *bookmarks.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// returnView is where Esc from the page view leads once the page
	// history is exhausted.
	returnView messages.ViewType

	// history is the trail of pages behind the one on screen.
	history []historyEntry

	// initialCmd runs on startup (pre-seeded search or page load).
	initialCmd tea.Cmd

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		searchView:    search.NewView(s, km, ports.Search),
		pageView:      page.NewView(s, km, ports.Page),
		bookmarksView: bookmarks.NewView(s, km, ports.Bookmark),
		currentView:   messages.ViewSearch,
		returnView:    messages.ViewSearch,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.pageView.WithContext(ctx)
	a.bookmarksView.WithContext(ctx)
	return a
}

// WithSearchOptions pre-configures raw mode and the result limit.
func (a *App) WithSearchOptions(raw bool, limit int) *App {
	a.searchView.SetRaw(raw)
	a.searchView.SetLimit(limit)
	return a
}

// WithInitialQuery pre-fills the search input and runs the search on
// startup.
func (a *App) WithInitialQuery(query string) *App {
	a.searchView.SetQuery(query)
	a.initialCmd = func() tea.Msg {
		return searchStartup{query: query}
	}
	return a
}

// WithInitialPage opens straight onto a page.
func (a *App) WithInitialPage(pageID string) *App {
	a.initialCmd = func() tea.Msg {
		return messages.PageRequested{PageID: pageID}
	}
	return a
}

// WithInitialURL opens straight onto the page behind a browser URL.
func (a *App) WithInitialURL(pageURL string) *App {
	a.initialCmd = func() tea.Msg {
		return messages.PageURLRequested{URL: pageURL}
	}
	return a
}

// WithInitialView starts on a view other than search.
func (a *App) WithInitialView(view messages.ViewType) *App {
	a.currentView = view
	if view == messages.ViewBookmarks {
		a.initialCmd = a.bookmarksView.Init()
	}
	return a
}

// searchStartup triggers the pre-seeded search once the program runs.
type searchStartup struct {
	query string
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("confluence-reader"),
		a.searchView.Init(),
	}
	if a.initialCmd != nil {
		cmds = append(cmds, a.initialCmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.pageView.SetDimensions(msg.Width, msg.Height)
		a.bookmarksView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case searchStartup:
		a.searchView, cmd = a.searchView.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return a, cmd

	case messages.PageRequested:
		return a, a.loadPage(msg.PageID)

	case messages.PageURLRequested:
		return a, a.loadPageByURL(msg.URL)

	case messages.PageLoaded:
		return a.handlePageLoaded(msg)

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.BookmarksLoaded, messages.BookmarkRemoved:
		a.bookmarksView, cmd = a.bookmarksView.Update(msg)
		return a, cmd

	case messages.BookmarkSaved, messages.ExternalOpened:
		a.pageView, cmd = a.pageView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		return a.switchView(msg.View)

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewPage:
			a.pageView, cmd = a.pageView.Update(msg)
		case messages.ViewBookmarks, messages.ViewHelp:
			// Nothing to forward
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewPage:
		a.pageView, cmd = a.pageView.Update(msg)
	case messages.ViewBookmarks:
		a.bookmarksView, cmd = a.bookmarksView.Update(msg)
	case messages.ViewHelp:
		// Help view is static
	}
	return a, cmd
}

// handleKeyMsg routes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Global quit with ctrl+c
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewSearch:
		// Bookmarks and help shortcuts work outside input mode
		if !a.searchView.InputFocused() {
			switch msg.String() {
			case "ctrl+b", "B":
				return a.switchView(messages.ViewBookmarks)
			case "?":
				a.currentView = messages.ViewHelp
				return a, nil
			case "q":
				return a, tea.Quit
			}
		}
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ViewPage:
		if msg.Type == tea.KeyEsc {
			return a.goBack()
		}
		if msg.String() == "q" {
			return a, tea.Quit
		}
		a.pageView, cmd = a.pageView.Update(msg)
		return a, cmd

	case messages.ViewBookmarks:
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewSearch
			return a, nil
		}
		if msg.String() == "q" {
			return a, tea.Quit
		}
		a.bookmarksView, cmd = a.bookmarksView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			a.currentView = messages.ViewSearch
		}
		return a, nil
	}

	return a, nil
}

// switchView activates a view, running its init command.
func (a *App) switchView(view messages.ViewType) (tea.Model, tea.Cmd) {
	a.currentView = view
	switch view {
	case messages.ViewBookmarks:
		return a, a.bookmarksView.Init()
	case messages.ViewSearch:
		return a, nil
	case messages.ViewPage, messages.ViewHelp:
		return a, nil
	}
	return a, nil
}

// goBack pops the page history, falling back to the originating view.
func (a *App) goBack() (tea.Model, tea.Cmd) {
	if len(a.history) > 0 {
		last := a.history[len(a.history)-1]
		a.history = a.history[:len(a.history)-1]
		a.pageView.SetDocument(last.page, last.doc)
		return a, nil
	}
	a.currentView = a.returnView
	return a, nil
}

// loadPage fetches and renders a page as a single command.
func (a *App) loadPage(pageID string) tea.Cmd {
	return func() tea.Msg {
		p, err := a.ports.Page.GetPage(a.ctx, pageID)
		if err != nil {
			return messages.PageLoaded{Err: err}
		}
		doc, err := a.ports.Renderer.Render(a.ctx, p)
		if err != nil {
			return messages.PageLoaded{Err: err}
		}
		return messages.PageLoaded{Page: p, Doc: doc}
	}
}

// loadPageByURL resolves a browser URL to a page and renders it.
func (a *App) loadPageByURL(pageURL string) tea.Cmd {
	return func() tea.Msg {
		p, err := a.ports.Page.GetPageByURL(a.ctx, pageURL)
		if err != nil {
			return messages.PageLoaded{Err: err}
		}
		doc, err := a.ports.Renderer.Render(a.ctx, p)
		if err != nil {
			return messages.PageLoaded{Err: err}
		}
		return messages.PageLoaded{Page: p, Doc: doc}
	}
}

// handlePageLoaded installs a loaded page, pushing the previous one
// onto the history trail.
func (a *App) handlePageLoaded(msg messages.PageLoaded) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg.Err != nil {
		a.err = msg.Err
		errMsg := messages.ErrorOccurred{Err: msg.Err}
		switch a.currentView {
		case messages.ViewPage:
			a.pageView, cmd = a.pageView.Update(errMsg)
		case messages.ViewSearch, messages.ViewBookmarks, messages.ViewHelp:
			a.searchView, cmd = a.searchView.Update(errMsg)
		}
		return a, cmd
	}

	if a.currentView == messages.ViewPage && a.pageView.Page() != nil {
		a.history = append(a.history, historyEntry{
			page: a.pageView.Page(),
			doc:  a.pageView.Document(),
		})
	} else {
		// Entering the page view afresh: remember where to return
		a.returnView = a.currentView
		if a.returnView == messages.ViewPage || a.returnView == messages.ViewHelp {
			a.returnView = messages.ViewSearch
		}
		a.history = nil
	}

	a.err = nil
	a.pageView.SetDocument(msg.Page, msg.Doc)
	a.currentView = messages.ViewPage
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewPage:
		return a.pageView.View()
	case messages.ViewBookmarks:
		return a.bookmarksView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.searchView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Search:
  (type)      Enter search terms
  enter       Submit search
  esc         Quit

Results:
  j/k, ↑/↓    Navigate results
  enter       Open page
  t/s/m       Sort by title / space / modified
  n           New search
  B           Bookmarks

Page:
  j/k, ↑/↓    Move cursor
  tab/S-tab   Next / previous link
  enter       Follow link at cursor
  b           Bookmark page
  o           Open in browser
  esc         Back

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// HistoryDepth returns how many pages are behind the current one.
func (a *App) HistoryDepth() int {
	return len(a.history)
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	a.pageView.SetDimensions(width, height)
	a.bookmarksView.SetDimensions(width, height)
}
