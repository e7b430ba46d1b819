package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Whil-/confluence-reader/internal/adapters/driving/tui/messages"
	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/render"
)

// mockSearchService implements driving.SearchService.
type mockSearchService struct {
	results  []domain.SearchResult
	err      error
	gotTerms string
	gotRaw   bool
	gotLimit int
}

func (m *mockSearchService) Search(_ context.Context, terms string, raw bool, limit int) ([]domain.SearchResult, error) {
	m.gotTerms = terms
	m.gotRaw = raw
	m.gotLimit = limit
	return m.results, m.err
}

// mockPageService implements driving.PageService.
type mockPageService struct {
	page       *domain.Page
	err        error
	gotID      string
	openedURLs []string
	bookmarked []string
}

func (m *mockPageService) GetPage(_ context.Context, id string) (*domain.Page, error) {
	m.gotID = id
	return m.page, m.err
}

func (m *mockPageService) GetPageByURL(ctx context.Context, _ string) (*domain.Page, error) {
	return m.GetPage(ctx, "from-url")
}

func (m *mockPageService) BrowserURL(page *domain.Page) string {
	return "https://example.atlassian.net/wiki" + page.WebLink
}

func (m *mockPageService) Bookmark(_ context.Context, page *domain.Page) (domain.Bookmark, error) {
	m.bookmarked = append(m.bookmarked, page.ID)
	return domain.Bookmark{ID: "bm-1", Title: page.Title, PageID: page.ID}, nil
}

func (m *mockPageService) OpenExternal(page *domain.Page) error {
	m.openedURLs = append(m.openedURLs, m.BrowserURL(page))
	return nil
}

func (m *mockPageService) OpenURL(url string) error {
	m.openedURLs = append(m.openedURLs, url)
	return nil
}

// mockBookmarkService implements driving.BookmarkService.
type mockBookmarkService struct {
	bookmarks []domain.Bookmark
	removed   []string
	err       error
}

func (m *mockBookmarkService) List(_ context.Context) ([]domain.Bookmark, error) {
	return m.bookmarks, m.err
}

func (m *mockBookmarkService) Remove(_ context.Context, id string) error {
	m.removed = append(m.removed, id)
	return m.err
}

// mockRenderer implements PageRenderer.
type mockRenderer struct {
	doc *render.Document
	err error
}

func (m *mockRenderer) Render(_ context.Context, page *domain.Page) (*render.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.doc != nil {
		return m.doc, nil
	}
	return &render.Document{Title: page.Title, Lines: []string{page.Title}}, nil
}

func testPorts() (*Ports, *mockSearchService, *mockPageService, *mockBookmarkService) {
	searchSvc := &mockSearchService{}
	pageSvc := &mockPageService{}
	bookmarkSvc := &mockBookmarkService{}
	ports := NewPorts(searchSvc, pageSvc, bookmarkSvc, &mockRenderer{})
	return ports, searchSvc, pageSvc, bookmarkSvc
}

func newTestApp(t *testing.T) (*App, *mockSearchService, *mockPageService, *mockBookmarkService) {
	t.Helper()
	ports, searchSvc, pageSvc, bookmarkSvc := testPorts()
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(100, 30)
	return app, searchSvc, pageSvc, bookmarkSvc
}

// drain runs a command and feeds its message back into the app.
func drain(t *testing.T, app *App, cmd tea.Cmd) *App {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return app
		}
		var model tea.Model
		model, cmd = app.Update(msg)
		app = model.(*App)
	}
	return app
}

func TestNewApp_RequiresPorts(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Ports)
		wantErr error
	}{
		{"missing search", func(p *Ports) { p.Search = nil }, ErrMissingSearchService},
		{"missing page", func(p *Ports) { p.Page = nil }, ErrMissingPageService},
		{"missing renderer", func(p *Ports) { p.Renderer = nil }, ErrMissingRenderer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports, _, _, _ := testPorts()
			tt.mutate(ports)

			_, err := NewApp(ports)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_StartsOnSearchView(t *testing.T) {
	app, _, _, _ := newTestApp(t)
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.True(t, app.Ready())
}

func TestApp_NotReadyBeforeDimensions(t *testing.T) {
	ports, _, _, _ := testPorts()
	app, err := NewApp(ports)
	require.NoError(t, err)

	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_PageLoadedSwitchesToPageView(t *testing.T) {
	app, _, pageSvc, _ := newTestApp(t)
	pageSvc.page = &domain.Page{ID: "123", Title: "Runbook", WebLink: "/spaces/ENG/pages/123"}

	model, cmd := app.Update(messages.PageRequested{PageID: "123"})
	app = model.(*App)
	require.NotNil(t, cmd)
	app = drain(t, app, cmd)

	assert.Equal(t, "123", pageSvc.gotID)
	assert.Equal(t, messages.ViewPage, app.CurrentView())
	assert.Equal(t, 0, app.HistoryDepth())
}

func TestApp_FollowingLinkPushesHistory(t *testing.T) {
	app, _, pageSvc, _ := newTestApp(t)

	pageSvc.page = &domain.Page{ID: "1", Title: "First"}
	model, cmd := app.Update(messages.PageRequested{PageID: "1"})
	app = drain(t, model.(*App), cmd)
	require.Equal(t, messages.ViewPage, app.CurrentView())

	pageSvc.page = &domain.Page{ID: "2", Title: "Second"}
	model, cmd = app.Update(messages.PageRequested{PageID: "2"})
	app = drain(t, model.(*App), cmd)

	assert.Equal(t, 1, app.HistoryDepth())

	// Esc pops back to the first page
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Equal(t, messages.ViewPage, app.CurrentView())
	assert.Equal(t, 0, app.HistoryDepth())

	// Esc again leaves the page view
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_PageLoadErrorStaysOnCurrentView(t *testing.T) {
	app, _, pageSvc, _ := newTestApp(t)
	pageSvc.err = errors.New("boom")

	model, cmd := app.Update(messages.PageRequested{PageID: "1"})
	app = drain(t, model.(*App), cmd)

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.Error(t, app.Err())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app, _, _, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_HelpViewRoundTrip(t *testing.T) {
	app, searchSvc, _, _ := newTestApp(t)
	searchSvc.results = []domain.SearchResult{{Title: "A", PageID: "1"}}

	// Run a search so the search view leaves input mode
	model, _ := app.Update(messages.SearchCompleted{Results: searchSvc.results})
	app = model.(*App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	app = model.(*App)
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Follow link at cursor")

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_BookmarksView(t *testing.T) {
	app, searchSvc, _, bookmarkSvc := newTestApp(t)
	searchSvc.results = []domain.SearchResult{{Title: "A", PageID: "1"}}
	bookmarkSvc.bookmarks = []domain.Bookmark{{ID: "bm-1", Title: "Saved", PageID: "9"}}

	model, _ := app.Update(messages.SearchCompleted{Results: searchSvc.results})
	app = model.(*App)

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'B'}})
	app = drain(t, model.(*App), cmd)

	assert.Equal(t, messages.ViewBookmarks, app.CurrentView())
	assert.Contains(t, app.View(), "Saved")
}

func TestApp_InitialPageCommand(t *testing.T) {
	ports, _, pageSvc, _ := testPorts()
	pageSvc.page = &domain.Page{ID: "42", Title: "Direct"}

	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(100, 30)
	app.WithInitialPage("42")

	cmd := app.Init()
	require.NotNil(t, cmd)

	// Batch commands: walk them looking for the page request
	app = drain(t, app, func() tea.Msg { return messages.PageRequested{PageID: "42"} })
	assert.Equal(t, messages.ViewPage, app.CurrentView())
	assert.Equal(t, "42", pageSvc.gotID)
}
