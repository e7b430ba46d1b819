package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/core/ports/driven"
	"github.com/Whil-/confluence-reader/internal/core/ports/driving"
	"github.com/Whil-/confluence-reader/internal/logger"
)

// Ensure PageService implements the interface.
var _ driving.PageService = (*PageService)(nil)

// DefaultBrowserURLTemplate builds the external-browser URL from the
// host and the page's browser-relative link, in that order.
const DefaultBrowserURLTemplate = "https://%s/wiki%s"

// pageIDSegment is the position of the page identifier among the
// non-empty segments of a page URL split on "/". Assumes the standard
// https://<host>/wiki/spaces/<space>/pages/<id>/<title> shape; URLs of
// any other shape will misparse.
const pageIDSegment = 6

// PageService fetches pages and performs page-scoped actions.
type PageService struct {
	api         driven.ConfluenceAPI
	bookmarks   driven.BookmarkStore
	opener      driven.URLOpener
	urlTemplate string
}

// NewPageService creates a new page service. urlTemplate may be empty,
// in which case DefaultBrowserURLTemplate is used.
func NewPageService(
	api driven.ConfluenceAPI,
	bookmarks driven.BookmarkStore,
	opener driven.URLOpener,
	urlTemplate string,
) *PageService {
	if urlTemplate == "" {
		urlTemplate = DefaultBrowserURLTemplate
	}
	return &PageService{
		api:         api,
		bookmarks:   bookmarks,
		opener:      opener,
		urlTemplate: urlTemplate,
	}
}

// GetPage implements driving.PageService.
func (s *PageService) GetPage(ctx context.Context, id string) (*domain.Page, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("page id: %w", domain.ErrInvalidInput)
	}

	logger.Section("Page Fetch")
	logger.Debug("Page id: %s", id)

	page, err := s.api.GetPage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get page %s: %w", id, err)
	}
	return page, nil
}

// GetPageByURL implements driving.PageService.
func (s *PageService) GetPageByURL(ctx context.Context, pageURL string) (*domain.Page, error) {
	id, err := ExtractPageID(pageURL)
	if err != nil {
		return nil, err
	}
	logger.Debug("Extracted page id %s from %s", id, pageURL)
	return s.GetPage(ctx, id)
}

// BrowserURL implements driving.PageService.
func (s *PageService) BrowserURL(page *domain.Page) string {
	return fmt.Sprintf(s.urlTemplate, s.api.Host(), page.WebLink)
}

// Bookmark implements driving.PageService.
func (s *PageService) Bookmark(ctx context.Context, page *domain.Page) (domain.Bookmark, error) {
	bookmark := domain.Bookmark{
		ID:        uuid.New().String(),
		Title:     page.Title,
		PageID:    page.ID,
		Location:  "confluence:" + s.api.Host(),
		Handler:   domain.BookmarkHandler,
		CreatedAt: time.Now(),
	}

	if err := s.bookmarks.Save(ctx, bookmark); err != nil {
		return domain.Bookmark{}, fmt.Errorf("save bookmark: %w", err)
	}

	logger.Debug("Bookmarked page %s as %s", page.ID, bookmark.ID)
	return bookmark, nil
}

// OpenExternal implements driving.PageService.
func (s *PageService) OpenExternal(page *domain.Page) error {
	url := s.BrowserURL(page)
	logger.Debug("Opening externally: %s", url)
	return s.opener.Open(url)
}

// OpenURL implements driving.PageService.
func (s *PageService) OpenURL(url string) error {
	logger.Debug("Opening externally: %s", url)
	return s.opener.Open(url)
}

// ExtractPageID pulls the page identifier out of a full page URL as
// copied from a browser address bar. The identifier is taken purely by
// position: the URL is split on "/", empty segments are dropped, and
// the seventh remaining segment is returned verbatim.
func ExtractPageID(pageURL string) (string, error) {
	var segments []string
	for _, seg := range strings.Split(pageURL, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	if len(segments) <= pageIDSegment {
		return "", fmt.Errorf("extract page id from %q: %w", pageURL, domain.ErrInvalidInput)
	}
	return segments[pageIDSegment], nil
}
