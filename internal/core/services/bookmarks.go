package services

import (
	"context"
	"fmt"

	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/core/ports/driven"
	"github.com/Whil-/confluence-reader/internal/core/ports/driving"
)

// Ensure BookmarkService implements the interface.
var _ driving.BookmarkService = (*BookmarkService)(nil)

// BookmarkService lists and removes saved bookmark records.
type BookmarkService struct {
	store driven.BookmarkStore
}

// NewBookmarkService creates a new bookmark service.
func NewBookmarkService(store driven.BookmarkStore) *BookmarkService {
	return &BookmarkService{store: store}
}

// List implements driving.BookmarkService.
func (s *BookmarkService) List(ctx context.Context) ([]domain.Bookmark, error) {
	bookmarks, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// Remove implements driving.BookmarkService.
func (s *BookmarkService) Remove(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove bookmark %s: %w", id, err)
	}
	return nil
}
