// Package sqlite provides the SQLite-backed bookmark store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Whil-/confluence-reader/internal/core/domain"
	"github.com/Whil-/confluence-reader/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.BookmarkStore = (*Store)(nil)

// Store persists bookmark records in a SQLite database. Records are
// tagged with a handler so the same store could hold records from other
// handlers without the reader picking them up.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a bookmark store at the specified data directory.
// If dataDir is empty, defaults to ~/.confluence-reader/data/bookmarks.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".confluence-reader", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "bookmarks.db")

	// WAL mode for better concurrency with a long-running TUI
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.bootstrap(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// bootstrap creates the schema if it does not exist yet.
func (s *Store) bootstrap() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS bookmarks (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			page_id    TEXT NOT NULL,
			location   TEXT NOT NULL,
			handler    TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)
	`)
	return err
}

// Save implements driven.BookmarkStore.
func (s *Store) Save(ctx context.Context, bookmark domain.Bookmark) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO bookmarks (id, title, page_id, location, handler, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		bookmark.ID,
		bookmark.Title,
		bookmark.PageID,
		bookmark.Location,
		bookmark.Handler,
		bookmark.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving bookmark: %w", err)
	}
	return nil
}

// List implements driven.BookmarkStore.
func (s *Store) List(ctx context.Context) ([]domain.Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, page_id, location, handler, created_at
		FROM bookmarks
		WHERE handler = ?
		ORDER BY created_at DESC`,
		domain.BookmarkHandler,
	)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []domain.Bookmark
	for rows.Next() {
		bookmark, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, bookmark)
	}
	return bookmarks, rows.Err()
}

// Get implements driven.BookmarkStore.
func (s *Store) Get(ctx context.Context, id string) (*domain.Bookmark, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, page_id, location, handler, created_at
		FROM bookmarks
		WHERE id = ?`,
		id,
	)

	bookmark, err := scanBookmark(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &bookmark, nil
}

// Delete implements driven.BookmarkStore.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row scanner) (domain.Bookmark, error) {
	var bookmark domain.Bookmark
	var createdAt string

	err := row.Scan(
		&bookmark.ID,
		&bookmark.Title,
		&bookmark.PageID,
		&bookmark.Location,
		&bookmark.Handler,
		&createdAt,
	)
	if err != nil {
		return domain.Bookmark{}, err
	}

	bookmark.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.Bookmark{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return bookmark, nil
}
