package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/linkvault"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ linkvault.BookmarkService = (*BookmarkService)(nil)

// BookmarkService implements linkvault.BookmarkService using SQLite.
type BookmarkService struct {
	db *DB
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(db *DB) *BookmarkService {
	return &BookmarkService{db: db}
}

const bookmarkColumns = "id, owner_id, url, title, summary, favicon_url, tags, position, content_hash, created_at, updated_at"

// CreateBookmark creates a new bookmark.
func (s *BookmarkService) CreateBookmark(ctx context.Context, b *linkvault.Bookmark) error {
	if err := b.Validate(); err != nil {
		return err
	}

	summary, err := encodeStrings(b.Summary)
	if err != nil {
		return err
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	tags, err := encodeStrings(b.Tags)
	if err != nil {
		return err
	}

	b.ID = uuid.New().String()
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (`+bookmarkColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.OwnerID, b.URL, b.Title, summary, b.FaviconURL, tags, b.Position, b.ContentHash,
		formatTime(b.CreatedAt), formatTime(b.UpdatedAt))

	return err
}

// FindBookmarkByID retrieves a bookmark by ID.
func (s *BookmarkService) FindBookmarkByID(ctx context.Context, ownerID, id string) (*linkvault.Bookmark, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+bookmarkColumns+`
		FROM bookmarks
		WHERE id = ? AND owner_id = ?
	`, id, ownerID)

	b, err := scanBookmark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, linkvault.Errorf(linkvault.ENOTFOUND, "bookmark not found")
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FindBookmarks retrieves bookmarks matching the filter, ordered by position.
func (s *BookmarkService) FindBookmarks(ctx context.Context, filter linkvault.BookmarkFilter) ([]*linkvault.Bookmark, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + bookmarkColumns + " FROM bookmarks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.OwnerID != nil {
		query.WriteString(" AND owner_id = ?")
		args = append(args, *filter.OwnerID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Tag != nil {
		query.WriteString(" AND EXISTS (SELECT 1 FROM json_each(bookmarks.tags) WHERE json_each.value = ?)")
		args = append(args, strings.ToLower(*filter.Tag))
	}

	query.WriteString(" ORDER BY position ASC, created_at ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*linkvault.Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}

// UpdateBookmark updates an existing bookmark.
func (s *BookmarkService) UpdateBookmark(ctx context.Context, ownerID, id string, upd linkvault.BookmarkUpdate) (*linkvault.Bookmark, error) {
	b, err := s.FindBookmarkByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Summary != nil {
		b.Summary = *upd.Summary
	}
	if upd.FaviconURL != nil {
		b.FaviconURL = *upd.FaviconURL
	}
	if upd.Tags != nil {
		b.Tags = *upd.Tags
	}
	if upd.ContentHash != nil {
		b.ContentHash = *upd.ContentHash
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	summary, err := encodeStrings(b.Summary)
	if err != nil {
		return nil, err
	}
	tags, err := encodeStrings(b.Tags)
	if err != nil {
		return nil, err
	}

	b.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE bookmarks
		SET title = ?, summary = ?, favicon_url = ?, tags = ?, content_hash = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?
	`, b.Title, summary, b.FaviconURL, tags, b.ContentHash, formatTime(b.UpdatedAt), id, ownerID)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBookmark permanently removes a bookmark.
func (s *BookmarkService) DeleteBookmark(ctx context.Context, ownerID, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return linkvault.Errorf(linkvault.ENOTFOUND, "bookmark not found")
	}

	return nil
}

// ReorderBookmarks sets each bookmark's position to its index in orderedIDs
// in a single transaction.
func (s *BookmarkService) ReorderBookmarks(ctx context.Context, ownerID string, orderedIDs []string) error {
	if orderedIDs == nil {
		return linkvault.Errorf(linkvault.EINVALID, "ordered IDs required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, "UPDATE bookmarks SET position = ? WHERE id = ? AND owner_id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, id := range orderedIDs {
		if _, err := stmt.ExecContext(ctx, i, id, ownerID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row scanner) (*linkvault.Bookmark, error) {
	var b linkvault.Bookmark
	var summary, tags, createdAt, updatedAt string

	if err := row.Scan(&b.ID, &b.OwnerID, &b.URL, &b.Title, &summary, &b.FaviconURL, &tags,
		&b.Position, &b.ContentHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if b.Summary, err = decodeStrings(summary, "summary"); err != nil {
		return nil, err
	}
	if b.Tags, err = decodeStrings(tags, "tags"); err != nil {
		return nil, err
	}
	if b.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if b.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &b, nil
}
