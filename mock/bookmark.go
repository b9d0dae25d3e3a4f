package mock

import (
	"context"

	"github.com/fwojciec/linkvault"
)

var _ linkvault.BookmarkService = (*BookmarkService)(nil)

// BookmarkService is a mock implementation of linkvault.BookmarkService.
type BookmarkService struct {
	CreateBookmarkFn   func(ctx context.Context, b *linkvault.Bookmark) error
	FindBookmarkByIDFn func(ctx context.Context, ownerID, id string) (*linkvault.Bookmark, error)
	FindBookmarksFn    func(ctx context.Context, filter linkvault.BookmarkFilter) ([]*linkvault.Bookmark, error)
	UpdateBookmarkFn   func(ctx context.Context, ownerID, id string, upd linkvault.BookmarkUpdate) (*linkvault.Bookmark, error)
	DeleteBookmarkFn   func(ctx context.Context, ownerID, id string) error
	ReorderBookmarksFn func(ctx context.Context, ownerID string, orderedIDs []string) error
}

func (s *BookmarkService) CreateBookmark(ctx context.Context, b *linkvault.Bookmark) error {
	return s.CreateBookmarkFn(ctx, b)
}

func (s *BookmarkService) FindBookmarkByID(ctx context.Context, ownerID, id string) (*linkvault.Bookmark, error) {
	return s.FindBookmarkByIDFn(ctx, ownerID, id)
}

func (s *BookmarkService) FindBookmarks(ctx context.Context, filter linkvault.BookmarkFilter) ([]*linkvault.Bookmark, error) {
	return s.FindBookmarksFn(ctx, filter)
}

func (s *BookmarkService) UpdateBookmark(ctx context.Context, ownerID, id string, upd linkvault.BookmarkUpdate) (*linkvault.Bookmark, error) {
	return s.UpdateBookmarkFn(ctx, ownerID, id, upd)
}

func (s *BookmarkService) DeleteBookmark(ctx context.Context, ownerID, id string) error {
	return s.DeleteBookmarkFn(ctx, ownerID, id)
}

func (s *BookmarkService) ReorderBookmarks(ctx context.Context, ownerID string, orderedIDs []string) error {
	return s.ReorderBookmarksFn(ctx, ownerID, orderedIDs)
}
