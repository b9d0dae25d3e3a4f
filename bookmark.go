package linkvault

import (
	"context"
	"net/url"
	"time"
)

// Bookmark represents a saved link with its page summary.
type Bookmark struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Summary     []string  `json:"summary"`
	FaviconURL  string    `json:"faviconUrl"`
	Tags        []string  `json:"tags"`
	Position    int64     `json:"position"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the bookmark contains invalid fields.
func (b *Bookmark) Validate() error {
	if b.OwnerID == "" {
		return Errorf(EINVALID, "bookmark owner required")
	}
	if b.URL == "" {
		return Errorf(EINVALID, "bookmark URL required")
	}
	if err := ValidateURL(b.URL); err != nil {
		return err
	}
	if b.Title == "" {
		return Errorf(EINVALID, "bookmark title required")
	}
	if len(b.Summary) == 0 {
		return Errorf(EINVALID, "bookmark summary required")
	}
	return nil
}

// ValidateURL returns EINVALID unless rawURL is an absolute http or https URL.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "URL %q must use http or https", rawURL)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "URL %q has no host", rawURL)
	}
	return nil
}

// BookmarkService represents a service for managing bookmarks.
// Every operation is scoped to an owner; bookmarks of other owners are invisible.
type BookmarkService interface {
	// CreateBookmark creates a new bookmark.
	CreateBookmark(ctx context.Context, bookmark *Bookmark) error

	// FindBookmarkByID retrieves a bookmark by ID.
	// Returns ENOTFOUND if the bookmark does not exist for the owner.
	FindBookmarkByID(ctx context.Context, ownerID, id string) (*Bookmark, error)

	// FindBookmarks retrieves bookmarks matching the filter, ordered by position.
	FindBookmarks(ctx context.Context, filter BookmarkFilter) ([]*Bookmark, error)

	// UpdateBookmark updates an existing bookmark.
	// Returns ENOTFOUND if the bookmark does not exist for the owner.
	UpdateBookmark(ctx context.Context, ownerID, id string, upd BookmarkUpdate) (*Bookmark, error)

	// DeleteBookmark permanently removes a bookmark.
	// Returns ENOTFOUND if the bookmark does not exist for the owner.
	DeleteBookmark(ctx context.Context, ownerID, id string) error

	// ReorderBookmarks sets each bookmark's position to its index in orderedIDs.
	// IDs that do not belong to the owner are ignored.
	ReorderBookmarks(ctx context.Context, ownerID string, orderedIDs []string) error
}

// BookmarkFilter represents a filter for FindBookmarks.
type BookmarkFilter struct {
	ID      *string `json:"id"`
	OwnerID *string `json:"ownerId"`
	URL     *string `json:"url"`
	Tag     *string `json:"tag"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// BookmarkUpdate represents fields that can be updated on a bookmark.
type BookmarkUpdate struct {
	Title       *string   `json:"title"`
	Summary     *[]string `json:"summary"`
	FaviconURL  *string   `json:"faviconUrl"`
	Tags        *[]string `json:"tags"`
	ContentHash *string   `json:"contentHash"`
}
