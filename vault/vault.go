// Package vault saves bookmarks: it reads a page, summarizes it and stores
// the result, and keeps stored summaries fresh.
package vault

import (
	"context"
	"time"

	"github.com/fwojciec/linkvault"
)

// Vault coordinates page reading, summarizing and storage.
type Vault struct {
	Reader     linkvault.PageReader
	Summarizer linkvault.Summarizer
	Bookmarks  linkvault.BookmarkService

	// RetryDelays are the waits between read attempts. Nil uses
	// DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// Now returns the current time. Nil uses time.Now.
	Now func() time.Time

	// Logf, if set, receives retry notices.
	Logf LogFunc
}

// AddBookmark reads and summarizes rawURL and stores it for ownerID.
// Returns EINVALID for a malformed URL, ECONFLICT when the owner already
// saved the URL and EUNAVAILABLE when the page cannot be read. Nothing is
// stored on failure.
func (v *Vault) AddBookmark(ctx context.Context, ownerID, rawURL string, tags []string) (*linkvault.Bookmark, error) {
	if err := linkvault.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	existing, err := v.Bookmarks.FindBookmarks(ctx, linkvault.BookmarkFilter{
		OwnerID: &ownerID,
		URL:     &rawURL,
		Limit:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, linkvault.Errorf(linkvault.ECONFLICT, "%s is already bookmarked", rawURL)
	}

	b, err := v.prepare(ctx, ownerID, rawURL, tags)
	if err != nil {
		return nil, err
	}
	b.Position = v.now().UnixMilli()

	if err := v.Bookmarks.CreateBookmark(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// RefreshBookmark re-reads a stored bookmark. When the page content is
// unchanged the bookmark is returned as stored and changed is false;
// otherwise its title and summary are replaced.
func (v *Vault) RefreshBookmark(ctx context.Context, ownerID, id string) (b *linkvault.Bookmark, changed bool, err error) {
	b, err = v.Bookmarks.FindBookmarkByID(ctx, ownerID, id)
	if err != nil {
		return nil, false, err
	}

	page, err := v.read(ctx, b.URL)
	if err != nil {
		return nil, false, err
	}

	hash := HashContent(page.Content)
	if hash == b.ContentHash {
		return b, false, nil
	}

	summary := v.Summarizer.Summarize(page.Content)
	upd := linkvault.BookmarkUpdate{
		Title:       &summary.Title,
		Summary:     &summary.Bullets,
		ContentHash: &hash,
	}
	if page.FaviconURL != "" {
		upd.FaviconURL = &page.FaviconURL
	}

	b, err = v.Bookmarks.UpdateBookmark(ctx, ownerID, id, upd)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// prepare reads and summarizes rawURL into an unsaved bookmark.
func (v *Vault) prepare(ctx context.Context, ownerID, rawURL string, tags []string) (*linkvault.Bookmark, error) {
	page, err := v.read(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	summary := v.Summarizer.Summarize(page.Content)

	favicon := page.FaviconURL
	if favicon == "" {
		if favicon, err = linkvault.FaviconURL(rawURL); err != nil {
			return nil, err
		}
	}

	if tags == nil {
		tags = []string{}
	}

	return &linkvault.Bookmark{
		OwnerID:     ownerID,
		URL:         rawURL,
		Title:       summary.Title,
		Summary:     summary.Bullets,
		FaviconURL:  favicon,
		Tags:        tags,
		ContentHash: HashContent(page.Content),
	}, nil
}

// read fetches page text with retries. Any failure other than cancellation
// or a malformed URL is reported as EUNAVAILABLE.
func (v *Vault) read(ctx context.Context, rawURL string) (*linkvault.Page, error) {
	var page *linkvault.Page
	var err error
	if v.RetryDelays == nil {
		page, err = ReadWithRetry(ctx, rawURL, v.Reader.ReadPage, v.Logf)
	} else {
		page, err = ReadWithRetryDelays(ctx, rawURL, v.Reader.ReadPage, v.Logf, v.RetryDelays)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		switch linkvault.ErrorCode(err) {
		case linkvault.EINVALID, linkvault.EUNAVAILABLE:
			return nil, err
		}
		return nil, linkvault.Errorf(linkvault.EUNAVAILABLE, "failed to fetch page content: %v", err)
	}
	return page, nil
}

func (v *Vault) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}

