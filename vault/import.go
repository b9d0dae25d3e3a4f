package vault

import (
	"context"

	"github.com/fwojciec/linkvault"
	"github.com/fwojciec/linkvault/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultImportConcurrency is the number of pages read at once.
const DefaultImportConcurrency = 4

// Importer bookmarks a batch of links, such as a browser bookmark export.
type Importer struct {
	Vault *Vault

	// Limiter, if set, spaces out requests to each host.
	Limiter *DomainLimiter

	Concurrency int

	// MissingTitle is the summarizer's title for pages without one. When a
	// page yields it, the title from the import file is used instead.
	MissingTitle string
}

// ImportResult counts the outcome of an import.
type ImportResult struct {
	Added   int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during an import.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

type importResult struct {
	index    int
	bookmark *linkvault.Bookmark
	err      error
}

// Import reads and stores links for ownerID. Links already stored for the
// owner, repeated links and invalid URLs are skipped. Pages are read
// concurrently but stored in input order, so positions follow the file.
// A link that fails to read is counted and reported through progress; only
// storage errors and cancellation abort the import.
func (im *Importer) Import(ctx context.Context, ownerID string, links []linkvault.Link, progress ProgressFunc) (*ImportResult, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	keep, err := im.dedupe(ctx, ownerID, links)
	if err != nil {
		return nil, err
	}

	var result ImportResult
	var pending []int
	for i, link := range links {
		if !keep[i] {
			result.Skipped++
			progress(ProgressEvent{Type: ProgressSkipped, URL: link.URL})
			continue
		}
		pending = append(pending, i)
	}

	total := len(pending)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := im.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultImportConcurrency
	}

	resultCh := make(chan importResult, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for slot, i := range pending {
			link := links[i]
			g.Go(func() error {
				b, err := im.prepare(gctx, ownerID, link)
				resultCh <- importResult{index: slot, bookmark: b, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	completed := 0
	results := make([]importResult, total)
	for r := range resultCh {
		completed++
		n := completed
		results[r.index] = r
		url := links[pending[r.index]].URL
		if r.err != nil {
			result.Failed++
			progress(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, URL: url, Error: r.err})
			continue
		}
		progress(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: url})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := im.Vault.now().UnixMilli()
	for i, r := range results {
		if r.err != nil {
			continue
		}
		r.bookmark.Position = base + int64(i)
		if err := im.Vault.Bookmarks.CreateBookmark(ctx, r.bookmark); err != nil {
			return nil, err
		}
		result.Added++
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return &result, nil
}

// dedupe marks the links worth reading. A Bloom filter seeded with the
// owner's stored URLs answers most lookups; a positive answer is confirmed
// against the batch and then the store.
func (im *Importer) dedupe(ctx context.Context, ownerID string, links []linkvault.Link) ([]bool, error) {
	stored, err := im.Vault.Bookmarks.FindBookmarks(ctx, linkvault.BookmarkFilter{OwnerID: &ownerID})
	if err != nil {
		return nil, err
	}

	seen := bloom.NewURLFilter(len(stored) + len(links))
	for _, b := range stored {
		seen.Add(b.URL)
	}

	batch := make(map[string]bool, len(links))
	keep := make([]bool, len(links))
	for i, link := range links {
		if linkvault.ValidateURL(link.URL) != nil {
			continue
		}
		if seen.TestAndAdd(link.URL) {
			if batch[link.URL] {
				continue
			}
			found, err := im.Vault.Bookmarks.FindBookmarks(ctx, linkvault.BookmarkFilter{
				OwnerID: &ownerID,
				URL:     &link.URL,
				Limit:   1,
			})
			if err != nil {
				return nil, err
			}
			if len(found) > 0 {
				continue
			}
		}
		batch[link.URL] = true
		keep[i] = true
	}
	return keep, nil
}

func (im *Importer) prepare(ctx context.Context, ownerID string, link linkvault.Link) (*linkvault.Bookmark, error) {
	if im.Limiter != nil {
		if err := im.Limiter.WaitURL(ctx, link.URL); err != nil {
			return nil, err
		}
	}

	b, err := im.Vault.prepare(ctx, ownerID, link.URL, link.Tags)
	if err != nil {
		return nil, err
	}
	if link.Title != "" && im.MissingTitle != "" && b.Title == im.MissingTitle {
		b.Title = link.Title
	}
	return b, nil
}
