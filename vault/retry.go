package vault

import (
	"context"
	"time"

	"github.com/fwojciec/linkvault"
)

// ReadFunc is the signature of linkvault.PageReader.ReadPage.
type ReadFunc func(ctx context.Context, url string) (*linkvault.Page, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for read retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// ReadWithRetry reads url, retrying up to three times with delays of 1s,
// 2s and 4s.
func ReadWithRetry(ctx context.Context, url string, read ReadFunc, logf LogFunc) (*linkvault.Page, error) {
	return ReadWithRetryDelays(ctx, url, read, logf, DefaultRetryDelays())
}

// ReadWithRetryDelays is like ReadWithRetry with configurable delays.
// EINVALID errors are not retried since another attempt cannot succeed.
func ReadWithRetryDelays(ctx context.Context, url string, read ReadFunc, logf LogFunc, delays []time.Duration) (*linkvault.Page, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		page, err := read(ctx, url)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if attempt == len(delays) || linkvault.ErrorCode(err) == linkvault.EINVALID {
			break
		}

		if logf != nil {
			logf("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
