package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkvault"
)

// Ensure LoggingPageReader implements linkvault.PageReader.
var _ linkvault.PageReader = (*LoggingPageReader)(nil)

// LoggingPageReader wraps a PageReader with debug logging.
type LoggingPageReader struct {
	next   linkvault.PageReader
	logger *slog.Logger
}

// NewLoggingPageReader creates a new LoggingPageReader.
func NewLoggingPageReader(next linkvault.PageReader, logger *slog.Logger) *LoggingPageReader {
	return &LoggingPageReader{next: next, logger: logger}
}

// ReadPage delegates to the wrapped reader and logs the operation.
func (r *LoggingPageReader) ReadPage(ctx context.Context, url string) (page *linkvault.Page, err error) {
	defer func(begin time.Time) {
		var size int
		if page != nil {
			size = len(page.Content)
		}
		r.logger.Info("read page",
			"url", url,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadPage(ctx, url)
}
