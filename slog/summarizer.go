package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkvault"
)

// Ensure LoggingSummarizer implements linkvault.Summarizer.
var _ linkvault.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with debug logging.
type LoggingSummarizer struct {
	next   linkvault.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next linkvault.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the result.
func (s *LoggingSummarizer) Summarize(raw string) (summary *linkvault.Summary) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"title", summary.Title,
			"bullets", len(summary.Bullets),
			"bytes", len(raw),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Summarize(raw)
}
