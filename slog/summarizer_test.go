package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/linkvault"
	"github.com/fwojciec/linkvault/mock"
	lvslog "github.com/fwojciec/linkvault/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	want := &linkvault.Summary{Title: "Deep Work", Bullets: []string{"one", "two"}}
	inner := &mock.Summarizer{
		SummarizeFn: func(raw string) *linkvault.Summary {
			return want
		},
	}

	summarizer := lvslog.NewLoggingSummarizer(inner, logger)
	got := summarizer.Summarize("some page text")

	assert.Same(t, want, got)
	output := buf.String()
	assert.Contains(t, output, "msg=summarize")
	assert.Contains(t, output, `title="Deep Work"`)
	assert.Contains(t, output, "bullets=2")
	assert.Contains(t, output, "bytes=14")
}
