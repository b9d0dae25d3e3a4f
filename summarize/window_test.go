package summarize_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/linkvault/summarize"
	"github.com/stretchr/testify/assert"
)

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("l%02d", i)
	}
	return lines
}

func TestSummarizer_Localize(t *testing.T) {
	t.Parallel()

	s := summarize.New(summarize.DefaultConfig())

	t.Run("returns empty window for no lines", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", s.Localize(nil))
	})

	t.Run("returns single line unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "only line", s.Localize([]string{"only line"}))
	})

	t.Run("takes ten lines on each side of the longest line", func(t *testing.T) {
		t.Parallel()

		lines := numberedLines(25)
		lines[12] = "the longest line of them all"

		window := s.Localize(lines)

		assert.Equal(t, strings.Join(lines[2:23], " "), window)
	})

	t.Run("clamps window to the start", func(t *testing.T) {
		t.Parallel()

		lines := numberedLines(15)
		lines[0] = "the longest line of them all"

		assert.Equal(t, strings.Join(lines[0:11], " "), s.Localize(lines))
	})

	t.Run("clamps window to the end", func(t *testing.T) {
		t.Parallel()

		lines := numberedLines(15)
		lines[14] = "the longest line of them all"

		assert.Equal(t, strings.Join(lines[4:15], " "), s.Localize(lines))
	})

	t.Run("first longest line wins ties", func(t *testing.T) {
		t.Parallel()

		narrow := summarize.New(summarize.Config{WindowRadius: 1})

		window := narrow.Localize([]string{"a", "bbbb", "cccc", "d", "e"})

		assert.Equal(t, "a bbbb cccc", window)
	})

	t.Run("measures length in characters", func(t *testing.T) {
		t.Parallel()

		narrow := summarize.New(summarize.Config{WindowRadius: 1})

		// "ééé" is six bytes but three characters, so "abcd" is longer.
		window := narrow.Localize([]string{"x", "ééé", "y", "abcd", "z"})

		assert.Equal(t, "y abcd z", window)
	})
}
