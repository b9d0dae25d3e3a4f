package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/linkvault"
)

// BookmarkStore writes bookmarks as markdown files with atomic update
// semantics. Files are saved to baseDir/name.tmp and moved to baseDir/name
// on Commit.
type BookmarkStore struct {
	baseDir string
	name    string
}

// NewBookmarkStore creates a new BookmarkStore.
func NewBookmarkStore(baseDir, name string) *BookmarkStore {
	return &BookmarkStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *BookmarkStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *BookmarkStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes b below the temporary directory.
func (s *BookmarkStore) Save(ctx context.Context, b *linkvault.Bookmark) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URLToPath(b.URL)
	if err != nil {
		return linkvault.Errorf(linkvault.EINVALID, "%v", err)
	}

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatBookmark(b)), 0644)
}

// Commit replaces the final directory with the temporary one.
func (s *BookmarkStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved since the last Commit.
func (s *BookmarkStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// FormatBookmark formats a bookmark as markdown with YAML frontmatter.
func FormatBookmark(b *linkvault.Bookmark) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	sb.WriteString("source: ")
	sb.WriteString(b.URL)
	sb.WriteString("\ntitle: ")
	sb.WriteString(quoteYAML(b.Title))
	if len(b.Tags) > 0 {
		sb.WriteString("\ntags: [")
		sb.WriteString(strings.Join(b.Tags, ", "))
		sb.WriteString("]")
	}
	if b.FaviconURL != "" {
		sb.WriteString("\nfavicon: ")
		sb.WriteString(b.FaviconURL)
	}
	if !b.CreatedAt.IsZero() {
		sb.WriteString("\nadded: ")
		sb.WriteString(b.CreatedAt.Format(time.DateOnly))
	}
	sb.WriteString("\n---\n\n# ")
	sb.WriteString(b.Title)
	sb.WriteString("\n")
	for _, bullet := range b.Summary {
		sb.WriteString("\n- ")
		sb.WriteString(bullet)
	}
	sb.WriteString("\n")
	return sb.String()
}

// quoteYAML quotes s when it holds characters YAML would misread.
func quoteYAML(s string) string {
	if !strings.ContainsAny(s, ":#\"'[]{}") {
		return s
	}
	return `"` + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`) + `"`
}
