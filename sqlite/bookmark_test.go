package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/linkvault"
	"github.com/fwojciec/linkvault/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBookmark(t *testing.T, svc *sqlite.BookmarkService, owner, url string, position int64, tags ...string) *linkvault.Bookmark {
	t.Helper()
	b := &linkvault.Bookmark{
		OwnerID:  owner,
		URL:      url,
		Title:    "Title of " + url,
		Summary:  []string{"First bullet of the summary.", "Second bullet of the summary."},
		Tags:     tags,
		Position: position,
	}
	require.NoError(t, svc.CreateBookmark(context.Background(), b))
	return b
}

func strPtr(s string) *string {
	return &s
}

func TestBookmarkService_CreateBookmark(t *testing.T) {
	t.Parallel()

	t.Run("creates bookmark with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))

		b := &linkvault.Bookmark{
			OwnerID:     "alice",
			URL:         "https://example.com/a",
			Title:       "Example",
			Summary:     []string{"A bullet."},
			FaviconURL:  "https://example.com/favicon.ico",
			ContentHash: "00000000deadbeef",
		}

		err := svc.CreateBookmark(context.Background(), b)
		require.NoError(t, err)

		assert.NotEmpty(t, b.ID, "ID should be generated")
		assert.False(t, b.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.Equal(t, b.CreatedAt, b.UpdatedAt)
		assert.Equal(t, []string{}, b.Tags)
	})

	t.Run("returns error for invalid bookmark", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))

		err := svc.CreateBookmark(context.Background(), &linkvault.Bookmark{})
		require.Error(t, err)
		assert.Equal(t, linkvault.EINVALID, linkvault.ErrorCode(err))
	})
}

func TestBookmarkService_FindBookmarkByID(t *testing.T) {
	t.Parallel()

	t.Run("returns bookmark with all fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		ctx := context.Background()
		created := createTestBookmark(t, svc, "alice", "https://example.com/a", 42, "go", "web")

		found, err := svc.FindBookmarkByID(ctx, "alice", created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "alice", found.OwnerID)
		assert.Equal(t, created.URL, found.URL)
		assert.Equal(t, created.Title, found.Title)
		assert.Equal(t, created.Summary, found.Summary)
		assert.Equal(t, []string{"go", "web"}, found.Tags)
		assert.Equal(t, int64(42), found.Position)
		assert.True(t, created.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))

		_, err := svc.FindBookmarkByID(context.Background(), "alice", "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, linkvault.ENOTFOUND, linkvault.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for another owner's bookmark", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		created := createTestBookmark(t, svc, "alice", "https://example.com/a", 1)

		_, err := svc.FindBookmarkByID(context.Background(), "bob", created.ID)
		require.Error(t, err)
		assert.Equal(t, linkvault.ENOTFOUND, linkvault.ErrorCode(err))
	})
}

func TestBookmarkService_FindBookmarks(t *testing.T) {
	t.Parallel()

	t.Run("orders by position", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		createTestBookmark(t, svc, "alice", "https://example.com/c", 30)
		createTestBookmark(t, svc, "alice", "https://example.com/a", 10)
		createTestBookmark(t, svc, "alice", "https://example.com/b", 20)

		found, err := svc.FindBookmarks(context.Background(), linkvault.BookmarkFilter{OwnerID: strPtr("alice")})
		require.NoError(t, err)

		require.Len(t, found, 3)
		assert.Equal(t, "https://example.com/a", found[0].URL)
		assert.Equal(t, "https://example.com/b", found[1].URL)
		assert.Equal(t, "https://example.com/c", found[2].URL)
	})

	t.Run("filters by owner", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		createTestBookmark(t, svc, "alice", "https://example.com/a", 1)
		createTestBookmark(t, svc, "bob", "https://example.com/b", 2)

		found, err := svc.FindBookmarks(context.Background(), linkvault.BookmarkFilter{OwnerID: strPtr("bob")})
		require.NoError(t, err)

		require.Len(t, found, 1)
		assert.Equal(t, "bob", found[0].OwnerID)
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		createTestBookmark(t, svc, "alice", "https://example.com/a", 1)
		createTestBookmark(t, svc, "alice", "https://example.com/b", 2)

		found, err := svc.FindBookmarks(context.Background(), linkvault.BookmarkFilter{
			OwnerID: strPtr("alice"),
			URL:     strPtr("https://example.com/b"),
		})
		require.NoError(t, err)

		require.Len(t, found, 1)
		assert.Equal(t, "https://example.com/b", found[0].URL)
	})

	t.Run("filters by tag case-insensitively", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		createTestBookmark(t, svc, "alice", "https://example.com/a", 1, "go", "news")
		createTestBookmark(t, svc, "alice", "https://example.com/b", 2, "rust")
		createTestBookmark(t, svc, "alice", "https://example.com/c", 3, "go")

		found, err := svc.FindBookmarks(context.Background(), linkvault.BookmarkFilter{
			OwnerID: strPtr("alice"),
			Tag:     strPtr("Go"),
		})
		require.NoError(t, err)

		require.Len(t, found, 2)
		assert.Equal(t, "https://example.com/a", found[0].URL)
		assert.Equal(t, "https://example.com/c", found[1].URL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		for i := range 5 {
			createTestBookmark(t, svc, "alice", fmt.Sprintf("https://example.com/%d", i), int64(i))
		}

		found, err := svc.FindBookmarks(context.Background(), linkvault.BookmarkFilter{
			OwnerID: strPtr("alice"),
			Limit:   2,
			Offset:  1,
		})
		require.NoError(t, err)

		require.Len(t, found, 2)
		assert.Equal(t, "https://example.com/1", found[0].URL)
		assert.Equal(t, "https://example.com/2", found[1].URL)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		for i := range 3 {
			createTestBookmark(t, svc, "alice", fmt.Sprintf("https://example.com/%d", i), int64(i))
		}

		found, err := svc.FindBookmarks(context.Background(), linkvault.BookmarkFilter{
			OwnerID: strPtr("alice"),
			Offset:  2,
		})
		require.NoError(t, err)

		require.Len(t, found, 1)
		assert.Equal(t, "https://example.com/2", found[0].URL)
	})

	t.Run("returns empty result when nothing matches", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))

		found, err := svc.FindBookmarks(context.Background(), linkvault.BookmarkFilter{OwnerID: strPtr("nobody")})
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestBookmarkService_UpdateBookmark(t *testing.T) {
	t.Parallel()

	t.Run("updates summary fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		ctx := context.Background()
		created := createTestBookmark(t, svc, "alice", "https://example.com/a", 1, "go")

		newSummary := []string{"Fresh bullet."}
		updated, err := svc.UpdateBookmark(ctx, "alice", created.ID, linkvault.BookmarkUpdate{
			Title:       strPtr("New title"),
			Summary:     &newSummary,
			ContentHash: strPtr("abc"),
		})
		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)

		found, err := svc.FindBookmarkByID(ctx, "alice", created.ID)
		require.NoError(t, err)
		assert.Equal(t, "New title", found.Title)
		assert.Equal(t, newSummary, found.Summary)
		assert.Equal(t, "abc", found.ContentHash)
		assert.Equal(t, []string{"go"}, found.Tags)
		assert.False(t, found.UpdatedAt.Before(found.CreatedAt))
	})

	t.Run("rejects update that empties the summary", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		created := createTestBookmark(t, svc, "alice", "https://example.com/a", 1)

		empty := []string{}
		_, err := svc.UpdateBookmark(context.Background(), "alice", created.ID, linkvault.BookmarkUpdate{Summary: &empty})
		require.Error(t, err)
		assert.Equal(t, linkvault.EINVALID, linkvault.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for another owner", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		created := createTestBookmark(t, svc, "alice", "https://example.com/a", 1)

		_, err := svc.UpdateBookmark(context.Background(), "bob", created.ID, linkvault.BookmarkUpdate{Title: strPtr("x")})
		require.Error(t, err)
		assert.Equal(t, linkvault.ENOTFOUND, linkvault.ErrorCode(err))
	})
}

func TestBookmarkService_DeleteBookmark(t *testing.T) {
	t.Parallel()

	t.Run("deletes bookmark", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		ctx := context.Background()
		created := createTestBookmark(t, svc, "alice", "https://example.com/a", 1)

		require.NoError(t, svc.DeleteBookmark(ctx, "alice", created.ID))

		_, err := svc.FindBookmarkByID(ctx, "alice", created.ID)
		assert.Equal(t, linkvault.ENOTFOUND, linkvault.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for another owner and keeps bookmark", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		ctx := context.Background()
		created := createTestBookmark(t, svc, "alice", "https://example.com/a", 1)

		err := svc.DeleteBookmark(ctx, "bob", created.ID)
		require.Error(t, err)
		assert.Equal(t, linkvault.ENOTFOUND, linkvault.ErrorCode(err))

		_, err = svc.FindBookmarkByID(ctx, "alice", created.ID)
		require.NoError(t, err)
	})
}

func TestBookmarkService_ReorderBookmarks(t *testing.T) {
	t.Parallel()

	t.Run("sets positions from list order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		ctx := context.Background()
		a := createTestBookmark(t, svc, "alice", "https://example.com/a", 100)
		b := createTestBookmark(t, svc, "alice", "https://example.com/b", 200)
		c := createTestBookmark(t, svc, "alice", "https://example.com/c", 300)

		require.NoError(t, svc.ReorderBookmarks(ctx, "alice", []string{c.ID, a.ID, b.ID}))

		found, err := svc.FindBookmarks(ctx, linkvault.BookmarkFilter{OwnerID: strPtr("alice")})
		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, []string{c.ID, a.ID, b.ID}, []string{found[0].ID, found[1].ID, found[2].ID})
		assert.Equal(t, int64(0), found[0].Position)
		assert.Equal(t, int64(2), found[2].Position)
	})

	t.Run("ignores bookmarks of other owners", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))
		ctx := context.Background()
		mine := createTestBookmark(t, svc, "alice", "https://example.com/a", 5)
		theirs := createTestBookmark(t, svc, "bob", "https://example.com/b", 7)

		require.NoError(t, svc.ReorderBookmarks(ctx, "alice", []string{theirs.ID, mine.ID}))

		found, err := svc.FindBookmarkByID(ctx, "bob", theirs.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), found.Position)

		found, err = svc.FindBookmarkByID(ctx, "alice", mine.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), found.Position)
	})

	t.Run("rejects nil list", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewBookmarkService(setupTestDB(t))

		err := svc.ReorderBookmarks(context.Background(), "alice", nil)
		assert.Equal(t, linkvault.EINVALID, linkvault.ErrorCode(err))
	})
}
