package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/linkvault"
	main "github.com/fwojciec/linkvault/cmd/linkvault"
	"github.com/fwojciec/linkvault/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		deleteCalled := false
		bookmarks := &mock.BookmarkService{
			DeleteBookmarkFn: func(_ context.Context, _, _ string) error {
				deleteCalled = true
				return nil
			},
		}

		deps, _, stderr := newDeps()
		deps.Bookmarks = bookmarks

		err := (&main.DeleteCmd{ID: "bm-1"}).Run(deps)

		assert.Equal(t, linkvault.EINVALID, linkvault.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
		assert.False(t, deleteCalled)
	})

	t.Run("deletes owned bookmark", func(t *testing.T) {
		t.Parallel()

		var gotOwner, gotID string
		bookmarks := &mock.BookmarkService{
			DeleteBookmarkFn: func(_ context.Context, ownerID, id string) error {
				gotOwner, gotID = ownerID, id
				return nil
			},
		}

		deps, stdout, _ := newDeps()
		deps.Bookmarks = bookmarks

		err := (&main.DeleteCmd{ID: "bm-1", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "alice", gotOwner)
		assert.Equal(t, "bm-1", gotID)
		assert.Contains(t, stdout.String(), "Deleted bookmark bm-1")
	})

	t.Run("hints at list when not found", func(t *testing.T) {
		t.Parallel()

		bookmarks := &mock.BookmarkService{
			DeleteBookmarkFn: func(_ context.Context, _, _ string) error {
				return linkvault.Errorf(linkvault.ENOTFOUND, "bookmark not found")
			},
		}

		deps, _, stderr := newDeps()
		deps.Bookmarks = bookmarks

		err := (&main.DeleteCmd{ID: "bm-9", Force: true}).Run(deps)

		assert.Equal(t, linkvault.ENOTFOUND, linkvault.ErrorCode(err))
		assert.Contains(t, stderr.String(), "linkvault list")
	})
}
