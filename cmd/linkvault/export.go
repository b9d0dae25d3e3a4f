package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/linkvault"
	"github.com/fwojciec/linkvault/fs"
	"github.com/fwojciec/linkvault/xbel"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := linkvault.BookmarkFilter{OwnerID: &deps.Owner}
	if c.Tag != "" {
		filter.Tag = &c.Tag
	}

	bookmarks, err := deps.Bookmarks.FindBookmarks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkvault.ErrorMessage(err))
		return err
	}

	if c.Format == "dir" {
		return c.exportDir(deps, bookmarks)
	}

	w := deps.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()
		w = f
	}

	if err := c.encode(w, bookmarks); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func (c *ExportCmd) encode(w io.Writer, bookmarks []*linkvault.Bookmark) error {
	switch c.Format {
	case "json":
		if bookmarks == nil {
			bookmarks = []*linkvault.Bookmark{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(bookmarks)
	case "xbel":
		return xbel.Encode(w, "linkvault", bookmarks)
	default:
		out := linkvault.FormatBookmarks(bookmarks)
		if out == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, out)
		return err
	}
}

func (c *ExportCmd) exportDir(deps *Dependencies, bookmarks []*linkvault.Bookmark) error {
	if c.Out == "" {
		err := linkvault.Errorf(linkvault.EINVALID, "--out is required for --format=dir")
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkvault.ErrorMessage(err))
		return err
	}

	out := filepath.Clean(c.Out)
	store := fs.NewBookmarkStore(filepath.Dir(out), filepath.Base(out))
	for _, b := range bookmarks {
		if err := store.Save(deps.Ctx, b); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", describeError(err))
			return err
		}
	}
	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d bookmarks to %s\n", len(bookmarks), out)
	return nil
}
