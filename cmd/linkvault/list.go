package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/linkvault"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := linkvault.BookmarkFilter{OwnerID: &deps.Owner}
	if c.Tag != "" {
		filter.Tag = &c.Tag
	}

	bookmarks, err := deps.Bookmarks.FindBookmarks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkvault.ErrorMessage(err))
		return err
	}

	if len(bookmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmarks found. Use 'linkvault add' to create one.")
		return nil
	}

	for _, b := range bookmarks {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s", b.ID, b.Title, b.URL)
		if len(b.Tags) > 0 {
			fmt.Fprintf(deps.Stdout, "  [%s]", strings.Join(b.Tags, ", "))
		}
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}
