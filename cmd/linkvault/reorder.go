package main

import (
	"fmt"

	"github.com/fwojciec/linkvault"
)

// Run executes the reorder command.
func (c *ReorderCmd) Run(deps *Dependencies) error {
	if err := deps.Bookmarks.ReorderBookmarks(deps.Ctx, deps.Owner, c.IDs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkvault.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Reordered %d bookmarks\n", len(c.IDs))
	return nil
}
