package main

import (
	"fmt"

	"github.com/fwojciec/linkvault"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return linkvault.Errorf(linkvault.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Bookmarks.DeleteBookmark(deps.Ctx, deps.Owner, c.ID); err != nil {
		if linkvault.ErrorCode(err) == linkvault.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: bookmark %q not found. Use 'linkvault list' to see your bookmarks.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkvault.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted bookmark %s\n", c.ID)
	return nil
}
