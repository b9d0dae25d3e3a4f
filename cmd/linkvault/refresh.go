package main

import (
	"fmt"

	"github.com/fwojciec/linkvault"
)

// Run executes the refresh command.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	b, changed, err := deps.Vault.RefreshBookmark(deps.Ctx, deps.Owner, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkvault.ErrorMessage(err))
		return err
	}

	if !changed {
		fmt.Fprintf(deps.Stdout, "Unchanged %q\n", b.Title)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Updated %q\n", b.Title)
	printBullets(deps, b.Summary)
	return nil
}
