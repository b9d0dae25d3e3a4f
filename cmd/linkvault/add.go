package main

import (
	"fmt"

	"github.com/fwojciec/linkvault"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	b, err := deps.Vault.AddBookmark(deps.Ctx, deps.Owner, c.URL, linkvault.ParseTags(c.Tags))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkvault.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %q (%s)\n", b.Title, b.ID)
	printBullets(deps, b.Summary)
	return nil
}

func printBullets(deps *Dependencies, bullets []string) {
	for _, bullet := range bullets {
		fmt.Fprintf(deps.Stdout, "  - %s\n", bullet)
	}
}
