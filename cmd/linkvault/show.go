package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/linkvault"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	b, err := deps.Bookmarks.FindBookmarkByID(deps.Ctx, deps.Owner, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkvault.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, b.Title)
	fmt.Fprintln(deps.Stdout, b.URL)
	if len(b.Tags) > 0 {
		fmt.Fprintf(deps.Stdout, "Tags: %s\n", strings.Join(b.Tags, ", "))
	}
	if !b.CreatedAt.IsZero() {
		fmt.Fprintf(deps.Stdout, "Added %s\n", humanize.Time(b.CreatedAt))
	}
	fmt.Fprintln(deps.Stdout)
	printBullets(deps, b.Summary)
	return nil
}
