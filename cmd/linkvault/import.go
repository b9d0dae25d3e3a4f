package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/linkvault"
	"github.com/fwojciec/linkvault/goquery"
	"github.com/fwojciec/linkvault/vault"
	"github.com/fwojciec/linkvault/xbel"
)

// maxProgressURL is the width URLs are truncated to in progress lines.
const maxProgressURL = 60

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	data, err := readInput(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read %s: %v\n", c.File, err)
		return err
	}

	links, err := ParseLinks(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkvault.ErrorMessage(err))
		return err
	}

	if extra := linkvault.ParseTags(c.Tags); len(extra) > 0 {
		for i := range links {
			links[i].Tags = linkvault.ParseTags(strings.Join(append(links[i].Tags, extra...), ","))
		}
	}

	if c.Concurrency > 0 {
		deps.Importer.Concurrency = c.Concurrency
	}

	progress := func(event vault.ProgressEvent) {
		switch event.Type {
		case vault.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d new links\n", event.Total)
		case vault.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, vault.TruncateURL(event.URL, maxProgressURL))
		case vault.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", vault.TruncateURL(event.URL, maxProgressURL), describeError(event.Error))
		}
	}

	result, err := deps.Importer.Import(deps.Ctx, deps.Owner, links, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error importing: %s\n", describeError(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d bookmarks (%d skipped, %d failed)\n",
		result.Added, result.Skipped, result.Failed)
	return nil
}

// ParseLinks reads links from a Netscape bookmark file, an XBEL document,
// or a plain list with one URL per line.
func ParseLinks(data []byte) ([]linkvault.Link, error) {
	switch {
	case goquery.IsBookmarkFile(data):
		return goquery.ParseBookmarkFile(bytes.NewReader(data))
	case xbel.IsXBEL(data):
		return xbel.Decode(bytes.NewReader(data))
	default:
		return linkvault.ParseLinkList(bytes.NewReader(data))
	}
}

// readInput reads the named file, or stdin for "" and "-".
func readInput(deps *Dependencies, name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(deps.Stdin)
	}
	return os.ReadFile(name)
}

// describeError prefers the application message and falls back to the raw
// error for failures outside the application's error codes.
func describeError(err error) string {
	if linkvault.ErrorCode(err) == linkvault.EINTERNAL {
		return err.Error()
	}
	return linkvault.ErrorMessage(err)
}
