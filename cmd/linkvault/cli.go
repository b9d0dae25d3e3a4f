package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/linkvault"
	"github.com/fwojciec/linkvault/vault"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Stdin     io.Reader
	Logger    *slog.Logger
	Owner     string
	Bookmarks linkvault.BookmarkService
	Vault     *vault.Vault
	Importer  *vault.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB          string        `name:"db" env:"LINKVAULT_DB" help:"Database path (default ~/.linkvault/linkvault.db)"`
	Owner       string        `env:"LINKVAULT_OWNER" default:"local" help:"Owner the bookmarks belong to"`
	Verbose     bool          `short:"v" help:"Log fetches and summaries to stderr"`
	Reader      string        `env:"LINKVAULT_READER" enum:"remote,http,browser" default:"remote" help:"How pages are read: remote reader service, plain HTTP, or headless browser"`
	ReaderURL   string        `name:"reader-url" env:"LINKVAULT_READER_URL" default:"https://r.jina.ai/" help:"Remote reader service URL"`
	Timeout     time.Duration `default:"10s" help:"Page fetch timeout"`
	MaxPageSize string        `name:"max-page-size" default:"5MB" help:"Largest page body read, e.g. 512KB or 5MB"`

	Add       AddCmd       `cmd:"" help:"Bookmark a URL and summarize the page"`
	List      ListCmd      `cmd:"" help:"List bookmarks"`
	Show      ShowCmd      `cmd:"" help:"Show a bookmark with its summary"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a bookmark"`
	Reorder   ReorderCmd   `cmd:"" help:"Set bookmark order"`
	Refresh   RefreshCmd   `cmd:"" help:"Re-read a bookmarked page and update its summary"`
	Import    ImportCmd    `cmd:"" help:"Import bookmarks from a file"`
	Export    ExportCmd    `cmd:"" help:"Export bookmarks"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize page text from a file or stdin without saving"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	URL  string `arg:"" help:"URL to bookmark"`
	Tags string `short:"t" help:"Comma-separated tags"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Tag string `help:"Only bookmarks with this tag"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Bookmark ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Bookmark ID"`
	Force bool   `help:"Confirm deletion"`
}

// ReorderCmd is the "reorder" subcommand.
type ReorderCmd struct {
	IDs []string `arg:"" name:"id" help:"Bookmark IDs in the desired order"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct {
	ID string `arg:"" help:"Bookmark ID"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File        string `arg:"" help:"Netscape bookmark HTML, XBEL, or one URL per line; - reads stdin"`
	Tags        string `short:"t" help:"Comma-separated tags added to every imported link"`
	Concurrency int    `short:"c" default:"4" help:"Pages read at once"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format string `short:"f" enum:"markdown,json,xbel,dir" default:"markdown" help:"Output format: markdown, json, xbel, or dir (one markdown file per bookmark)"`
	Tag    string `help:"Only bookmarks with this tag"`
	Out    string `short:"o" help:"Output file, or directory for --format=dir (default stdout)"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	File       string  `arg:"" optional:"" help:"Page text file; stdin when omitted or -"`
	MaxBullets int     `name:"max-bullets" help:"Maximum number of bullets (default 7)"`
	Window     int     `help:"Lines kept on each side of the longest line (default 10)"`
	MinLength  int     `name:"min-length" help:"Length in characters a bullet must exceed (default 25)"`
	MinAlpha   float64 `name:"min-alpha" help:"Letter ratio a line must exceed (default 0.5)"`
	JSON       bool    `help:"Print the summary as JSON"`
}
