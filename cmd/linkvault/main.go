package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/fwojciec/linkvault"
	"github.com/fwojciec/linkvault/goquery"
	"github.com/fwojciec/linkvault/htmltomarkdown"
	lvhttp "github.com/fwojciec/linkvault/http"
	"github.com/fwojciec/linkvault/readability"
	"github.com/fwojciec/linkvault/reader"
	"github.com/fwojciec/linkvault/rod"
	lvslog "github.com/fwojciec/linkvault/slog"
	"github.com/fwojciec/linkvault/sqlite"
	"github.com/fwojciec/linkvault/summarize"
	"github.com/fwojciec/linkvault/trafilatura"
	"github.com/fwojciec/linkvault/vault"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overridden by --db or LINKVAULT_DB.
	DBPath string

	// Stdin is read by commands given "-" or no file.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	BookmarkService linkvault.BookmarkService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  m.Stdin,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkvault"),
		kong.Description("Save links with a short summary of the page."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'linkvault --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger
	deps.Owner = cli.Owner

	// summarize works on a file and needs no storage.
	if cmd == "summarize" {
		return kongCtx.Run(deps)
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LINKVAULT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.BookmarkService = sqlite.NewBookmarkService(m.DB)
	deps.Bookmarks = m.BookmarkService

	if cmd == "add" || cmd == "refresh" || cmd == "import" {
		pageReader, closeReader, err := newPageReader(cli, logger)
		if err != nil {
			return err
		}
		defer closeReader()

		deps.Vault = &vault.Vault{
			Reader:     lvslog.NewLoggingPageReader(pageReader, logger),
			Summarizer: lvslog.NewLoggingSummarizer(summarize.New(summarize.DefaultConfig()), logger),
			Bookmarks:  m.BookmarkService,
			Logf: func(format string, args ...any) {
				fmt.Fprintf(stderr, format+"\n", args...)
			},
		}
		deps.Importer = &vault.Importer{
			Vault:        deps.Vault,
			Limiter:      vault.NewDomainLimiter(1.0),
			Concurrency:  cli.Import.Concurrency,
			MissingTitle: summarize.DefaultMissingTitle,
		}
	}

	return kongCtx.Run(deps)
}

// newPageReader builds the PageReader selected by --reader. The returned
// func releases the reader's resources.
func newPageReader(cli *CLI, logger *slog.Logger) (linkvault.PageReader, func() error, error) {
	noop := func() error { return nil }

	maxBytes, err := humanize.ParseBytes(cli.MaxPageSize)
	if err != nil {
		return nil, nil, linkvault.Errorf(linkvault.EINVALID, "invalid --max-page-size %q: %v", cli.MaxPageSize, err)
	}
	httpOpts := []lvhttp.Option{
		lvhttp.WithTimeout(cli.Timeout),
		lvhttp.WithMaxBodySize(int64(maxBytes)),
	}

	switch cli.Reader {
	case "remote":
		return lvhttp.NewReaderService(cli.ReaderURL, httpOpts...), noop, nil
	case "http":
		fetcher := lvhttp.NewFetcher(httpOpts...)
		return newLocalReader(lvslog.NewLoggingFetcher(fetcher, logger)), fetcher.Close, nil
	case "browser":
		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return newLocalReader(lvslog.NewLoggingFetcher(fetcher, logger)), fetcher.Close, nil
	default:
		return nil, nil, linkvault.Errorf(linkvault.EINVALID, "unknown reader %q", cli.Reader)
	}
}

func newLocalReader(fetcher linkvault.Fetcher) *reader.Reader {
	return &reader.Reader{
		Fetcher: fetcher,
		Extractors: []linkvault.Extractor{
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
		},
		Converter: htmltomarkdown.NewConverter(),
		Favicons:  goquery.NewFaviconFinder(),
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, nil))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "linkvault.db"
	}
	dir := filepath.Join(home, ".linkvault")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "linkvault.db")
}
