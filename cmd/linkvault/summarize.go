package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/linkvault"
	lvslog "github.com/fwojciec/linkvault/slog"
	"github.com/fwojciec/linkvault/summarize"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	data, err := readInput(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read input: %v\n", err)
		return err
	}

	var summarizer linkvault.Summarizer = summarize.New(c.config())
	if deps.Logger != nil {
		summarizer = lvslog.NewLoggingSummarizer(summarizer, deps.Logger)
	}
	summary := summarizer.Summarize(string(data))

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Fprintln(deps.Stdout, summary.Title)
	fmt.Fprintln(deps.Stdout)
	printBullets(deps, summary.Bullets)
	return nil
}

// config maps the threshold flags onto a summarize.Config. Unset flags
// keep their defaults.
func (c *SummarizeCmd) config() summarize.Config {
	cfg := summarize.DefaultConfig()
	if c.MaxBullets > 0 {
		cfg.MaxBullets = c.MaxBullets
	}
	if c.Window > 0 {
		cfg.WindowRadius = c.Window
	}
	if c.MinLength > 0 {
		cfg.MinBulletLength = c.MinLength
	}
	if c.MinAlpha > 0 {
		cfg.MinAlphaRatio = c.MinAlpha
	}
	return cfg
}
