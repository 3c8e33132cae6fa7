// Package app contains the core application logic for the wordfreq CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/chriscorrea/wordfreq/internal/counter"
	"github.com/chriscorrea/wordfreq/internal/extract"
	"github.com/chriscorrea/wordfreq/internal/fetch"
	"github.com/chriscorrea/wordfreq/internal/rank"
	"github.com/chriscorrea/wordfreq/internal/report"
	"github.com/chriscorrea/wordfreq/internal/spinner"
)

// DefaultTop is the number of words shown when no limit is given.
const DefaultTop = 10

// Config holds all configuration options for the wordfreq application.
type Config struct {
	Source     string        // file path, URL, or "-" for stdin
	Top        int           // number of ranked words to show
	Reverse    bool          // least frequent first
	Search     string        // when set, report only this word's count
	ShowMax    bool          // include the maximum-count word
	Duration   bool          // include elapsed time
	Output     string        // write the report here instead of stdout
	Format     report.Format // table, text, json or markdown
	HTML       bool          // treat the source as HTML regardless of detection
	Selector   string        // CSS selector for HTML sources
	IncludeAll bool          // skip readability filtering for HTML sources
	FoldCase   bool
	Stem       bool
	Stats      bool // include word, character and token totals
	Quiet      bool // suppress spinner and warnings
	Debug      bool
}

// Normalizer returns the token normalization selected by the config.
func (c Config) Normalizer() counter.Normalizer {
	var norms []counter.Normalizer
	if c.FoldCase {
		norms = append(norms, counter.FoldCase)
	}
	if c.Stem {
		norms = append(norms, counter.Stem)
	}
	return counter.Chain(norms...)
}

// Validate checks the config for argument errors.
func (c Config) Validate() error {
	if c.Source == "" {
		return errors.New("no source provided")
	}
	if c.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d", c.Top)
	}
	return nil
}

// Timed runs fn and reports how long it took. It does not alter fn's result.
func Timed(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}

// Run loads the source, counts its words and builds the report.
//
// Processing Pipeline:
// 1. Load text from the source, extracting it from HTML when needed
// 2. Count word frequencies (or re-scan for a single searched word)
// 3. Rank, truncate and collect the requested extras
//
// When cfg.Duration is set the report carries the elapsed time of all three steps.
func Run(ctx context.Context, cfg Config) (report.Report, error) {
	if err := cfg.Validate(); err != nil {
		return report.Report{}, err
	}

	// progress is shown only on an interactive stderr
	var sp *spinner.Spinner
	if !cfg.Quiet && spinner.IsTerminal(os.Stderr) {
		sp = spinner.New(os.Stderr, "Loading source...")
		sp.Start(ctx)
		defer sp.Stop()
	}

	var rep report.Report
	elapsed, err := Timed(func() error {
		text, err := loadText(ctx, cfg)
		if err != nil {
			return err
		}
		if sp != nil {
			sp.SetMessage("Counting words...")
		}
		rep = buildReport(text, cfg)
		return nil
	})
	if err != nil {
		return report.Report{}, err
	}

	if cfg.Duration {
		rep.Duration = elapsed
		rep.Timed = true
	}

	slog.Debug("Run finished", "source", cfg.Source, "elapsed", elapsed)
	return rep, nil
}

// Execute runs the pipeline and renders the report to stdout, or to cfg.Output when set.
func Execute(ctx context.Context, cfg Config, stdout io.Writer) (err error) {
	rep, err := Run(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return report.Render(stdout, rep, cfg.Format)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", cfg.Output, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write output file %q: %w", cfg.Output, cerr)
		}
	}()

	if err := report.Render(f, rep, cfg.Format); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", cfg.Output, err)
	}

	slog.Debug("Report written", "path", cfg.Output)
	return nil
}

// loadText reads the source and reduces it to plain text.
func loadText(ctx context.Context, cfg Config) (string, error) {
	content, err := fetch.ReadAll(ctx, cfg.Source)
	if err != nil {
		return "", fmt.Errorf("failed to load source: %w", err)
	}

	if !isHTML(cfg) {
		return content, nil
	}

	var baseURL *url.URL
	if fetch.IsURL(cfg.Source) {
		baseURL, _ = url.Parse(cfg.Source) // nil on error is fine
	}

	text, err := extract.ToText(strings.NewReader(content), cfg.Selector, cfg.IncludeAll, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return text, nil
}

// isHTML decides whether a source goes through HTML extraction: when asked
// explicitly, for URLs, and for .html files. Content is never sniffed, so a
// text file that happens to start with a tag is counted word for word.
func isHTML(cfg Config) bool {
	return cfg.HTML || cfg.Selector != "" || fetch.IsURL(cfg.Source) || extract.IsHTMLPath(cfg.Source)
}

// buildReport counts and ranks text according to cfg.
func buildReport(text string, cfg Config) report.Report {
	norm := cfg.Normalizer()
	var rep report.Report

	// a search reports only the searched word, found by re-scanning the text
	if search := strings.TrimSpace(cfg.Search); search != "" {
		rep.Search = &report.SearchResult{
			Word:  search,
			Count: rank.Search(text, search, norm),
		}
		if cfg.Stats {
			rep.Stats = computeStats(text, counter.CountWith(text, norm), cfg.Quiet)
		}
		return rep
	}

	freqs := counter.CountWith(text, norm)

	// ascending order reversed puts the most frequent words first
	rep.Entries = rank.TopN(rank.SortedAscending(freqs), cfg.Top, !cfg.Reverse)

	if cfg.ShowMax {
		top, err := rank.Max(freqs)
		if errors.Is(err, rank.ErrNoData) {
			slog.Debug("No maximum for empty input", "source", cfg.Source)
			rep.MaxMissing = true
		} else {
			rep.Max = &top
		}
	}

	if cfg.Stats {
		rep.Stats = computeStats(text, freqs, cfg.Quiet)
	}

	return rep
}

// computeStats totals the text with the word, character and token counters.
// Token counting needs the tiktoken encoding; when a counter cannot be loaded
// its total is left out with a warning.
func computeStats(text string, freqs counter.Frequencies, quiet bool) *report.Stats {
	stats := &report.Stats{Unique: freqs.Unique()}

	for _, method := range []counter.CountingMethod{counter.Words, counter.Characters, counter.Tokens} {
		c, err := counter.NewCounter(method)
		if err != nil {
			slog.Debug("Counter unavailable", "method", method, "error", err)
			if !quiet {
				fmt.Fprintf(os.Stderr, "Warning: %s count unavailable: %v\n", method, err)
			}
			continue
		}

		n := c.Count(text)
		switch method {
		case counter.Words:
			stats.Words = n
		case counter.Characters:
			stats.Characters = n
		case counter.Tokens:
			stats.Tokens = n
		}
		slog.Debug("Total counted", "counter", c.Name(), "total", n)
	}

	return stats
}
