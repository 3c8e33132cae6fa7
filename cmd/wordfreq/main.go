package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/wordfreq/internal/app"
	"github.com/chriscorrea/wordfreq/internal/report"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	top, _ := cmd.Flags().GetInt("top")
	reverse, _ := cmd.Flags().GetBool("reverse")
	search, _ := cmd.Flags().GetString("search")
	showMax, _ := cmd.Flags().GetBool("max")
	duration, _ := cmd.Flags().GetBool("duration")
	output, _ := cmd.Flags().GetString("output")
	textFlag, _ := cmd.Flags().GetBool("text")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	mdFlag, _ := cmd.Flags().GetBool("md")
	html, _ := cmd.Flags().GetBool("html")
	selector, _ := cmd.Flags().GetString("selector")
	includeAll, _ := cmd.Flags().GetBool("include-all")
	ignoreCase, _ := cmd.Flags().GetBool("ignore-case")
	stem, _ := cmd.Flags().GetBool("stem")
	stats, _ := cmd.Flags().GetBool("stats")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	if top < 0 {
		return app.Config{}, fmt.Errorf("--top must not be negative, got %d", top)
	}

	// determine output format
	var format report.Format
	switch {
	case textFlag:
		format = report.Text
	case jsonFlag:
		format = report.JSON
	case mdFlag:
		format = report.Markdown
	default:
		format = report.Table
	}

	return app.Config{
		Source:     args[0],
		Top:        top,
		Reverse:    reverse,
		Search:     search,
		ShowMax:    showMax,
		Duration:   duration,
		Output:     output,
		Format:     format,
		HTML:       html,
		Selector:   selector,
		IncludeAll: includeAll,
		FoldCase:   ignoreCase,
		Stem:       stem,
		Stats:      stats,
		Quiet:      quiet,
		Debug:      debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	level := slog.LevelError
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "wordfreq <source>",
	Short: "Count how often each word appears in a text",
	Long: `Wordfreq reads a text and reports its most (or least) frequent words.
Words are runs of non-whitespace characters compared exactly, so "Two" and "two." are different words.
The source may be a local file, "-" for standard input, or a URL; HTML is reduced to its readable text.

Examples:
  wordfreq book.txt
  wordfreq book.txt --top 5 --reverse
  wordfreq book.txt --search whale
  cat book.txt | wordfreq - --max --duration`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		setupLogger(config.Debug)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := app.Execute(ctx, config, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("wordfreq failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.Flags().IntP("top", "t", app.DefaultTop, "Limit results to the top N words")
	rootCmd.Flags().BoolP("reverse", "r", false, "Show the least frequent words first")
	rootCmd.Flags().StringP("search", "s", "", "Report only the count of this word")
	rootCmd.Flags().BoolP("max", "m", false, "Show the most frequent word")
	rootCmd.Flags().BoolP("duration", "d", false, "Show how long counting took")
	rootCmd.Flags().StringP("output", "o", "", "Write results to a file instead of standard output")

	// output format flags
	rootCmd.Flags().Bool("text", false, "Output tab-separated word and count lines")
	rootCmd.Flags().Bool("json", false, "Output in JSON format")
	rootCmd.Flags().Bool("md", false, "Output a Markdown table")
	rootCmd.MarkFlagsMutuallyExclusive("text", "json", "md")

	// HTML handling
	rootCmd.Flags().Bool("html", false, "Treat the source as HTML (detected automatically otherwise)")
	rootCmd.Flags().String("selector", "", "CSS selector limiting which HTML elements are counted")
	rootCmd.Flags().BoolP("include-all", "i", false, "Count all HTML text without readability filtering")

	// word normalization
	rootCmd.Flags().Bool("ignore-case", false, "Fold case so \"Two\" and \"two\" are the same word")
	rootCmd.Flags().Bool("stem", false, "Group words by their English stem")

	rootCmd.Flags().Bool("stats", false, "Show word, character and token totals")

	// other flags
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress progress and warning messages")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
