// Package cmd provides CLI commands for bibtidy.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bibtidy/pipeline"
	"github.com/lehigh-university-libraries/bibtidy/report"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "bibtidy <input> <output>",
	Short: "Clean and format BibTeX bibliography files",
	Long: `bibtidy cleans BibTeX bibliography files.

By default it title-cases journal names and entry titles, removes fields
that rarely belong in a submitted bibliography (doi, url, abstract, ...)
and strips blank lines. Title-cased values are written in double braces so
BibTeX styles keep the capitalization.

Examples:
  # Full cleaning (journal and entry titles + remove fields)
  bibtidy ref.bib ref_cleaned.bib

  # Only fix journal titles
  bibtidy ref.bib ref_cleaned.bib --journals-only

  # Only remove fields
  bibtidy ref.bib ref_cleaned.bib --remove-fields-only

  # Custom fields to remove
  bibtidy ref.bib ref_cleaned.bib --fields doi,url,abstract

  # Also print author and editor surnames in capitals
  bibtidy ref.bib ref_cleaned.bib --uppercase-surnames`,
	Args:          cobra.ExactArgs(2),
	RunE:          runClean,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		report.NewPrinter(os.Stderr, report.ColorEnabled(os.Stderr)).Error(err.Error())
		if errors.Is(err, pipeline.ErrConflictingModes) {
			fmt.Fprintln(os.Stderr, "Use either --journals-only or --remove-fields-only, or neither for full cleaning.")
		}
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}
