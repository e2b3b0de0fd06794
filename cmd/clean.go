package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bibtidy/pipeline"
	"github.com/lehigh-university-libraries/bibtidy/report"
)

var (
	cleanOpts  passOptions
	reportPath string
	quiet      bool
)

func init() {
	addPassFlags(rootCmd, &cleanOpts)
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write a JSON run report to this file")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
}

func runClean(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := args[1]

	cfg, err := cleanOpts.config()
	if err != nil {
		return err
	}

	printer := newPrinter(cmd)
	printer.SetQuiet(quiet)
	printer.Header(input, output)
	if cfg.Mode() != pipeline.ModeJournalsOnly {
		printer.Fields(cfg.RemoveFields(), cfg.CustomFields())
	}

	res, err := pipeline.CleanFile(input, output, cfg)
	if err != nil {
		return err
	}

	printer.Passes(res)

	if reportPath != "" {
		if err := report.WriteJSON(reportPath, res, input, output); err != nil {
			return err
		}
	}

	printer.Summary(res, output, cfg.DryRun)
	printer.Caution()
	return nil
}

// newPrinter writes to the command's output, with color only on a terminal.
func newPrinter(cmd *cobra.Command) *report.Printer {
	out := cmd.OutOrStdout()
	color := false
	if f, ok := out.(*os.File); ok {
		color = report.ColorEnabled(f)
	}
	return report.NewPrinter(out, color)
}

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bibtidy version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "bibtidy", version)
	},
}
