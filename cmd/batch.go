package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lehigh-university-libraries/bibtidy/pipeline"
)

var (
	batchOpts    passOptions
	batchPattern string
	batchJobs    int
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir> <outdir>",
	Short: "Clean every bibliography under a directory",
	Long: `Clean every file under <dir> that matches --pattern and write the
results to the same relative path under <outdir>.

Each file is cleaned independently with the same flags as the main command;
files are processed in parallel. The first failure stops the batch.

Examples:
  bibtidy batch papers/ cleaned/
  bibtidy batch papers/ cleaned/ --pattern "**/refs*.bib" --uppercase-surnames`,
	Args: cobra.ExactArgs(2),
	RunE: runBatch,
}

func init() {
	addPassFlags(batchCmd, &batchOpts)
	batchCmd.Flags().StringVar(&batchPattern, "pattern", "**/*.bib", "Glob pattern (relative to <dir>) selecting files")
	batchCmd.Flags().IntVarP(&batchJobs, "jobs", "j", runtime.NumCPU(), "Number of files cleaned in parallel")
}

func runBatch(cmd *cobra.Command, args []string) error {
	root := args[0]
	outRoot := args[1]

	cfg, err := batchOpts.config()
	if err != nil {
		return err
	}
	if batchJobs < 1 {
		return errors.New("--jobs must be at least 1")
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving input directory: %w", err)
	}
	outAbs, err := filepath.Abs(outRoot)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}
	if rootAbs == outAbs {
		return errors.New("output directory must differ from input directory")
	}

	matches, err := doublestar.Glob(os.DirFS(root), batchPattern, doublestar.WithFilesOnly())
	if err != nil {
		return fmt.Errorf("matching %q: %w", batchPattern, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no files under %s match %q", root, batchPattern)
	}
	sort.Strings(matches)

	results := make([]*pipeline.Result, len(matches))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(batchJobs)

	for i, rel := range matches {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			in := filepath.Join(root, filepath.FromSlash(rel))
			out := filepath.Join(outRoot, filepath.FromSlash(rel))
			if !cfg.DryRun {
				if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
					return fmt.Errorf("creating output directory: %w", err)
				}
			}

			res, err := pipeline.CleanFile(in, out, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", rel, err)
			}
			slog.Debug("cleaned file", "input", in, "output", out, "bytes_saved", res.Reduction())
			results[i] = res
			return nil
		})
	}
	waitErr := g.Wait()

	printer := newPrinter(cmd)
	total := &pipeline.Result{}
	cleaned := 0
	for i, res := range results {
		if res == nil {
			continue
		}
		printer.BatchLine(matches[i], res)
		total.InputBytes += res.InputBytes
		total.OutputBytes += res.OutputBytes
		cleaned++
	}
	if waitErr != nil {
		return waitErr
	}

	printer.Summary(total, fmt.Sprintf("%s (%d files)", outRoot, cleaned), cfg.DryRun)
	printer.Caution()
	return nil
}
