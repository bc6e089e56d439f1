package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/podume/resume-extractor/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Extract multiple resume PDFs concurrently",
	Long:  "Batch runs the extraction pipeline over many PDFs at once and writes one JSON file per input into the output directory. A file that fails does not stop the others.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var (
	batchOutputDir   string
	batchConcurrency int
	batchTolerance   float64
)

func init() {
	batchCmd.Flags().StringVarP(&batchOutputDir, "out-dir", "o", ".", "Directory for output JSON files")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 4, "Number of files to process in parallel")
	batchCmd.Flags().Float64Var(&batchTolerance, "tolerance", 0, "Vertical line-merge tolerance in points (0 selects the default)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	if batchConcurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", batchConcurrency)
	}
	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(batchConcurrency)

	var (
		mu       sync.Mutex
		failures []string
	)

	for _, inputFile := range args {
		g.Go(func() error {
			if err := extractOne(ctx, inputFile); err != nil {
				// Record the failure but keep the rest of the batch running.
				fmt.Fprintf(os.Stderr, "%s: %v\n", inputFile, err)
				mu.Lock()
				failures = append(failures, inputFile)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "processed %d files, %d failed\n", len(args), len(failures))
	if len(failures) > 0 {
		return fmt.Errorf("%d of %d files failed", len(failures), len(args))
	}
	return nil
}

func extractOne(ctx context.Context, inputFile string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	result, err := pipeline.Run(ctx, data, &pipeline.Options{LineTolerance: batchTolerance})
	if err != nil {
		return err
	}

	base := filepath.Base(inputFile)
	outputFile := filepath.Join(batchOutputDir, base[:len(base)-len(filepath.Ext(base))]+".json")
	return writeResultJSON(result, outputFile)
}
