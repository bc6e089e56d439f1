package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/podume/resume-extractor/internal/config"
	"github.com/podume/resume-extractor/internal/detect"
	"github.com/podume/resume-extractor/internal/observability"
	"github.com/podume/resume-extractor/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured resume JSON from a PDF file",
	Long:  "Extract reads a resume PDF, validates its byte signature, extracts and reconstructs its text, structures it into sections, and writes the scored extraction result as JSON.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractConfigFile string
	extractTolerance  float64
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to resume PDF (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().StringVar(&extractConfigFile, "config", "", "Path to JSON config file")
	extractCmd.Flags().Float64Var(&extractTolerance, "tolerance", 0, "Vertical line-merge tolerance in points (0 selects the default)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print formatted summaries and progress")

	_ = extractCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	tolerance, verbose, err := resolveExtractSettings()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	printer := observability.NewPrinter(os.Stderr)
	opts := &pipeline.Options{LineTolerance: tolerance}
	if verbose {
		printer.PrintDetectedType(detect.Classify(data), len(data))
		opts.OnProgress = printer.PrintProgress
	}

	result, err := pipeline.Run(context.Background(), data, opts)
	if err != nil {
		return err
	}

	if verbose {
		printer.PrintStructuredResume(result.Structured)
		printer.PrintExtractionSummary(result)
	}
	return writeResultJSON(result, extractOutputFile)
}

// resolveExtractSettings merges the config file (if given) with flag
// overrides. Flags win.
func resolveExtractSettings() (tolerance float64, verbose bool, err error) {
	if extractConfigFile != "" {
		cfg, err := config.LoadConfig(extractConfigFile)
		if err != nil {
			return 0, false, err
		}
		if err := cfg.Validate(); err != nil {
			return 0, false, err
		}
		tolerance = cfg.LineTolerance
		verbose = cfg.Verbose
	}
	if extractTolerance > 0 {
		tolerance = extractTolerance
	}
	if extractVerbose {
		verbose = true
	}
	return tolerance, verbose, nil
}

// writeResultJSON writes a result as indented JSON to a file or stdout.
func writeResultJSON(result any, outputFile string) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if outputFile == "" {
		_, err = os.Stdout.Write(jsonBytes)
		return err
	}
	if err := os.WriteFile(outputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
