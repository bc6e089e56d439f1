package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/podume/resume-extractor/internal/fetch"
	"github.com/podume/resume-extractor/internal/ingestion"
	"github.com/podume/resume-extractor/internal/observability"
	"github.com/podume/resume-extractor/internal/pipeline"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Extract a resume from a public profile URL",
	Long:  "Fetch downloads an online resume or profile page, pulls the main content out of the HTML, and structures it like pasted text.",
	RunE:  runFetch,
}

var (
	fetchURL        string
	fetchOutputFile string
	fetchTimeout    time.Duration
	fetchVerbose    bool
)

func init() {
	fetchCmd.Flags().StringVarP(&fetchURL, "url", "u", "", "Profile or resume page URL (required)")
	fetchCmd.Flags().StringVarP(&fetchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 30*time.Second, "HTTP fetch timeout")
	fetchCmd.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "Print formatted summaries")

	_ = fetchCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	opts := fetch.DefaultOptions()
	opts.Timeout = fetchTimeout

	page, err := fetch.URL(ctx, fetchURL, opts)
	if err != nil {
		return err
	}

	text, err := fetch.ExtractMainText(page.HTML, fetch.ProfileContentSelectors())
	if err != nil {
		return fmt.Errorf("failed to extract page content: %w", err)
	}

	result, err := pipeline.RunText(text)
	if err != nil {
		return err
	}

	if fetchVerbose {
		meta := ingestion.NewMetadata(text, ingestion.SourceURL)
		fmt.Fprintf(os.Stderr, "fetched %d characters, %d lines from %s\n", meta.CharCount, meta.LineCount, fetchURL)

		printer := observability.NewPrinter(os.Stderr)
		printer.PrintStructuredResume(result.Structured)
		printer.PrintExtractionSummary(result)
	}
	return writeResultJSON(result, fetchOutputFile)
}
