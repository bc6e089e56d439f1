package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/podume/resume-extractor/internal/observability"
	"github.com/podume/resume-extractor/internal/pipeline"
	"github.com/podume/resume-extractor/internal/types"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Structure pasted or pre-extracted resume text",
	Long:  "Text is the manual fallback for documents the PDF decoder cannot read: it cleans, structures, and scores already-flat resume text from a file or stdin.",
	RunE:  runText,
}

var (
	textInputFile  string
	textOutputFile string
	textHTML       bool
	textVerbose    bool
)

func init() {
	textCmd.Flags().StringVarP(&textInputFile, "in", "i", "", "Path to text file (default: stdin)")
	textCmd.Flags().StringVarP(&textOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	textCmd.Flags().BoolVar(&textHTML, "html", false, "Treat the input as a saved HTML page")
	textCmd.Flags().BoolVarP(&textVerbose, "verbose", "v", false, "Print formatted summaries")

	rootCmd.AddCommand(textCmd)
}

func runText(_ *cobra.Command, _ []string) error {
	var (
		content []byte
		err     error
	)
	if textInputFile == "" {
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		content, err = os.ReadFile(textInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
	}

	var result *types.ExtractionResult
	if textHTML {
		result, err = pipeline.RunHTML(string(content))
	} else {
		result, err = pipeline.RunText(string(content))
	}
	if err != nil {
		return err
	}

	if textVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintStructuredResume(result.Structured)
		printer.PrintExtractionSummary(result)
	}
	return writeResultJSON(result, textOutputFile)
}
