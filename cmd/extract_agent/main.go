// Package main provides the entry point for the resume extraction agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "extract_agent",
	Short: "Resume extraction pipeline",
	Long:  "Extract agent turns uploaded resume files into structured, scored resume JSON: byte-signature validation, PDF text extraction with positional line reconstruction, heuristic section structuring, and confidence scoring.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
