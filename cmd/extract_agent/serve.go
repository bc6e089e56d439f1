package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/podume/resume-extractor/internal/config"
	"github.com/podume/resume-extractor/internal/server"
	"github.com/podume/resume-extractor/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the extraction REST API server",
	Long:  "Start an HTTP server exposing the extraction pipeline: resume uploads, pasted-text structuring, and stored extraction records when DATABASE_URL is set. Bearer-token auth is enabled when JWT_SECRET is set.",
	RunE:  runServe,
}

var (
	servePort      int
	serveTolerance float64
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().Float64Var(&serveTolerance, "tolerance", 0, "Vertical line-merge tolerance in points (0 selects the default)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	opts := server.Options{
		Port:          servePort,
		LineTolerance: serveTolerance,
	}

	// Persistence is optional: without DATABASE_URL the server still
	// extracts, it just does not keep records.
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		st, err := store.Connect(context.Background(), databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer st.Close()

		if err := st.EnsureSchema(context.Background()); err != nil {
			return err
		}
		opts.Store = st
	} else {
		log.Println("DATABASE_URL not set, running without persistence")
	}

	if os.Getenv("JWT_SECRET") != "" {
		jwtCfg, err := config.NewJWTConfig()
		if err != nil {
			return err
		}
		opts.JWT = jwtCfg
	} else {
		log.Println("JWT_SECRET not set, running without authentication")
	}

	return server.New(opts).Start()
}
