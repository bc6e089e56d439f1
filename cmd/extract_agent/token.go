package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/podume/resume-extractor/internal/config"
	"github.com/podume/resume-extractor/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate an API bearer token",
	Long:  "Generate a signed bearer token for calling an extract_agent server that has JWT_SECRET set. The token carries a client ID and expires after JWT_EXPIRATION_HOURS.",
	RunE:  runToken,
}

var tokenClientID string

func init() {
	tokenCmd.Flags().StringVar(&tokenClientID, "client-id", "", "Client UUID to embed in the token (default: random)")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	clientID := uuid.New()
	if tokenClientID != "" {
		clientID, err = uuid.Parse(tokenClientID)
		if err != nil {
			return fmt.Errorf("invalid client ID: %w", err)
		}
	}

	token, err := server.NewJWTService(jwtCfg).GenerateToken(clientID)
	if err != nil {
		return err
	}

	fmt.Printf("client_id: %s\n", clientID)
	fmt.Printf("token:     %s\n", token)
	return nil
}
