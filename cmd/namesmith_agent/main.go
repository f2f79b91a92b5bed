// Package main provides the entry point for the namesmith CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "namesmith_agent",
	Short: "Domain name generation and scoring service",
	Long:  "namesmith generates candidate domain names from word packs, filters them against lexical constraints, and scores the survivors for brand/resale value via an LLM scoring oracle.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
