// Package main provides the entry point for the Resume Builder HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume Builder HTTP API Server",
	Long:  "Resume Builder manages in-progress resume drafts, auto-fills profile sections with Gemini, and submits the shaped payload to the rendering backend via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
