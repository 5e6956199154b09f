package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/autofill"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing resume drafts, auto-filling profile sections, and submitting resumes to the rendering backend.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if url := os.Getenv("BACKEND_URL"); url != "" {
		cfg.BackendURL = url
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Auto-fill is optional: without a key the endpoint reports the
	// feature as not configured.
	var generator server.ProfileGenerator
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, auto-fill disabled")
	} else {
		client, err := llm.NewGeminiClient(cmd.Context(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defer func() { _ = client.Close() }()

		generator = autofill.New(client, &autofill.ModelCache{}, autofill.Options{
			PreferredModels: cfg.PreferredModels,
			ProbeLimit:      cfg.ProbeLimit,
		})
	}

	srv, err := server.New(server.Config{
		Port:                  servePort,
		BackendURL:            cfg.BackendURL,
		PayloadFormat:         cfg.PayloadFormat,
		Template:              cfg.Template,
		AllowImagePlaceholder: cfg.AllowImagePlaceholder,
		Generator:             generator,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
