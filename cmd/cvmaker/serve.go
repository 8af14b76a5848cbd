package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cvmaker/internal/assistant"
	"github.com/jonathan/cvmaker/internal/pdf"
	"github.com/jonathan/cvmaker/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume editing server",
	Long:  "Start an HTTP server exposing document mutations, live preview, JSON/PDF export, and the assistant endpoints.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log := newLogger()
	ctx := cmd.Context()

	st, closeStore, err := newStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// No API key disables the assistant instead of failing startup.
	gateway := assistant.Disabled()
	if cfg.APIKey != "" {
		client, err := assistant.NewGeminiClient(context.Background(), cfg.APIKey, cfg.Model)
		if err != nil {
			return fmt.Errorf("failed to create assistant client: %w", err)
		}
		gateway = assistant.NewGateway(client)
	}

	printer := pdf.NewPrinter(pdf.WithChromePath(cfg.ChromePath))

	srv := server.New(server.Config{Port: cfg.Port}, st, gateway, printer, log)
	return srv.Start()
}
