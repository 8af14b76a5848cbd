package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cvmaker/internal/transfer"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a resume from a JSON export",
	Long:  "Validates the file against the resume schema and replaces the stored document with its contents.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log := newLogger()
	st, closeStore, err := newStore(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	resume, err := transfer.ReadFile(args[0])
	if err != nil {
		return err
	}

	st.LoadResume(cmd.Context(), resume)
	log.WithField("title", resume.Title).Info("imported resume")
	return nil
}
