package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cvmaker/internal/pdf"
	"github.com/jonathan/cvmaker/internal/rendering"
	"github.com/jonathan/cvmaker/internal/transfer"
)

var (
	exportOut string
	exportPDF bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resume as JSON or PDF",
	Long:  "Writes the stored resume to a portable JSON file, or with --pdf prints the rendered preview through a headless browser.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: derived from the resume title)")
	exportCmd.Flags().BoolVar(&exportPDF, "pdf", false, "Export as PDF instead of JSON")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
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

	resume := st.Snapshot()

	if exportPDF {
		html, err := rendering.Render(resume)
		if err != nil {
			return err
		}

		printer := pdf.NewPrinter(pdf.WithChromePath(cfg.ChromePath))
		data, err := printer.Print(cmd.Context(), html, resume.Settings.PageSize)
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = "cv.pdf"
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		log.WithField("path", out).Info("exported PDF")
		return nil
	}

	out := exportOut
	if out == "" {
		out = transfer.ExportFilename(resume)
	}
	if err := transfer.WriteFile(out, resume); err != nil {
		return err
	}
	log.WithField("path", out).Info("exported JSON")
	return nil
}
