package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cvmaker/internal/rendering"
	"github.com/jonathan/cvmaker/internal/transfer"
	"github.com/jonathan/cvmaker/internal/types"
)

var (
	renderTemplate string
	renderOut      string
	renderAll      bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the resume to HTML",
	Long:  "Renders the stored resume with its selected template (or an override) and writes the HTML to a file or stdout. With --all, every template is rendered side by side.",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template override: classic, modern, clean, or executive")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output HTML file (default stdout; with --all, an output directory)")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every template variant")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
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

	if renderAll {
		return renderAllTemplates(resume, renderOut)
	}

	strategy := rendering.ForTemplate(resume.Settings.Template)
	if renderTemplate != "" {
		strategy = rendering.ForTemplate(types.TemplateType(renderTemplate))
	}

	html, err := strategy.Render(resume)
	if err != nil {
		return err
	}

	if renderOut == "" {
		fmt.Print(html)
		return nil
	}
	if err := os.WriteFile(renderOut, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOut, err)
	}
	return nil
}

// renderAllTemplates writes one HTML file per template variant into dir,
// rendering concurrently. Rendering is pure, so the only shared state is the
// immutable snapshot.
func renderAllTemplates(resume types.Resume, dir string) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	stem := strings.TrimSuffix(transfer.ExportFilename(resume), ".json")

	var g errgroup.Group
	for _, name := range rendering.Templates() {
		g.Go(func() error {
			html, err := rendering.ForTemplate(name).Render(resume)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, fmt.Sprintf("%s-%s.html", stem, name))
			if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			return nil
		})
	}
	return g.Wait()
}
