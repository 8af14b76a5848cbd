// Package pdf is the print surface: it feeds rendered preview HTML through a
// headless browser and returns paginated PDF bytes. Requires Chrome or
// Chromium on the host; the CHROME_PATH environment variable overrides
// binary discovery.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/cvmaker/internal/types"
)

// DefaultTimeout bounds a single print run, browser startup included.
const DefaultTimeout = 60 * time.Second

// Printer prints rendered HTML to PDF via headless Chrome.
type Printer struct {
	timeout    time.Duration
	chromePath string
}

// Option configures a Printer.
type Option func(*Printer)

// WithTimeout overrides the per-print timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Printer) { p.timeout = d }
}

// WithChromePath pins the browser binary.
func WithChromePath(path string) Option {
	return func(p *Printer) { p.chromePath = path }
}

// NewPrinter builds a Printer with defaults from the environment.
func NewPrinter(opts ...Option) *Printer {
	p := &Printer{
		timeout:    DefaultTimeout,
		chromePath: os.Getenv("CHROME_PATH"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// paperDimensions returns the print size in inches for a page setting.
func paperDimensions(size types.PageSize) (width, height float64) {
	if size == types.PageA4 {
		// A4: 210mm x 297mm
		return 8.27, 11.69
	}
	// Letter: 216mm x 279mm
	return 8.5, 11.0
}

// Print renders the HTML document to PDF bytes at the given page size.
func (p *Printer) Print(ctx context.Context, html string, size types.PageSize) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(p.chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, p.timeout)
	defer cancelTimeout()

	// Chrome will not navigate to raw HTML, so stage it as a file.
	tmpDir, err := os.MkdirTemp("", "cvmaker-")
	if err != nil {
		return nil, fmt.Errorf("failed to stage print input: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to stage print input: %w", err)
	}

	width, height := paperDimensions(size)

	var pdfBuf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	return pdfBuf, nil
}
