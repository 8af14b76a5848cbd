// Package transfer serializes resume documents to and from their portable
// JSON form. The wire format is the document aggregate verbatim, so an
// exported file imports back into an identical document.
package transfer

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/jonathan/cvmaker/internal/schemas"
	"github.com/jonathan/cvmaker/internal/types"
)

// ExportFilename derives the download filename from the document title,
// falling back to "cv" when the title is blank.
func ExportFilename(r types.Resume) string {
	stem := strings.TrimSpace(r.Title)
	if stem == "" {
		stem = "cv"
	}
	// Strip characters that would break a filesystem path or a
	// Content-Disposition header.
	clean := strings.Map(func(c rune) rune {
		switch c {
		case '/', '\\', '"', ':', '\x00':
			return '_'
		}
		return c
	}, stem)
	return clean + ".json"
}

// Marshal renders the document as indented JSON with stable field names.
func Marshal(r types.Resume) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, &ExportError{Message: "failed to serialize resume", Cause: err}
	}
	return append(data, '\n'), nil
}

// WriteFile exports the document to the given path.
func WriteFile(path string, r types.Resume) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &ExportError{Message: "failed to write " + path, Cause: err}
	}
	return nil
}

// Parse validates raw JSON against the document schema and decodes it. On
// any failure the zero document and an *ImportError are returned; callers
// keep their current document untouched.
func Parse(data []byte) (types.Resume, error) {
	if err := schemas.ValidateResume(data); err != nil {
		return types.Resume{}, &ImportError{Message: "invalid resume document", Cause: err}
	}

	var r types.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return types.Resume{}, &ImportError{Message: "failed to decode resume document", Cause: err}
	}
	return r, nil
}

// ReadFile imports a document from the given path.
func ReadFile(path string) (types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Resume{}, &ImportError{Message: "failed to read " + path, Cause: err}
	}
	return Parse(data)
}
