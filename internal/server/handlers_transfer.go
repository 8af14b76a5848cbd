package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/cvmaker/internal/rendering"
	"github.com/jonathan/cvmaker/internal/transfer"
	"github.com/jonathan/cvmaker/internal/types"
)

// maxImportSize bounds an imported document file.
const maxImportSize = 10 << 20

// handlePreview renders the current document with its selected template, or
// with the ?template= override.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	resume := s.store.Snapshot()

	strategy := rendering.ForTemplate(resume.Settings.Template)
	if name := r.URL.Query().Get("template"); name != "" {
		strategy = rendering.ForTemplate(types.TemplateType(name))
	}

	html, err := strategy.Render(resume)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, html); err != nil {
		s.log.WithError(err).Error("failed to write preview")
	}
}

// handleExportJSON streams the document as a downloadable JSON file named
// after its title.
func (s *Server) handleExportJSON(w http.ResponseWriter, _ *http.Request) {
	resume := s.store.Snapshot()

	data, err := transfer.Marshal(resume)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", transfer.ExportFilename(resume)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.log.WithError(err).Error("failed to write export")
	}
}

// handleExportPDF renders the document and prints it through the headless
// browser at the document's page size.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if s.printer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "PDF export unavailable")
		return
	}

	resume := s.store.Snapshot()

	html, err := rendering.Render(resume)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	pdfBytes, err := s.printer.Print(r.Context(), html, resume.Settings.PageSize)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"cv.pdf\"")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		s.log.WithError(err).Error("failed to write pdf")
	}
}

// handleImport validates the uploaded JSON and replaces the document
// wholesale. A rejected import leaves the current document untouched.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	resume, err := transfer.Parse(data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.store.LoadResume(r.Context(), resume)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}
