// Package server provides the HTTP API for the resume builder: document
// mutations, live preview, import/export, and the assistant endpoints.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/cvmaker/internal/assistant"
	"github.com/jonathan/cvmaker/internal/pdf"
	"github.com/jonathan/cvmaker/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	gateway    *assistant.Gateway
	printer    *pdf.Printer
	broker     *broker
	validate   *validator.Validate
	log        *logrus.Logger
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a server over an already-constructed store, assistant gateway,
// and printer. The gateway may be disabled; the assistant endpoints then
// report unavailability instead of failing requests elsewhere.
func New(cfg Config, st *store.Store, gw *assistant.Gateway, printer *pdf.Printer, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if gw == nil {
		gw = assistant.Disabled()
	}

	s := &Server{
		store:    st,
		gateway:  gw,
		printer:  printer,
		broker:   newBroker(),
		validate: validator.New(),
		log:      log,
	}

	// Every effective mutation fans out to live preview listeners.
	st.Subscribe(s.broker.publish)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF export runs a headless browser
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Document
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PUT /resume/title", s.handleUpdateTitle)
	mux.HandleFunc("PUT /resume/contact", s.handleUpdateContact)
	mux.HandleFunc("PUT /resume/settings", s.handleUpdateSettings)
	mux.HandleFunc("POST /resume/load", s.handleLoadResume)
	mux.HandleFunc("POST /resume/reset", s.handleResetResume)

	// Sections
	mux.HandleFunc("POST /resume/sections", s.handleAddSection)
	mux.HandleFunc("POST /resume/sections/reorder", s.handleReorderSections)
	mux.HandleFunc("PATCH /resume/sections/{id}", s.handleUpdateSection)
	mux.HandleFunc("DELETE /resume/sections/{id}", s.handleRemoveSection)
	mux.HandleFunc("POST /resume/sections/{id}/visibility", s.handleToggleVisibility)

	// Entries
	mux.HandleFunc("POST /resume/sections/{id}/entries", s.handleAddEntry)
	mux.HandleFunc("POST /resume/sections/{id}/entries/reorder", s.handleReorderEntries)
	mux.HandleFunc("PATCH /resume/sections/{id}/entries/{entry_id}", s.handleUpdateEntry)
	mux.HandleFunc("DELETE /resume/sections/{id}/entries/{entry_id}", s.handleRemoveEntry)

	// Skills
	mux.HandleFunc("POST /resume/sections/{id}/entries/{entry_id}/skills", s.handleAddSkill)
	mux.HandleFunc("POST /resume/sections/{id}/entries/{entry_id}/skills/reorder", s.handleReorderSkills)
	mux.HandleFunc("DELETE /resume/sections/{id}/entries/{entry_id}/skills/{skill}", s.handleRemoveSkill)

	// Preview and transfer
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /events", s.handleEvents)
	mux.HandleFunc("GET /export/json", s.handleExportJSON)
	mux.HandleFunc("GET /export/pdf", s.handleExportPDF)
	mux.HandleFunc("POST /import", s.handleImport)

	// Assistant
	mux.HandleFunc("GET /assistant/available", s.handleAssistantAvailable)
	mux.HandleFunc("POST /assistant/improve-bullets", s.handleImproveBullets)
	mux.HandleFunc("POST /assistant/summary", s.handleGenerateSummary)
	mux.HandleFunc("POST /assistant/skills", s.handleSuggestSkills)

	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Handler exposes the routed handler stack, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.WithField("addr", s.httpServer.Addr).Info("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Fatal("server error")
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.broker.close()
	if err := s.gateway.Close(); err != nil {
		s.log.WithError(err).Warn("failed to close assistant gateway")
	}
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.WithError(err).Error("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
