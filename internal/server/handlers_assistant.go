package server

import "net/http"

// ---------------------------------------------------------------------
// Assistant handlers
//
// The assistant only ever produces candidate strings. Nothing here writes to
// the store; the client applies an accepted suggestion through the normal
// mutation endpoints.
// ---------------------------------------------------------------------

func (s *Server) handleAssistantAvailable(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]bool{"available": s.gateway.Available()})
}

type ImproveBulletsRequest struct {
	Text     string `json:"text" validate:"required"`
	JobTitle string `json:"jobTitle"`
}

func (s *Server) handleImproveBullets(w http.ResponseWriter, r *http.Request) {
	var req ImproveBulletsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	text, err := s.gateway.ImproveBullets(r.Context(), req.Text, req.JobTitle)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}

type GenerateSummaryRequest struct {
	JobTitle   string   `json:"jobTitle"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
}

func (s *Server) handleGenerateSummary(w http.ResponseWriter, r *http.Request) {
	var req GenerateSummaryRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	text, err := s.gateway.GenerateSummary(r.Context(), req.JobTitle, req.Experience, req.Skills)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}

type SuggestSkillsRequest struct {
	JobTitle string   `json:"jobTitle" validate:"required"`
	Skills   []string `json:"skills"`
}

func (s *Server) handleSuggestSkills(w http.ResponseWriter, r *http.Request) {
	var req SuggestSkillsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	skills, err := s.gateway.SuggestSkills(r.Context(), req.JobTitle, req.Skills)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string][]string{"skills": skills})
}
