package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cvmaker/internal/store"
	"github.com/jonathan/cvmaker/internal/types"
)

// ---------------------------------------------------------------------
// Document handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

type UpdateTitleRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleUpdateTitle(w http.ResponseWriter, r *http.Request) {
	var req UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.UpdateTitle(r.Context(), req.Title)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var patch store.ContactPatch
	if !s.decodeAndValidate(w, r, &patch) {
		return
	}

	s.store.UpdateContact(r.Context(), patch)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch store.SettingsPatch
	if !s.decodeAndValidate(w, r, &patch) {
		return
	}

	s.store.UpdateSettings(r.Context(), patch)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleLoadResume(w http.ResponseWriter, r *http.Request) {
	var resume types.Resume
	if err := json.NewDecoder(r.Body).Decode(&resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.LoadResume(r.Context(), resume)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleResetResume(w http.ResponseWriter, r *http.Request) {
	s.store.ResetResume(r.Context())
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// ---------------------------------------------------------------------
// Section handlers
// ---------------------------------------------------------------------

type AddSectionRequest struct {
	Type  types.SectionType `json:"type" validate:"required"`
	Title string            `json:"title" validate:"required"`
}

func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	var req AddSectionRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	section := s.store.AddSection(r.Context(), req.Type, req.Title)
	s.jsonResponse(w, http.StatusCreated, section)
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	var patch store.SectionPatch
	if !s.decodeAndValidate(w, r, &patch) {
		return
	}

	s.store.UpdateSection(r.Context(), r.PathValue("id"), patch)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleRemoveSection(w http.ResponseWriter, r *http.Request) {
	s.store.RemoveSection(r.Context(), r.PathValue("id"))
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleToggleVisibility(w http.ResponseWriter, r *http.Request) {
	s.store.ToggleSectionVisibility(r.Context(), r.PathValue("id"))
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

type ReorderRequest struct {
	From int `json:"from" validate:"gte=0"`
	To   int `json:"to" validate:"gte=0"`
}

func (s *Server) handleReorderSections(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	s.store.ReorderSections(r.Context(), req.From, req.To)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// ---------------------------------------------------------------------
// Entry handlers
// ---------------------------------------------------------------------

func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	entry := s.store.AddEntry(r.Context(), r.PathValue("id"))
	if entry.ID == "" {
		s.errorResponse(w, http.StatusNotFound, "Section not found")
		return
	}
	s.jsonResponse(w, http.StatusCreated, entry)
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	var patch store.EntryPatch
	if !s.decodeAndValidate(w, r, &patch) {
		return
	}

	s.store.UpdateEntry(r.Context(), r.PathValue("id"), r.PathValue("entry_id"), patch)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	s.store.RemoveEntry(r.Context(), r.PathValue("id"), r.PathValue("entry_id"))
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleReorderEntries(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	s.store.ReorderEntries(r.Context(), r.PathValue("id"), req.From, req.To)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// ---------------------------------------------------------------------
// Skill handlers
// ---------------------------------------------------------------------

type AddSkillRequest struct {
	Skill string `json:"skill" validate:"required"`
}

func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	var req AddSkillRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	s.store.AddSkill(r.Context(), r.PathValue("id"), r.PathValue("entry_id"), req.Skill)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	s.store.RemoveSkill(r.Context(), r.PathValue("id"), r.PathValue("entry_id"), r.PathValue("skill"))
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleReorderSkills(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	s.store.ReorderSkills(r.Context(), r.PathValue("id"), r.PathValue("entry_id"), req.From, req.To)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// ---------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------

// decodeAndValidate decodes the request body into dst and validates it. On
// failure it writes the error response and returns false.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		ve := validationError(err)
		s.errorResponse(w, HTTPStatus(ve), ve.Error())
		return false
	}
	return true
}

// validationError converts the first validator failure into the typed error.
func validationError(err error) *ErrValidation {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
		}
	}
	return &ErrValidation{Field: "request", Message: "invalid"}
}
