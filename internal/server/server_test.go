package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cvmaker/internal/assistant"
	"github.com/jonathan/cvmaker/internal/storage"
	"github.com/jonathan/cvmaker/internal/store"
	"github.com/jonathan/cvmaker/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	st := store.New(context.Background(), storage.NewFileStore(t.TempDir()), store.WithLogger(log))
	return New(Config{Port: 0}, st, assistant.Disabled(), nil, log)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeResume(t *testing.T, w *httptest.ResponseRecorder) types.Resume {
	t.Helper()
	var r types.Resume
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func TestHealth(t *testing.T) {
	w := doJSON(t, newTestServer(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestGetResume_ReturnsDefaultDocument(t *testing.T) {
	w := doJSON(t, newTestServer(t), http.MethodGet, "/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)

	r := decodeResume(t, w)
	assert.Equal(t, "Mi CV", r.Title)
	assert.Len(t, r.Sections, 4)
}

func TestUpdateContact_PartialMerge(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPut, "/resume/contact", map[string]string{"fullName": "Ana Ruiz"})
	require.Equal(t, http.StatusOK, w.Code)

	r := decodeResume(t, w)
	assert.Equal(t, "Ana Ruiz", r.Contact.FullName)
	// Untouched fields keep their prior values.
	assert.NotEmpty(t, r.Contact.Email)
}

func TestUpdateSettings_RejectsUnknownTemplate(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPut, "/resume/settings", map[string]string{"template": "brutalist"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation error")

	// Document unchanged.
	assert.Equal(t, types.TemplateClassic, s.store.Snapshot().Settings.Template)
}

func TestUpdateTitle(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPut, "/resume/title", map[string]string{"title": "CV Backend"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CV Backend", decodeResume(t, w).Title)
}

func TestAddSection_SkillsSeedsOneEntry(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/resume/sections", map[string]string{"type": "skills", "title": "Más habilidades"})
	require.Equal(t, http.StatusCreated, w.Code)

	var section types.Section
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &section))
	assert.NotEmpty(t, section.ID)
	require.Len(t, section.Entries, 1)
	assert.Empty(t, section.Entries[0].Skills)
}

func TestAddSection_RequiresTypeAndTitle(t *testing.T) {
	w := doJSON(t, newTestServer(t), http.MethodPost, "/resume/sections", map[string]string{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation error: Type - required")
}

func TestRemoveSection(t *testing.T) {
	s := newTestServer(t)
	target := s.store.Snapshot().Sections[0].ID

	w := doJSON(t, s, http.MethodDelete, "/resume/sections/"+target, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResume(t, w).Sections, 3)
}

func TestRemoveSection_MissingIDIsSilent(t *testing.T) {
	s := newTestServer(t)
	before := s.store.Snapshot()

	w := doJSON(t, s, http.MethodDelete, "/resume/sections/ghost", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before, s.store.Snapshot())
}

func TestReorderSections(t *testing.T) {
	s := newTestServer(t)
	before := s.store.Snapshot()

	w := doJSON(t, s, http.MethodPost, "/resume/sections/reorder", map[string]int{"from": 0, "to": 2})
	require.Equal(t, http.StatusOK, w.Code)

	after := decodeResume(t, w)
	assert.Equal(t, before.Sections[0].ID, after.Sections[2].ID)
	assert.Equal(t, before.Sections[1].ID, after.Sections[0].ID)
}

func TestToggleVisibility(t *testing.T) {
	s := newTestServer(t)
	target := s.store.Snapshot().Sections[0]
	require.True(t, target.Visible)

	w := doJSON(t, s, http.MethodPost, "/resume/sections/"+target.ID+"/visibility", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decodeResume(t, w).Sections[0].Visible)
}

func TestAddEntry_UnknownSectionIs404(t *testing.T) {
	w := doJSON(t, newTestServer(t), http.MethodPost, "/resume/sections/ghost/entries", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEntryLifecycle(t *testing.T) {
	s := newTestServer(t)
	experience := s.store.Snapshot().Sections[1]

	w := doJSON(t, s, http.MethodPost, "/resume/sections/"+experience.ID+"/entries", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var entry types.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	require.NotEmpty(t, entry.ID)

	base := "/resume/sections/" + experience.ID + "/entries/" + entry.ID
	w = doJSON(t, s, http.MethodPatch, base, map[string]any{"title": "Engineer", "startDate": "01/2023", "current": true})
	require.Equal(t, http.StatusOK, w.Code)

	patched := decodeResume(t, w)
	updated := patched.FindSection(experience.ID).FindEntry(entry.ID)
	require.NotNil(t, updated)
	assert.Equal(t, "Engineer", updated.Title)
	assert.True(t, updated.Current)

	w = doJSON(t, s, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, w.Code)

	after := decodeResume(t, w)
	section := after.FindSection(experience.ID)
	require.NotNil(t, section)
	assert.Len(t, section.Entries, len(experience.Entries))
}

func TestSkillEndpoints(t *testing.T) {
	s := newTestServer(t)
	skillsSection := s.store.Snapshot().Sections[3]
	entry := skillsSection.Entries[0]
	base := "/resume/sections/" + skillsSection.ID + "/entries/" + entry.ID + "/skills"

	// Adding an existing skill is a silent no-op.
	w := doJSON(t, s, http.MethodPost, base, map[string]string{"skill": "React"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, base, map[string]string{"skill": "Go"})
	require.Equal(t, http.StatusOK, w.Code)

	after := decodeResume(t, w)
	got := after.FindSection(skillsSection.ID).FindEntry(entry.ID)
	require.NotNil(t, got)
	assert.Equal(t, 1, countOf(got.Skills, "React"))
	assert.Contains(t, got.Skills, "Go")

	w = doJSON(t, s, http.MethodDelete, base+"/Go", nil)
	require.Equal(t, http.StatusOK, w.Code)
	after = decodeResume(t, w)
	got = after.FindSection(skillsSection.ID).FindEntry(entry.ID)
	assert.NotContains(t, got.Skills, "Go")

	w = doJSON(t, s, http.MethodPost, base+"/reorder", map[string]int{"from": 0, "to": 1})
	require.Equal(t, http.StatusOK, w.Code)
	after = decodeResume(t, w)
	got = after.FindSection(skillsSection.ID).FindEntry(entry.ID)
	assert.Equal(t, entry.Skills[1], got.Skills[0])
	assert.Equal(t, entry.Skills[0], got.Skills[1])
}

func countOf(list []string, s string) int {
	n := 0
	for _, v := range list {
		if v == s {
			n++
		}
	}
	return n
}

func TestPreview_RendersHTML(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<!DOCTYPE html>")
	assert.Contains(t, w.Body.String(), "María García López")
}

func TestPreview_TemplateOverride(t *testing.T) {
	s := newTestServer(t)

	base := doJSON(t, s, http.MethodGet, "/preview", nil)
	other := doJSON(t, s, http.MethodGet, "/preview?template=executive", nil)
	require.Equal(t, http.StatusOK, other.Code)
	assert.NotEqual(t, base.Body.String(), other.Body.String())
}

func TestExportJSON_FilenameFromTitle(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/export/json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="Mi CV.json"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), `"fullName"`)
}

func TestExportPDF_UnavailableWithoutPrinter(t *testing.T) {
	w := doJSON(t, newTestServer(t), http.MethodGet, "/export/pdf", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestImport_RoundTrip(t *testing.T) {
	s := newTestServer(t)

	exported := doJSON(t, s, http.MethodGet, "/export/json", nil)
	require.Equal(t, http.StatusOK, exported.Code)

	req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(exported.Body.String()))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Mi CV", s.store.Snapshot().Title)
}

func TestImport_RejectedLeavesDocumentUntouched(t *testing.T) {
	s := newTestServer(t)
	before := s.store.Snapshot()

	req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(`{"title": "broken"`))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, before, s.store.Snapshot())
}

func TestAssistant_DisabledGateway(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/assistant/available", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available": false}`, w.Body.String())

	w = doJSON(t, s, http.MethodPost, "/assistant/improve-bullets", map[string]string{"text": "hice cosas"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAssistant_SuggestSkillsViaFakeClient(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	st := store.New(context.Background(), storage.NewFileStore(t.TempDir()), store.WithLogger(log))

	gw := assistant.NewGateway(stubClient{response: "Go, Kubernetes"})
	s := New(Config{}, st, gw, nil, log)

	w := doJSON(t, s, http.MethodPost, "/assistant/skills", map[string]any{"jobTitle": "SRE", "skills": []string{"Go"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"skills": ["Kubernetes"]}`, w.Body.String())
}

type stubClient struct {
	response string
}

func (c stubClient) GenerateText(context.Context, string) (string, error) { return c.response, nil }
func (c stubClient) Close() error                                         { return nil }

func TestCORS_Preflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/resume", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
