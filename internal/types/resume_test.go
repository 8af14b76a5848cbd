package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResume_JSONFieldNames(t *testing.T) {
	r := Resume{
		ID:        "r1",
		Title:     "Mi CV",
		UpdatedAt: "2024-01-01T00:00:00Z",
		Settings: ResumeSettings{
			Template:    TemplateClassic,
			Font:        FontInter,
			AccentColor: "#2563eb",
			FontSize:    SizeMedium,
			PageSize:    PageLetter,
		},
		Contact: ContactInfo{FullName: "Ana Ruiz", LinkedIn: "linkedin.com/in/ana"},
		Sections: []Section{
			{
				ID: "s1", Type: SectionExperience, Title: "Experiencia", Visible: true,
				Entries: []Entry{
					{ID: "e1", Title: "Engineer", StartDate: "01/2023", Current: true, Skills: []string{}},
				},
			},
		},
	}

	jsonBytes, err := json.Marshal(r)
	require.NoError(t, err)
	out := string(jsonBytes)

	// The serialized field set must stay stable for export/import compatibility.
	assert.Contains(t, out, `"updatedAt":"2024-01-01T00:00:00Z"`)
	assert.Contains(t, out, `"accentColor":"#2563eb"`)
	assert.Contains(t, out, `"fontSize":"medium"`)
	assert.Contains(t, out, `"pageSize":"letter"`)
	assert.Contains(t, out, `"fullName":"Ana Ruiz"`)
	assert.Contains(t, out, `"linkedin":"linkedin.com/in/ana"`)
	assert.Contains(t, out, `"startDate":"01/2023"`)
	assert.Contains(t, out, `"current":true`)
	assert.NotContains(t, out, `"column"`, "empty column must be omitted")
}

func TestResume_ColumnOmittedUnlessSet(t *testing.T) {
	s := Section{ID: "s1", Type: SectionSkills, Column: ColumnLeft, Entries: []Entry{}}
	jsonBytes, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"column":"left"`)
}

func TestNewEntry_FreshIDs(t *testing.T) {
	a := NewEntry()
	b := NewEntry()
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, a.Title)
	assert.False(t, a.Current)
	assert.NotNil(t, a.Skills)
	assert.Empty(t, a.Skills)
}

func TestNewSection_Defaults(t *testing.T) {
	s := NewSection(SectionProjects, "Proyectos")
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, SectionProjects, s.Type)
	assert.Equal(t, "Proyectos", s.Title)
	assert.True(t, s.Visible)
	assert.Empty(t, s.Column)
	assert.Empty(t, s.Entries)
}

func TestSectionType_SingleEntry(t *testing.T) {
	assert.True(t, SectionSummary.SingleEntry())
	assert.True(t, SectionSkills.SingleEntry())
	assert.True(t, SectionLanguages.SingleEntry())
	assert.False(t, SectionExperience.SingleEntry())
	assert.False(t, SectionReferences.SingleEntry())
	assert.False(t, SectionCustom.SingleEntry())
}

func TestResume_CloneIsDeep(t *testing.T) {
	orig := DefaultResume()
	clone := orig.Clone()

	clone.Sections[0].Title = "changed"
	clone.Sections[1].Entries[0].Title = "changed"
	skills := clone.FindSection(clone.Sections[3].ID)
	require.NotNil(t, skills)
	skills.Entries[0].Skills[0] = "changed"

	assert.Equal(t, "Resumen Profesional", orig.Sections[0].Title)
	assert.Equal(t, "Senior Frontend Developer", orig.Sections[1].Entries[0].Title)
	assert.Equal(t, "React", orig.Sections[3].Entries[0].Skills[0])
}

func TestClone_KeepsEmptySkillsNonNil(t *testing.T) {
	r := DefaultResume()
	clone := r.Clone()

	// Entries without skills hold an empty slice, never nil: nil would
	// serialize as null and fail the import shape check.
	summary := clone.FindSection(clone.Sections[0].ID)
	require.NotNil(t, summary)
	assert.NotNil(t, summary.Entries[0].Skills)

	jsonBytes, err := json.Marshal(summary.Entries[0])
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"skills":[]`)
}

func TestFindSection_OnUnaddressableValue(t *testing.T) {
	r := DefaultResume()
	sec := r.Clone().FindSection(r.Sections[1].ID)
	require.NotNil(t, sec)
	assert.Equal(t, SectionExperience, sec.Type)
}

func TestFindSectionAndEntry(t *testing.T) {
	r := DefaultResume()
	sec := r.FindSection(r.Sections[1].ID)
	require.NotNil(t, sec)
	assert.Equal(t, SectionExperience, sec.Type)

	entry := sec.FindEntry(sec.Entries[1].ID)
	require.NotNil(t, entry)
	assert.Equal(t, "StartupMX", entry.Organization)

	assert.Nil(t, r.FindSection("missing"))
	assert.Nil(t, sec.FindEntry("missing"))
}

func TestDefaultResume_ShapeInvariants(t *testing.T) {
	r := DefaultResume()
	require.Len(t, r.Sections, 4)

	for _, s := range r.Sections {
		if s.Type.SingleEntry() {
			assert.Len(t, s.Entries, 1, "section %s must hold exactly one entry", s.Type)
		}
		assert.True(t, s.Visible)
	}

	// Fresh ids on every call.
	assert.NotEqual(t, r.ID, DefaultResume().ID)
}
