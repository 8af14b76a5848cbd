// Package types provides type definitions for the resume document model used throughout cvmaker.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TemplateType identifies one of the built-in visual templates.
type TemplateType string

// Template variants.
const (
	TemplateClassic   TemplateType = "classic"
	TemplateModern    TemplateType = "modern"
	TemplateClean     TemplateType = "clean"
	TemplateExecutive TemplateType = "executive"
)

// FontFamily identifies a selectable font stack.
type FontFamily string

// Font families offered by the settings bar.
const (
	FontInter      FontFamily = "inter"
	FontMontserrat FontFamily = "montserrat"
	FontCalibri    FontFamily = "calibri"
	FontGaramond   FontFamily = "garamond"
	FontGeorgia    FontFamily = "georgia"
	FontArial      FontFamily = "arial"
)

// FontSize is a coarse size step applied to the whole document.
type FontSize string

// Font size steps.
const (
	SizeSmall  FontSize = "small"
	SizeMedium FontSize = "medium"
	SizeLarge  FontSize = "large"
)

// PageSize selects the print page format.
type PageSize string

// Page sizes understood by the print surface.
const (
	PageLetter PageSize = "letter"
	PageA4     PageSize = "a4"
)

// SectionType is the closed variant tag that determines which entry-rendering
// strategy and which default column a section gets.
type SectionType string

// Section types.
const (
	SectionSummary        SectionType = "summary"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionSkills         SectionType = "skills"
	SectionLanguages      SectionType = "languages"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
	SectionReferences     SectionType = "references"
	SectionCustom         SectionType = "custom"
)

// Column is an explicit left/right placement used by the two-column template.
type Column string

// Columns of the executive layout.
const (
	ColumnLeft  Column = "left"
	ColumnRight Column = "right"
)

// ResumeSettings holds the visual configuration, orthogonal to content.
type ResumeSettings struct {
	Template    TemplateType `json:"template"`
	Font        FontFamily   `json:"font"`
	AccentColor string       `json:"accentColor"`
	FontSize    FontSize     `json:"fontSize"`
	PageSize    PageSize     `json:"pageSize"`
}

// ContactInfo is a fixed-shape record of optional contact fields.
// No uniqueness or format constraint is enforced.
type ContactInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Entry is one item within a section: a job, a degree, a project, a reference,
// or the sole container for a flat skill list in skills/languages sections.
//
// For references sections StartDate and EndDate are repurposed to hold phone
// and email. The reuse is kept so that documents exported by older builds
// round-trip unchanged.
type Entry struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Organization string   `json:"organization"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Skills       []string `json:"skills"`
}

// Section is a typed, titled, orderable, visibility-toggleable block of entries.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Title   string      `json:"title"`
	Visible bool        `json:"visible"`
	Column  Column      `json:"column,omitempty"`
	Entries []Entry     `json:"entries"`
}

// Resume is the root aggregate.
type Resume struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	UpdatedAt string         `json:"updatedAt"`
	Settings  ResumeSettings `json:"settings"`
	Contact   ContactInfo    `json:"contact"`
	Sections  []Section      `json:"sections"`
}

// SingleEntry reports whether sections of this type carry exactly one entry
// by editor convention (the entry is auto-created when absent).
func (t SectionType) SingleEntry() bool {
	return t == SectionSummary || t == SectionSkills || t == SectionLanguages
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	out := e
	if e.Skills != nil {
		out.Skills = make([]string, len(e.Skills))
		copy(out.Skills, e.Skills)
	}
	return out
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := s
	if s.Entries != nil {
		out.Entries = make([]Entry, len(s.Entries))
		for i, e := range s.Entries {
			out.Entries[i] = e.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the resume. Store snapshots are cloned both
// ways so that no caller can mutate the authoritative document in place.
func (r Resume) Clone() Resume {
	out := r
	if r.Sections != nil {
		out.Sections = make([]Section, len(r.Sections))
		for i, s := range r.Sections {
			out.Sections[i] = s.Clone()
		}
	}
	return out
}

// FindSection returns a pointer to the section with the given id, or nil.
// The value receiver shares the sections backing array, so the pointer
// addresses the receiver's own storage.
func (r Resume) FindSection(sectionID string) *Section {
	for i := range r.Sections {
		if r.Sections[i].ID == sectionID {
			return &r.Sections[i]
		}
	}
	return nil
}

// FindEntry returns a pointer to the entry with the given id, or nil.
func (s Section) FindEntry(entryID string) *Entry {
	for i := range s.Entries {
		if s.Entries[i].ID == entryID {
			return &s.Entries[i]
		}
	}
	return nil
}
