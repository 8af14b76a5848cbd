package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/cvmaker/internal/ordering"
	"github.com/jonathan/cvmaker/internal/types"
)

// SectionKind selects the entry-rendering strategy for a section. The
// mapping from section type to kind is the dispatch contract shared by all
// four template strategies.
type SectionKind string

// Section rendering strategies.
const (
	KindSummary    SectionKind = "summary"
	KindEntries    SectionKind = "entries"
	KindEducation  SectionKind = "education"
	KindProjects   SectionKind = "projects"
	KindSkills     SectionKind = "skills"
	KindReferences SectionKind = "references"
)

// KindFor maps a section type to its rendering strategy. Unknown types fall
// back to the experience strategy.
func KindFor(t types.SectionType) SectionKind {
	switch t {
	case types.SectionSummary:
		return KindSummary
	case types.SectionSkills, types.SectionLanguages:
		return KindSkills
	case types.SectionProjects:
		return KindProjects
	case types.SectionReferences:
		return KindReferences
	case types.SectionEducation:
		return KindEducation
	default:
		return KindEntries
	}
}

// ContactItem is one labeled contact line with an optional link target.
type ContactItem struct {
	Label string
	Value string
	Href  string
}

// ContactView is the header contact block.
type ContactView struct {
	FullName string
	Items    []ContactItem
}

// EntryView is the template-facing projection of one entry.
type EntryView struct {
	Title        string
	Organization string
	Location     string
	DateRange    string
	URLHref      string
	URLText      string
	Description  Description
	Phone        string
	Email        string
	Skills       []string
}

// OrgLine joins organization and location for single-line layouts.
func (e EntryView) OrgLine() string {
	parts := make([]string, 0, 2)
	if e.Organization != "" {
		parts = append(parts, e.Organization)
	}
	if e.Location != "" {
		parts = append(parts, e.Location)
	}
	return strings.Join(parts, " | ")
}

// SectionView is the template-facing projection of one visible section.
type SectionView struct {
	Title       string
	Kind        SectionKind
	SummaryText string
	Entries     []EntryView
	Skills      []string
}

// Document is the complete template-facing view of a resume. Building it is
// a pure function of the document; templates add only visual styling.
type Document struct {
	Title     string
	Accent    template.CSS
	FontStack template.CSS
	BaseSize  template.CSS
	PageWidth template.CSS
	PageMinH  template.CSS
	Contact   ContactView
	Headline  string
	Sections  []SectionView
	Left      []SectionView
	Right     []SectionView
}

// FormatDateRange computes the display range for an entry. The whole range
// is omitted when the start date is empty; a current entry displays
// "Presente" regardless of any stored end date.
func FormatDateRange(e types.Entry) string {
	if e.StartDate == "" {
		return ""
	}
	end := e.EndDate
	if e.Current {
		end = "Presente"
	}
	return e.StartDate + " – " + end
}

// NormalizeURL returns the link target and display text for a stored URL.
// A URL without a scheme gets https:// prefixed for the target; the display
// text always drops the scheme.
func NormalizeURL(raw string) (href, display string) {
	if raw == "" {
		return "", ""
	}
	display = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw, display
	}
	return "https://" + raw, display
}

var fontStacks = map[types.FontFamily]string{
	types.FontInter:      "'Inter', 'Helvetica Neue', Arial, sans-serif",
	types.FontMontserrat: "'Montserrat', 'Helvetica Neue', Arial, sans-serif",
	types.FontCalibri:    "Calibri, 'Segoe UI', Arial, sans-serif",
	types.FontGaramond:   "'EB Garamond', Garamond, 'Times New Roman', serif",
	types.FontGeorgia:    "Georgia, 'Times New Roman', serif",
	types.FontArial:      "Arial, Helvetica, sans-serif",
}

var baseSizes = map[types.FontSize]string{
	types.SizeSmall:  "12px",
	types.SizeMedium: "14px",
	types.SizeLarge:  "16px",
}

// BuildDocument projects a resume into the shared view model: visible
// sections only, dispatched by kind, in document order, plus the two-column
// partition used by the executive layout.
func BuildDocument(r types.Resume) *Document {
	doc := &Document{
		Title:   r.Title,
		Accent:  template.CSS(r.Settings.AccentColor),
		Contact: buildContact(r.Contact),
	}

	stack, ok := fontStacks[r.Settings.Font]
	if !ok {
		stack = fontStacks[types.FontInter]
	}
	doc.FontStack = template.CSS(stack)

	size, ok := baseSizes[r.Settings.FontSize]
	if !ok {
		size = baseSizes[types.SizeMedium]
	}
	doc.BaseSize = template.CSS(size)

	if r.Settings.PageSize == types.PageA4 {
		doc.PageWidth, doc.PageMinH = "210mm", "297mm"
	} else {
		doc.PageWidth, doc.PageMinH = "216mm", "279mm"
	}

	for _, s := range r.Sections {
		if s.Type == types.SectionExperience && doc.Headline == "" && len(s.Entries) > 0 {
			doc.Headline = s.Entries[0].Title
		}
	}

	leftSections, rightSections := ordering.Partition(r.Sections)
	doc.Sections = buildSections(r.Sections)
	doc.Left = buildSections(leftSections)
	doc.Right = buildSections(rightSections)
	return doc
}

func buildContact(c types.ContactInfo) ContactView {
	view := ContactView{FullName: c.FullName}
	add := func(label, value string, linked bool) {
		if value == "" {
			return
		}
		item := ContactItem{Label: label, Value: value}
		if linked {
			item.Href, _ = NormalizeURL(value)
		}
		view.Items = append(view.Items, item)
	}
	add("email", c.Email, false)
	add("phone", c.Phone, false)
	add("location", c.Location, false)
	add("linkedin", c.LinkedIn, true)
	add("website", c.Website, true)
	return view
}

func buildSections(sections []types.Section) []SectionView {
	var views []SectionView
	for _, s := range sections {
		// Hidden sections are retained in the model but never rendered.
		if !s.Visible {
			continue
		}
		views = append(views, buildSection(s))
	}
	return views
}

func buildSection(s types.Section) SectionView {
	view := SectionView{Title: s.Title, Kind: KindFor(s.Type)}

	switch view.Kind {
	case KindSummary:
		if len(s.Entries) > 0 {
			view.SummaryText = s.Entries[0].Description
		}
	case KindSkills:
		if len(s.Entries) > 0 {
			view.Skills = append([]string(nil), s.Entries[0].Skills...)
		}
	default:
		for _, e := range s.Entries {
			view.Entries = append(view.Entries, buildEntry(e, view.Kind))
		}
	}
	return view
}

func buildEntry(e types.Entry, kind SectionKind) EntryView {
	view := EntryView{
		Title:        e.Title,
		Organization: e.Organization,
		Location:     e.Location,
		DateRange:    FormatDateRange(e),
		Description:  ParseDescription(e.Description),
		Skills:       append([]string(nil), e.Skills...),
	}
	view.URLHref, view.URLText = NormalizeURL(e.URL)
	if kind == KindReferences {
		// References repurpose the date fields as phone and email.
		view.Phone, view.Email = e.StartDate, e.EndDate
		view.DateRange = ""
	}
	return view
}
