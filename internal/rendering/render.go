package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/cvmaker/internal/types"
)

// Strategy renders a resume document into one visual layout. Rendering is a
// pure function of the document: no internal state, fully reproducible.
type Strategy interface {
	Name() types.TemplateType
	Render(resume types.Resume) (string, error)
}

// htmlStrategy executes one parsed template over the shared view model.
type htmlStrategy struct {
	name types.TemplateType
	tmpl *template.Template
}

func (s *htmlStrategy) Name() types.TemplateType {
	return s.name
}

func (s *htmlStrategy) Render(resume types.Resume) (string, error) {
	var sb strings.Builder
	if err := s.tmpl.Execute(&sb, BuildDocument(resume)); err != nil {
		return "", &RenderError{Message: "failed to execute template " + string(s.name), Cause: err}
	}
	return sb.String(), nil
}

func newStrategy(name types.TemplateType, source string) *htmlStrategy {
	tmpl := template.Must(template.New(string(name)).Funcs(template.FuncMap{
		"inline": InlineHTML,
	}).Parse(source))
	return &htmlStrategy{name: name, tmpl: tmpl}
}

var strategies = map[types.TemplateType]Strategy{
	types.TemplateClassic:   newStrategy(types.TemplateClassic, classicSource),
	types.TemplateModern:    newStrategy(types.TemplateModern, modernSource),
	types.TemplateClean:     newStrategy(types.TemplateClean, cleanSource),
	types.TemplateExecutive: newStrategy(types.TemplateExecutive, executiveSource),
}

// ForTemplate returns the strategy for a template variant. Unknown variants
// fall back to the classic layout.
func ForTemplate(t types.TemplateType) Strategy {
	if s, ok := strategies[t]; ok {
		return s
	}
	return strategies[types.TemplateClassic]
}

// Templates lists the available template variants in a stable order.
func Templates() []types.TemplateType {
	return []types.TemplateType{
		types.TemplateClassic,
		types.TemplateModern,
		types.TemplateClean,
		types.TemplateExecutive,
	}
}

// Render renders the resume with the template selected in its settings.
func Render(resume types.Resume) (string, error) {
	return ForTemplate(resume.Settings.Template).Render(resume)
}
