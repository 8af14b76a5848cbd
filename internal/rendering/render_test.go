package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cvmaker/internal/types"
)

func scenarioResume() types.Resume {
	r := types.DefaultResume()
	r.Contact.FullName = "Ana Ruiz"
	r.Sections[1].Entries = []types.Entry{{
		ID:        "e1",
		Title:     "Engineer",
		StartDate: "01/2023",
		Current:   true,
	}}
	return r
}

func TestRender_EveryTemplateShowsCurrentDateRange(t *testing.T) {
	r := scenarioResume()

	for _, name := range Templates() {
		r.Settings.Template = name
		out, err := Render(r)
		require.NoError(t, err, name)

		assert.Contains(t, out, "Ana Ruiz", name)
		assert.Contains(t, out, "Engineer", name)
		assert.Contains(t, out, "01/2023 – Presente", name)
	}
}

func TestRender_TemplatesProduceDistinctMarkup(t *testing.T) {
	r := scenarioResume()
	seen := make(map[string]types.TemplateType)

	for _, name := range Templates() {
		r.Settings.Template = name
		out, err := Render(r)
		require.NoError(t, err)

		prev, dup := seen[out]
		assert.False(t, dup, "%s and %s rendered identically", prev, name)
		seen[out] = name
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	r := scenarioResume()

	first, err := Render(r)
	require.NoError(t, err)
	second, err := Render(r)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRender_OmitsHiddenSections(t *testing.T) {
	r := scenarioResume()
	r.Sections[3].Title = "Stack técnico"
	r.Sections[3].Visible = false

	for _, name := range Templates() {
		r.Settings.Template = name
		out, err := Render(r)
		require.NoError(t, err)
		assert.NotContains(t, out, "Stack técnico", name)
	}
}

func TestRender_EscapesUserContent(t *testing.T) {
	r := scenarioResume()
	r.Contact.FullName = `<script>alert("x")</script>`

	for _, name := range Templates() {
		r.Settings.Template = name
		out, err := Render(r)
		require.NoError(t, err)
		assert.NotContains(t, out, `<script>alert`, name)
	}
}

func TestForTemplate_UnknownFallsBackToClassic(t *testing.T) {
	s := ForTemplate(types.TemplateType("brutalist"))
	assert.Equal(t, types.TemplateClassic, s.Name())
}

func TestRender_ExecutiveSplitsColumns(t *testing.T) {
	r := scenarioResume()
	r.Settings.Template = types.TemplateExecutive

	out, err := Render(r)
	require.NoError(t, err)

	// The main column precedes the rail, so experience content must come
	// before the skills list.
	engineerAt := strings.Index(out, "Engineer")
	skillsAt := strings.Index(out, "React")
	require.Greater(t, engineerAt, -1)
	require.Greater(t, skillsAt, -1)
	assert.Less(t, engineerAt, skillsAt)
}

func TestRender_ModernUsesBulletBlocks(t *testing.T) {
	r := scenarioResume()
	r.Settings.Template = types.TemplateModern
	r.Sections[1].Entries[0].Description = "* Built the **billing** service\n* Cut costs"

	out, err := Render(r)
	require.NoError(t, err)

	assert.Contains(t, out, "<span>Built the <strong>billing</strong> service</span>")
	assert.Contains(t, out, "<span>Cut costs</span>")
}

func TestRender_EveryTemplateShowsProjectSkills(t *testing.T) {
	r := scenarioResume()
	projects := types.NewSection(types.SectionProjects, "Proyectos")
	entry := types.NewEntry()
	entry.Title = "Render farm"
	entry.Skills = []string{"Zig", "Htmx"}
	projects.Entries = []types.Entry{entry}
	r.Sections = append(r.Sections, projects)

	for _, name := range Templates() {
		r.Settings.Template = name
		out, err := Render(r)
		require.NoError(t, err, name)

		assert.Contains(t, out, "Render farm", name)
		assert.Contains(t, out, "Zig", name)
		assert.Contains(t, out, "Htmx", name)
	}
}

func TestTemplates_StableOrder(t *testing.T) {
	want := []types.TemplateType{
		types.TemplateClassic,
		types.TemplateModern,
		types.TemplateClean,
		types.TemplateExecutive,
	}
	assert.Equal(t, want, Templates())
}
