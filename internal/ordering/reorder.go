// Package ordering implements the list reorder and column assignment rules
// shared by sections, entries, and skill lists.
package ordering

import (
	"slices"

	"github.com/jonathan/cvmaker/internal/types"
)

// Reorder removes the element at from and reinserts it at to, preserving the
// relative order and identity of every other element. The same splice is used
// at three levels: sections within the document, entries within a section,
// and skills within an entry.
//
// from == to, or any index outside the list, is a no-op: the input slice is
// returned unchanged.
func Reorder[S ~[]E, E any](list S, from, to int) S {
	if from == to || from < 0 || to < 0 || from >= len(list) || to >= len(list) {
		return list
	}
	out := slices.Clone(list)
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, moved)
}

// defaultColumnByType supplies a column when the section has no explicit one.
var defaultColumnByType = map[types.SectionType]types.Column{
	types.SectionSummary:        types.ColumnLeft,
	types.SectionExperience:     types.ColumnLeft,
	types.SectionProjects:       types.ColumnLeft,
	types.SectionCertifications: types.ColumnLeft,
	types.SectionCustom:         types.ColumnLeft,
	types.SectionEducation:      types.ColumnRight,
	types.SectionSkills:         types.ColumnRight,
	types.SectionLanguages:      types.ColumnRight,
	types.SectionReferences:     types.ColumnRight,
}

// ResolveColumn returns the explicit column override when present, else the
// type default, else left. Only the two-column layout consults it.
func ResolveColumn(s types.Section) types.Column {
	if s.Column != "" {
		return s.Column
	}
	if col, ok := defaultColumnByType[s.Type]; ok {
		return col
	}
	return types.ColumnLeft
}

// Partition splits sections into left and right columns, preserving document
// order within each column.
func Partition(sections []types.Section) (left, right []types.Section) {
	for _, s := range sections {
		if ResolveColumn(s) == types.ColumnRight {
			right = append(right, s)
		} else {
			left = append(left, s)
		}
	}
	return left, right
}

// InsertSkill appends the skill unless an exact duplicate already exists.
// Skills use value equality as their identity, so duplicates are rejected at
// insertion rather than distinguished positionally.
func InsertSkill(skills []string, skill string) []string {
	if slices.Contains(skills, skill) {
		return skills
	}
	return append(slices.Clone(skills), skill)
}

// RemoveSkill removes every occurrence of the skill by exact string match.
func RemoveSkill(skills []string, skill string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s != skill {
			out = append(out, s)
		}
	}
	return out
}
