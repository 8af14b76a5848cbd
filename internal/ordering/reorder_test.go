package ordering

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cvmaker/internal/types"
)

func TestReorder_MovesElement(t *testing.T) {
	list := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, []string{"b", "c", "a", "d", "e"}, Reorder(list, 0, 2))
	assert.Equal(t, []string{"e", "a", "b", "c", "d"}, Reorder(list, 4, 0))
	assert.Equal(t, []string{"a", "c", "b", "d", "e"}, Reorder(list, 2, 1))
}

func TestReorder_PreservesLengthAndMultiset(t *testing.T) {
	list := []string{"a", "b", "c", "d", "e"}

	for from := 0; from < len(list); from++ {
		for to := 0; to < len(list); to++ {
			got := Reorder(list, from, to)
			require.Len(t, got, len(list), "from=%d to=%d", from, to)

			sortedGot := slices.Clone(got)
			slices.Sort(sortedGot)
			sortedWant := slices.Clone(list)
			slices.Sort(sortedWant)
			assert.Equal(t, sortedWant, sortedGot, "from=%d to=%d", from, to)

			// The moved element lands at the target position.
			assert.Equal(t, list[from], got[to], "from=%d to=%d", from, to)

			// All other elements keep their relative order.
			rest := make([]string, 0, len(got)-1)
			for i, v := range got {
				if i != to {
					rest = append(rest, v)
				}
			}
			want := make([]string, 0, len(list)-1)
			for i, v := range list {
				if i != from {
					want = append(want, v)
				}
			}
			assert.Equal(t, want, rest, "from=%d to=%d", from, to)
		}
	}
}

func TestReorder_SameIndexIsIdentity(t *testing.T) {
	list := []string{"a", "b", "c"}
	for i := range list {
		got := Reorder(list, i, i)
		assert.Equal(t, list, got)
	}
}

func TestReorder_OutOfRangeIsNoOp(t *testing.T) {
	list := []string{"a", "b", "c"}
	assert.Equal(t, list, Reorder(list, -1, 1))
	assert.Equal(t, list, Reorder(list, 1, -1))
	assert.Equal(t, list, Reorder(list, 3, 0))
	assert.Equal(t, list, Reorder(list, 0, 3))

	var empty []string
	assert.Empty(t, Reorder(empty, 0, 0))
}

func TestReorder_DoesNotMutateInput(t *testing.T) {
	list := []string{"a", "b", "c"}
	_ = Reorder(list, 0, 2)
	assert.Equal(t, []string{"a", "b", "c"}, list)
}

func TestResolveColumn_Defaults(t *testing.T) {
	left := []types.SectionType{
		types.SectionSummary, types.SectionExperience, types.SectionProjects,
		types.SectionCertifications, types.SectionCustom,
	}
	right := []types.SectionType{
		types.SectionEducation, types.SectionSkills,
		types.SectionLanguages, types.SectionReferences,
	}

	for _, st := range left {
		assert.Equal(t, types.ColumnLeft, ResolveColumn(types.Section{Type: st}), "%s", st)
	}
	for _, st := range right {
		assert.Equal(t, types.ColumnRight, ResolveColumn(types.Section{Type: st}), "%s", st)
	}

	// Unknown type falls back to left.
	assert.Equal(t, types.ColumnLeft, ResolveColumn(types.Section{Type: "mystery"}))
}

func TestResolveColumn_ExplicitOverrideWins(t *testing.T) {
	s := types.Section{Type: types.SectionSkills, Column: types.ColumnLeft}
	assert.Equal(t, types.ColumnLeft, ResolveColumn(s))
}

func TestPartition_PreservesDocumentOrder(t *testing.T) {
	sections := []types.Section{
		{ID: "1", Type: types.SectionSummary},
		{ID: "2", Type: types.SectionSkills},
		{ID: "3", Type: types.SectionExperience},
		{ID: "4", Type: types.SectionEducation},
		{ID: "5", Type: types.SectionExperience, Column: types.ColumnRight},
	}

	left, right := Partition(sections)

	var leftIDs, rightIDs []string
	for _, s := range left {
		leftIDs = append(leftIDs, s.ID)
	}
	for _, s := range right {
		rightIDs = append(rightIDs, s.ID)
	}

	assert.Equal(t, []string{"1", "3"}, leftIDs)
	assert.Equal(t, []string{"2", "4", "5"}, rightIDs)
}

func TestInsertSkill_DedupByExactMatch(t *testing.T) {
	skills := InsertSkill(nil, "React")
	skills = InsertSkill(skills, "React")
	assert.Equal(t, []string{"React"}, skills)

	// Dedup is exact, not case-insensitive.
	skills = InsertSkill(skills, "react")
	assert.Equal(t, []string{"React", "react"}, skills)
}

func TestRemoveSkill(t *testing.T) {
	skills := []string{"React", "Go", "React"}
	assert.Equal(t, []string{"Go"}, RemoveSkill(skills, "React"))
	assert.Equal(t, []string{"React", "Go", "React"}, RemoveSkill(skills, "Rust"))
}
