package transfer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cvmaker/internal/storage"
	"github.com/jonathan/cvmaker/internal/store"
	"github.com/jonathan/cvmaker/internal/types"
)

func TestRoundTrip_IsLossless(t *testing.T) {
	original := types.DefaultResume()
	original.Sections[1].Entries[0].Skills = []string{"Go", "PostgreSQL"}
	original.Sections[0].Column = types.ColumnRight

	data, err := Marshal(original)
	require.NoError(t, err)

	restored, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestRoundTrip_StoreSnapshot(t *testing.T) {
	ctx := context.Background()
	st := store.New(ctx, storage.NewFileStore(t.TempDir()))
	st.UpdateTitle(ctx, "Snapshot CV")

	// Snapshots are clones; entries without skills must still export as
	// arrays so the document passes its own import shape check.
	snapshot := st.Snapshot()

	data, err := Marshal(snapshot)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"skills": null`)

	restored, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, snapshot, restored)
}

func TestMarshal_StableFieldNames(t *testing.T) {
	data, err := Marshal(types.DefaultResume())
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"fullName"`)
	assert.Contains(t, s, `"accentColor"`)
	assert.Contains(t, s, `"updatedAt"`)
	assert.Contains(t, s, `"startDate"`)
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"id": "x",`))
	require.Error(t, err)

	var importErr *ImportError
	assert.ErrorAs(t, err, &importErr)
}

func TestParse_RejectsWrongShape(t *testing.T) {
	_, err := Parse([]byte(`{"id": "x", "title": "CV", "sections": 7}`))
	require.Error(t, err)

	var importErr *ImportError
	assert.ErrorAs(t, err, &importErr)
}

func TestExportFilename(t *testing.T) {
	r := types.Resume{Title: "Mi CV"}
	assert.Equal(t, "Mi CV.json", ExportFilename(r))

	r.Title = ""
	assert.Equal(t, "cv.json", ExportFilename(r))

	r.Title = "   "
	assert.Equal(t, "cv.json", ExportFilename(r))

	r.Title = `a/b\c:"d`
	assert.Equal(t, "a_b_c__d.json", ExportFilename(r))
}

func TestWriteFile_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.json")
	original := types.DefaultResume()

	require.NoError(t, WriteFile(path, original))

	restored, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var importErr *ImportError
	assert.ErrorAs(t, err, &importErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
