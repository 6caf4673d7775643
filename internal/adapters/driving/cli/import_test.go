package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proverbs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestImportCmd_AddsNewAndSkipsDuplicates(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	path := writeImportFile(t, `[
		{"text": "Khomo ke thota", "meaning": "already present"},
		{"text": "Ntja e loma", "meaning": "kotsi"},
		{"text": "   "},
		{"text": "Phiri e ja e le ngoe", "meaning": "boinotsi"}
	]`)

	out, err := execute(t, "import", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Import complete: 2 new proverb(s) added.")
	assert.Contains(t, out, "Skipped 1 duplicate(s).")
	assert.Contains(t, out, "Skipped 1 record(s) with empty text.")
}

func TestImportCmd_BatchDuplicatesSlipThroughByDefault(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	path := writeImportFile(t, `[
		{"text": "Nonyana e aha sehlaha", "meaning": "m1"},
		{"text": "nonyana e aha sehlaha", "meaning": "m2"}
	]`)

	out, err := execute(t, "import", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Import complete: 2 new proverb(s) added.")
}

func TestImportCmd_StrictCatchesBatchDuplicates(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { importStrict = false }()

	path := writeImportFile(t, `[
		{"text": "Nonyana e aha sehlaha", "meaning": "m1"},
		{"text": "nonyana e aha sehlaha", "meaning": "m2"}
	]`)

	out, err := execute(t, "import", "--strict", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Import complete: 1 new proverb(s) added.")
	assert.Contains(t, out, "Skipped 1 duplicate(s).")
}

func TestImportCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "import", filepath.Join(t.TempDir(), "absent.json"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "import failed")
}
