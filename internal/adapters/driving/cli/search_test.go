package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [keyword]", searchCmd.Use)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "search")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_MatchesText(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "search", "khomo")

	assert.NoError(t, err)
	assert.Contains(t, out, "Found 1 proverb(s)")
	assert.Contains(t, out, "Khomo ke thota")
}

func TestSearchCmd_MatchesMeaningByDefault(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "search", "letlotlo")

	assert.NoError(t, err)
	assert.Contains(t, out, "Khomo ke thota")
}

func TestSearchCmd_MeaningsFlagOff(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { searchMeanings = true }()

	out, err := execute(t, "search", "--meanings=false", "letlotlo")

	assert.NoError(t, err)
	assert.Contains(t, out, `No proverbs found for "letlotlo".`)
}

func TestSearchCmd_NoMatches(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "search", "lefatse")

	assert.NoError(t, err)
	assert.Contains(t, out, `No proverbs found for "lefatse".`)
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { searchJSON = false }()

	out, err := execute(t, "search", "--json", "khomo")

	require.NoError(t, err)
	assert.Contains(t, out, `"text": "Khomo ke thota"`)
	assert.Contains(t, out, `"category": "Animals"`)
}
