package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_ShowsAllProverbs(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "3 proverb(s):")
	assert.Contains(t, out, "Khomo ke thota")
	assert.Contains(t, out, "Metsi ke bophelo")
	assert.Contains(t, out, "Tau e rora")
}

func TestCategoriesCmd_SortedUnique(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "categories")

	require.NoError(t, err)
	assert.Equal(t, "Animals\nNature\nUncategorized\n", out)
}

func TestCategoryCmd_FiltersByCategory(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "category", "Animals")

	require.NoError(t, err)
	assert.Contains(t, out, `1 proverb(s) in "Animals":`)
	assert.Contains(t, out, "Khomo ke thota")
	assert.NotContains(t, out, "Metsi ke bophelo")
}

func TestCategoryCmd_EmptyCategory(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "category", "Weather")

	require.NoError(t, err)
	assert.Contains(t, out, `No proverbs in category "Weather".`)
}

func TestRandomCmd_PicksAProverb(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "random")

	require.NoError(t, err)
	assert.Contains(t, out, "Tlhaloso (Sesotho):")
}
