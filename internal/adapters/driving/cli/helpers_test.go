package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maele-app/maele-cli/internal/adapters/driven/storage/memory"
	"github.com/maele-app/maele-cli/internal/core/domain"
	"github.com/maele-app/maele-cli/internal/core/services"
)

// setupTestServices wires the commands to a seeded in-memory store and
// returns a cleanup restoring the previous services.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	store := memory.NewProverbStore()
	seed := []domain.Input{
		{Text: "Khomo ke thota", Meaning: "Leruo ke letlotlo", Translation: "Cattle are wealth", Category: "Animals"},
		{Text: "Metsi ke bophelo", Meaning: "Bohlokoa ba metsi", Translation: "Water is life", Category: "Nature"},
		{Text: "Tau e rora", Meaning: "Matla a tau"},
	}
	for _, in := range seed {
		_, err := store.Add(context.Background(), domain.Normalize(in))
		require.NoError(t, err)
	}

	oldCatalog, oldAdmin, oldImport := catalogService, adminService, importService
	SetServices(
		services.NewCatalogService(store),
		services.NewAdminService(store, "sekoti"),
		services.NewImportService(store),
	)

	return func() {
		SetServices(oldCatalog, oldAdmin, oldImport)
	}
}

// execute runs the root command with args and returns the combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
