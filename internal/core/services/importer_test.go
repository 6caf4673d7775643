package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maele-app/maele-cli/internal/adapters/driven/storage/memory"
	"github.com/maele-app/maele-cli/internal/core/domain"
	"github.com/maele-app/maele-cli/internal/core/ports/driving"
)

func TestImportService_Import(t *testing.T) {
	store := memory.NewProverbStore()
	svc := NewImportService(store)
	ctx := context.Background()

	report, err := svc.Import(ctx, []domain.Input{
		{Text: "Khomo ke thota", Meaning: "leruo"},
		{Text: "Tau e rora"},
	}, driving.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Admitted)

	stored, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	// Lenient path: empty meaning is allowed.
	assert.Empty(t, stored[1].Meaning)
	assert.Equal(t, domain.DefaultCategory, stored[1].Category)
	assert.Equal(t, []string{"tau", "e", "rora"}, stored[1].Keywords)
}

func TestImportService_SkipsEmptyText(t *testing.T) {
	svc := NewImportService(memory.NewProverbStore())

	report, err := svc.Import(context.Background(), []domain.Input{
		{Text: "   ", Meaning: "m"},
		{Text: "", Meaning: "m"},
	}, driving.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Admitted)
	assert.Equal(t, 2, report.SkippedEmpty)
}

func TestImportService_SkipsExistingDuplicates(t *testing.T) {
	store := memory.NewProverbStore()
	ctx := context.Background()
	_, err := store.Add(ctx, domain.Normalize(domain.Input{Text: "Khomo ke thota"}))
	require.NoError(t, err)

	svc := NewImportService(store)
	report, err := svc.Import(ctx, []domain.Input{
		{Text: "  KHOMO KE THOTA "},
		{Text: "Tau e rora"},
	}, driving.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Admitted)
	assert.Equal(t, 1, report.SkippedDuplicate)
}

func TestImportService_BatchDuplicateSlipsThrough(t *testing.T) {
	// The duplicate snapshot is fixed before the loop, so a within-batch
	// duplicate is admitted when strict mode is off.
	store := memory.NewProverbStore()
	svc := NewImportService(store)
	ctx := context.Background()

	report, err := svc.Import(ctx, []domain.Input{
		{Text: "Khomo ke thota"},
		{Text: ""},
		{Text: "khomo ke thota"},
	}, driving.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Admitted)
	assert.Equal(t, 1, report.SkippedEmpty)
	assert.Equal(t, 0, report.SkippedDuplicate)
}

func TestImportService_CatchBatchDuplicates(t *testing.T) {
	store := memory.NewProverbStore()
	svc := NewImportService(store)
	ctx := context.Background()

	report, err := svc.Import(ctx, []domain.Input{
		{Text: "Khomo ke thota"},
		{Text: ""},
		{Text: "khomo ke thota"},
	}, driving.ImportOptions{CatchBatchDuplicates: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Admitted)
	assert.Equal(t, 1, report.SkippedEmpty)
	assert.Equal(t, 1, report.SkippedDuplicate)

	stored, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestImportService_ImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proverbs.json")
	payload := `[
		{"text": "Khomo ke thota", "meaning": "leruo", "category": "Animals"},
		{"text": "Tau e rora", "translation": "the lion roars"},
		{"meaning": "no text at all"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0600))

	store := memory.NewProverbStore()
	svc := NewImportService(store)

	report, err := svc.ImportFile(context.Background(), path, driving.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Admitted)
	assert.Equal(t, 1, report.SkippedEmpty)
}

func TestImportService_ImportFile_Missing(t *testing.T) {
	svc := NewImportService(memory.NewProverbStore())

	_, err := svc.ImportFile(context.Background(), "/nonexistent/proverbs.json", driving.ImportOptions{})
	assert.Error(t, err)
}
