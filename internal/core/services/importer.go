package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/maele-app/maele-cli/internal/core/domain"
	"github.com/maele-app/maele-cli/internal/core/ports/driven"
	"github.com/maele-app/maele-cli/internal/core/ports/driving"
	"github.com/maele-app/maele-cli/internal/logger"
)

// Ensure ImportService implements the interface.
var _ driving.ImportService = (*ImportService)(nil)

// ImportService bulk-loads candidate records into the store, skipping
// duplicates by exact text match.
type ImportService struct {
	store driven.ProverbStore
}

// NewImportService creates a new import service.
func NewImportService(store driven.ProverbStore) *ImportService {
	return &ImportService{store: store}
}

// Import runs a single linear pass: load existing, classify each
// candidate, persist the admitted ones, report counts.
//
// The duplicate snapshot is taken over the existing set once, before the
// loop. With CatchBatchDuplicates off that matches the historical
// behaviour: a later candidate duplicating an earlier candidate of the
// same batch is admitted.
func (s *ImportService) Import(ctx context.Context, candidates []domain.Input, opts driving.ImportOptions) (*driving.ImportReport, error) {
	existing, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading existing proverbs: %w", err)
	}

	seen := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		seen[p.Key()] = struct{}{}
	}

	report := &driving.ImportReport{}
	for _, c := range candidates {
		p := domain.Normalize(c)
		if p.Text == "" {
			// Lenient path: silently skipped, unlike the admin path.
			report.SkippedEmpty++
			continue
		}

		if _, dup := seen[p.Key()]; dup {
			report.SkippedDuplicate++
			logger.Debug("skipping duplicate %q", p.Text)
			continue
		}

		if _, err := s.store.Add(ctx, p); err != nil {
			// One failed write does not stop the rest of the batch.
			report.Failed++
			logger.Warn("failed to persist %q: %v", p.Text, err)
			continue
		}
		report.Admitted++

		if opts.CatchBatchDuplicates {
			seen[p.Key()] = struct{}{}
		}
	}

	logger.Info("import finished: %d admitted, %d empty, %d duplicate, %d failed",
		report.Admitted, report.SkippedEmpty, report.SkippedDuplicate, report.Failed)
	return report, nil
}

// ImportFile reads a JSON array of candidate objects from path and
// imports it. Missing fields default to empty strings.
func (s *ImportService) ImportFile(ctx context.Context, path string, opts driving.ImportOptions) (*driving.ImportReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var candidates []domain.Input
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("parsing import file %s: %w", path, err)
	}

	return s.Import(ctx, candidates, opts)
}
