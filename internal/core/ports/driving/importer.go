package driving

import (
	"context"

	"github.com/maele-app/maele-cli/internal/core/domain"
)

// ImportOptions configures a bulk import run.
type ImportOptions struct {
	// CatchBatchDuplicates extends the duplicate check to candidates
	// admitted earlier in the same batch. Off by default: the duplicate
	// snapshot is taken once over the existing set before the loop, so a
	// later candidate duplicating an earlier one slips through.
	CatchBatchDuplicates bool
}

// ImportReport summarises a bulk import run.
type ImportReport struct {
	// Admitted is the number of records persisted.
	Admitted int

	// SkippedEmpty counts candidates silently dropped for empty text.
	SkippedEmpty int

	// SkippedDuplicate counts candidates rejected by the duplicate check.
	SkippedDuplicate int

	// Failed counts candidates that passed classification but could not
	// be persisted. Individual failures are logged, not aggregated, and
	// do not stop the run.
	Failed int
}

// ImportService bulk-loads candidate records, applying the same duplicate
// rule as the admin path but with lenient validation: only empty text is
// rejected (silently), empty meaning is allowed.
type ImportService interface {
	// Import classifies and persists candidates against a snapshot of the
	// existing collection. A store read failure aborts the run; a failure
	// persisting one record does not stop subsequent records.
	Import(ctx context.Context, candidates []domain.Input, opts ImportOptions) (*ImportReport, error)

	// ImportFile reads a JSON array of candidates from path and imports
	// it. A missing or unreadable file is an immediate error.
	ImportFile(ctx context.Context, path string, opts ImportOptions) (*ImportReport, error)
}
