package driven

import (
	"context"

	"github.com/maele-app/maele-cli/internal/core/domain"
)

// ProverbStore is the document-store boundary: a remote, schemaless
// collection of proverb records keyed by an opaque identifier. Calls go
// over the network and may fail transiently; implementations return
// classified errors and never panic.
//
// The store does not enforce the text-uniqueness invariant. Services
// enforce it at write time against a fresh List.
type ProverbStore interface {
	// List streams the full collection into memory.
	// Every view is recomputed from a fresh full read; there is no cache.
	List(ctx context.Context) ([]domain.Proverb, error)

	// Add persists a new record and returns its store-assigned identifier.
	Add(ctx context.Context, p domain.Proverb) (string, error)

	// Set overwrites the record with the given identifier in full.
	// Last write wins; there is no version check.
	Set(ctx context.Context, id string, p domain.Proverb) error

	// Delete removes the record with the given identifier.
	Delete(ctx context.Context, id string) error
}
