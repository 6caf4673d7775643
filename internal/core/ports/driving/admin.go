package driving

import (
	"context"

	"github.com/maele-app/maele-cli/internal/core/domain"
)

// AdminService mutates the proverb collection. All writes validate and
// normalise their input and enforce the text-uniqueness invariant against
// a fresh read of the collection.
type AdminService interface {
	// Authenticate checks the admin password. Returns
	// domain.ErrAdminPasswordNotSet when none is configured and
	// domain.ErrInvalidPassword on mismatch.
	Authenticate(password string) error

	// Add validates, normalises and persists a new record.
	// Returns the persisted record including its assigned identifier.
	Add(ctx context.Context, in domain.Input) (domain.Proverb, error)

	// Update re-validates and overwrites an existing record; keywords are
	// re-derived and the duplicate check excludes the record itself.
	Update(ctx context.Context, id string, in domain.Input) (domain.Proverb, error)

	// Delete removes a record. Deleting an unknown identifier surfaces
	// the store's error; it never crashes.
	Delete(ctx context.Context, id string) error
}
