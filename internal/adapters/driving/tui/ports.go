// Package tui provides the interactive terminal user interface for maele.
// It is a driving adapter following the hexagonal architecture.
package tui

import (
	"github.com/maele-app/maele-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog provides read-only browsing of the collection.
	Catalog driving.CatalogService

	// Admin provides the password-gated write operations.
	// Optional: without it the admin view reports that administration
	// is unavailable instead of prompting for a password.
	Admin driving.AdminService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
