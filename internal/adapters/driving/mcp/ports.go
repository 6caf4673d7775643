package mcp

import (
	"github.com/maele-app/maele-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Catalog provides read-only browsing of the proverb collection.
	// The MCP surface is deliberately read-only; admin writes stay behind
	// the password-gated CLI and TUI.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
