// Package mcp provides an MCP (Model Context Protocol) server adapter for
// maele. It lets AI assistants search and browse the proverb collection.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
