package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for maele resources.
const uriScheme = "maele://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the full collection.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "proverbs",
		Name:        "proverbs",
		Description: "The full Basotho proverb collection",
		MIMEType:    "application/json",
	}, s.handleProverbsResource)

	// Template for one category's proverbs.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "categories/{category}",
		Name:        "category-proverbs",
		Description: "Proverbs in a specific category",
		MIMEType:    "application/json",
	}, s.handleCategoryResource)
}

// handleProverbsResource returns the full collection.
func (s *Server) handleProverbsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	proverbs, err := s.ports.Catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing proverbs: %w", err)
	}

	data, err := json.MarshalIndent(toOutputs(proverbs), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling proverbs: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleCategoryResource returns the proverbs of one category.
func (s *Server) handleCategoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	category := extractCategory(req.Params.URI)
	if category == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	proverbs, err := s.ports.Catalog.ByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("listing category %q: %w", category, err)
	}

	data, err := json.MarshalIndent(toOutputs(proverbs), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling proverbs: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCategory extracts the category from a URI like maele://categories/{category}.
func extractCategory(uri string) string {
	const prefix = uriScheme + "categories/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
