package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/maele-app/maele-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_proverbs tool.
type SearchInput struct {
	Keyword    string `json:"keyword" jsonschema:"the keyword to match against proverb text"`
	InMeanings bool   `json:"in_meanings,omitempty" jsonschema:"also match against meanings (default false)"`
}

// ProverbOutput represents a single proverb.
type ProverbOutput struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Meaning     string `json:"meaning"`
	Translation string `json:"translation,omitempty"`
	Category    string `json:"category"`
}

// SearchOutput is the output schema for the search_proverbs tool.
type SearchOutput struct {
	Proverbs []ProverbOutput `json:"proverbs"`
	Count    int             `json:"count"`
}

// RandomInput is the (empty) input schema for the random_proverb tool.
type RandomInput struct{}

// RandomOutput is the output schema for the random_proverb tool.
type RandomOutput struct {
	Proverb *ProverbOutput `json:"proverb,omitempty"`
	// Empty is true when the collection holds no proverbs at all.
	Empty bool `json:"empty,omitempty"`
}

// CategoriesInput is the (empty) input schema for the list_categories tool.
type CategoriesInput struct{}

// CategoriesOutput is the output schema for the list_categories tool.
type CategoriesOutput struct {
	Categories []string `json:"categories"`
}

// CategoryInput is the input schema for the proverbs_by_category tool.
type CategoryInput struct {
	Category string `json:"category" jsonschema:"the category name, e.g. Animals"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_proverbs",
		Description: "Search Basotho proverbs by keyword (case-insensitive)",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "random_proverb",
		Description: "Pick one random Basotho proverb",
	}, s.handleRandom)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List all proverb categories",
	}, s.handleCategories)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "proverbs_by_category",
		Description: "List the proverbs in one category",
	}, s.handleByCategory)
}

// handleSearch handles the search_proverbs tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Catalog.Search(ctx, input.Keyword, domain.SearchOptions{
		InMeanings: input.InMeanings,
	})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, SearchOutput{
		Proverbs: toOutputs(results),
		Count:    len(results),
	}, nil
}

// handleRandom handles the random_proverb tool invocation.
func (s *Server) handleRandom(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ RandomInput,
) (*mcp.CallToolResult, RandomOutput, error) {
	p, err := s.ports.Catalog.Random(ctx)
	if errors.Is(err, domain.ErrEmptyCollection) {
		return nil, RandomOutput{Empty: true}, nil
	}
	if err != nil {
		return nil, RandomOutput{}, err
	}

	out := toOutput(p)
	return nil, RandomOutput{Proverb: &out}, nil
}

// handleCategories handles the list_categories tool invocation.
func (s *Server) handleCategories(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ CategoriesInput,
) (*mcp.CallToolResult, CategoriesOutput, error) {
	categories, err := s.ports.Catalog.Categories(ctx)
	if err != nil {
		return nil, CategoriesOutput{}, err
	}
	return nil, CategoriesOutput{Categories: categories}, nil
}

// handleByCategory handles the proverbs_by_category tool invocation.
func (s *Server) handleByCategory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CategoryInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Catalog.ByCategory(ctx, input.Category)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	return nil, SearchOutput{
		Proverbs: toOutputs(results),
		Count:    len(results),
	}, nil
}

func toOutput(p domain.Proverb) ProverbOutput {
	return ProverbOutput{
		ID:          p.ID,
		Text:        p.Text,
		Meaning:     p.Meaning,
		Translation: p.Translation,
		Category:    p.Category,
	}
}

func toOutputs(proverbs []domain.Proverb) []ProverbOutput {
	outputs := make([]ProverbOutput, len(proverbs))
	for i, p := range proverbs {
		outputs[i] = toOutput(p)
	}
	return outputs
}
