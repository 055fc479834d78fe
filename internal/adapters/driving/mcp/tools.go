package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query    string `json:"query" jsonschema:"keywords to search the content index for"`
	Category string `json:"category,omitempty" jsonschema:"restrict results to one category (dashboard, service, metric, user, system, unknown)"`
	Priority string `json:"priority,omitempty" jsonschema:"restrict results to one priority (high, medium, low)"`
	Type     string `json:"type,omitempty" jsonschema:"restrict results to one content type"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	RecordID  string   `json:"record_id"`
	Title     string   `json:"title,omitempty"`
	Text      string   `json:"text,omitempty"`
	Category  string   `json:"category"`
	Priority  string   `json:"priority"`
	Source    string   `json:"source"`
	Tags      []string `json:"tags,omitempty"`
	Relevance int      `json:"relevance"`
}

// InsightsInput is the (empty) input schema for the insights tool.
type InsightsInput struct{}

// InsightsOutput is the output schema for the insights tool.
type InsightsOutput struct {
	TotalContent    int            `json:"total_content"`
	IndexedContent  int            `json:"indexed_content"`
	FailedContent   int            `json:"failed_content"`
	ByCategory      map[string]int `json:"by_category,omitempty"`
	ByPriority      map[string]int `json:"by_priority,omitempty"`
	TotalEdges      int            `json:"total_edges"`
	Recommendations []string       `json:"recommendations,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the discovered content index by keyword",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "insights",
		Description: "Summarise the content index: distributions, graph stats and recommendations",
	}, s.handleInsights)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	filters := domain.SearchFilters{
		Category: domain.Category(input.Category),
		Priority: domain.Priority(input.Priority),
		Type:     domain.ContentType(input.Type),
	}
	results, err := s.ports.Engine.Search(ctx, input.Query, filters)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	if len(results) > limit {
		results = results[:limit]
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		record := results[i].Record
		output.Results[i] = SearchResultOutput{
			RecordID:  record.ID,
			Title:     record.Title,
			Text:      record.Text,
			Category:  string(record.Classification.Category),
			Priority:  string(record.Classification.Priority),
			Source:    string(record.Source),
			Tags:      record.Classification.Tags,
			Relevance: results[i].Relevance,
		}
	}

	return nil, output, nil
}

// handleInsights handles the insights tool invocation.
func (s *Server) handleInsights(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ InsightsInput,
) (*mcp.CallToolResult, InsightsOutput, error) {
	insights, err := s.ports.Engine.Insights(ctx)
	if err != nil {
		return nil, InsightsOutput{}, err
	}

	output := InsightsOutput{
		TotalContent:    insights.Status.TotalContent,
		IndexedContent:  insights.Status.IndexedContent,
		FailedContent:   insights.Status.FailedContent,
		ByCategory:      make(map[string]int, len(insights.ByCategory)),
		ByPriority:      make(map[string]int, len(insights.ByPriority)),
		TotalEdges:      insights.Relationships.TotalEdges,
		Recommendations: insights.Recommendations,
	}
	for category, count := range insights.ByCategory {
		output.ByCategory[string(category)] = count
	}
	for priority, count := range insights.ByPriority {
		output.ByPriority[string(priority)] = count
	}

	return nil, output, nil
}
