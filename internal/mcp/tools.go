package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/five82/htmlref/internal/browse"
	"github.com/five82/htmlref/internal/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "search_tags",
		Description: "Search HTML tags by name or description, optionally within one category",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Case-insensitive substring of the tag name or description"},
				"category": {"type": "string", "description": "Category label; omit for all categories"}
			}
		}`),
	}, s.handleSearchTags)

	s.server.AddTool(&mcp.Tool{
		Name:        "get_tag",
		Description: "Get the full reference entry for one HTML tag",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"name": {"type": "string", "description": "Exact tag name, e.g. \"div\""}
			},
			"required": ["name"]
		}`),
	}, s.handleGetTag)

	s.server.AddTool(&mcp.Tool{
		Name:        "list_categories",
		Description: "List tag categories with the number of tags in each",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleListCategories)
}

type searchResult struct {
	Category string        `json:"category"`
	Count    int           `json:"count"`
	Tags     []browse.Card `json:"tags"`
}

func (s *Server) handleSearchTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Query    string `json:"query"`
		Category string `json:"category"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return nil, err
	}

	list := browse.NewList(s.catalog)
	if params.Category != "" && !list.SelectCategory(params.Category) {
		return errorResult(fmt.Sprintf("unknown category %q", params.Category)), nil
	}
	list.SetSearch(params.Query)

	page := list.Page()
	s.logger.Debug("search_tags", "query", params.Query, "category", list.Category(), "count", page.Count)

	return jsonResult(searchResult{
		Category: list.Category(),
		Count:    page.Count,
		Tags:     page.Cards,
	})
}

func (s *Server) handleGetTag(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Name string `json:"name"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return nil, err
	}

	page := s.detail.Resolve(params.Name)
	if !page.Found {
		s.logger.Debug("get_tag miss", "name", params.Name)
		return errorResult(page.Message), nil
	}
	return jsonResult(page.Record)
}

type categoryList struct {
	All        string                  `json:"all"`
	Total      int                     `json:"total"`
	Categories []catalog.CategoryCount `json:"categories"`
}

func (s *Server) handleListCategories(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(categoryList{
		All:        s.catalog.AllLabel(),
		Total:      s.catalog.Len(),
		Categories: s.catalog.CountByCategory(),
	})
}

func decodeArgs(req *mcp.CallToolRequest, v any) error {
	if req.Params == nil || len(req.Params.Arguments) == 0 {
		return nil
	}
	if err := json.Unmarshal(req.Params.Arguments, v); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
