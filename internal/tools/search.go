package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchInput defines the input schema for the search tool.
type SearchInput struct {
	Query string   `json:"query,omitempty" jsonschema:"Substring to match against names and descriptions"`
	Tags  []string `json:"tags,omitempty" jsonschema:"Optional tag filter (objects must have at least one)"`
	Limit int      `json:"limit,omitempty" jsonschema:"Max results 1-100, default 10"`
}

// searchResult is the JSON payload returned by the search tool.
type searchResult struct {
	Objects []searchMatch `json:"objects"`
	Count   int           `json:"count"`
}

type searchMatch struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Formatted string `json:"formatted"`
}

// NewSearchHandler creates the search tool handler. Query and tag filters
// combine with intersection semantics; an empty query with tags is a pure tag
// filter, and vice versa.
func NewSearchHandler(deps *Dependencies) mcp.ToolHandlerFor[SearchInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.Query == "" && len(input.Tags) == 0 {
			return ErrorResult("Query and tags cannot both be empty", "Provide a query or a tag filter"), nil, nil
		}

		limit := input.Limit
		if limit <= 0 {
			limit = 10
		}
		if limit > 100 {
			return ErrorResult("Limit must be 1-100", "Reduce limit value"), nil, nil
		}

		var keys []string
		if input.Query != "" {
			keys = deps.Engine.Search(input.Query)
			if len(input.Tags) > 0 {
				tagged := make(map[string]bool)
				for _, key := range deps.Engine.FilterByTags(input.Tags) {
					tagged[key] = true
				}
				filtered := keys[:0]
				for _, key := range keys {
					if tagged[key] {
						filtered = append(filtered, key)
					}
				}
				keys = filtered
			}
		} else {
			keys = deps.Engine.FilterByTags(input.Tags)
		}

		result := searchResult{Objects: []searchMatch{}}
		for _, key := range keys {
			if len(result.Objects) >= limit {
				break
			}
			entry, err := deps.Engine.Catalog().Get(key)
			if err != nil {
				return nil, nil, err
			}
			formatted, err := deps.Engine.FormatSize(key, 3, "")
			if err != nil {
				return nil, nil, err
			}
			result.Objects = append(result.Objects, searchMatch{
				Key:       key,
				Name:      entry.Name,
				Formatted: formatted,
			})
		}
		result.Count = len(result.Objects)
		jsonBytes, _ := json.MarshalIndent(result, "", "  ")

		deps.Logger.Info("search completed", "query", input.Query, "results", result.Count)
		return TextResult(string(jsonBytes)), nil, nil
	}
}
