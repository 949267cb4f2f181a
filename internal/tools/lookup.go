package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mkarlsen/magnitude/internal/catalog"
	"github.com/mkarlsen/magnitude/internal/scale"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LookupInput defines the input schema for the lookup tool.
type LookupInput struct {
	Key       string `json:"key" jsonschema:"required,Catalog key of the object"`
	Unit      string `json:"unit,omitempty" jsonschema:"Optional unit symbol for the formatted size"`
	Precision int    `json:"precision,omitempty" jsonschema:"Significant figures, default 3"`
}

// lookupResult is the JSON payload returned by the lookup tool.
type lookupResult struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Meters      float64  `json:"meters"`
	RangeMin    float64  `json:"range_min"`
	RangeMax    float64  `json:"range_max"`
	Formatted   string   `json:"formatted"`
	ScaleGroup  string   `json:"scale_group"`
}

// NewLookupHandler creates the lookup tool handler.
func NewLookupHandler(deps *Dependencies) mcp.ToolHandlerFor[LookupInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LookupInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.Key == "" {
			return ErrorResult("Key cannot be empty", "Provide a catalog object key"), nil, nil
		}

		entry, err := deps.Engine.Catalog().Get(input.Key)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return ErrorResult("Object not found: "+input.Key, "Use the search tool to find valid keys"), nil, nil
			}
			return nil, nil, err
		}

		precision := input.Precision
		if precision <= 0 {
			precision = 3
		}
		formatted, err := deps.Engine.FormatSize(input.Key, precision, input.Unit)
		if err != nil {
			return ErrorResult("Unknown unit: "+input.Unit, "Use one of the 21 metric prefixes, ym through Ym"), nil, nil
		}

		meters := entry.Size()
		min, max := entry.Bounds()
		result := lookupResult{
			Key:         entry.Key,
			Name:        entry.Name,
			Description: entry.Description,
			Tags:        entry.Tags,
			Meters:      meters,
			RangeMin:    min,
			RangeMax:    max,
			Formatted:   formatted,
			ScaleGroup:  scale.Group(meters),
		}
		jsonBytes, _ := json.MarshalIndent(result, "", "  ")

		deps.Logger.Debug("lookup completed", "key", input.Key)
		return TextResult(string(jsonBytes)), nil, nil
	}
}
