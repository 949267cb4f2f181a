package tools

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"github.com/mkarlsen/magnitude/internal/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CompareInput defines the input schema for the compare tool.
type CompareInput struct {
	A string `json:"a" jsonschema:"required,Key of the first object"`
	B string `json:"b" jsonschema:"required,Key of the second object"`
}

// compareResult is the JSON payload returned by the compare tool. The ratio
// is serialized as a string so +Inf (zero-diameter denominator) survives JSON.
type compareResult struct {
	A       compareSide `json:"a"`
	B       compareSide `json:"b"`
	Ratio   string      `json:"ratio"`
	Larger  string      `json:"larger,omitempty"`
	Smaller string      `json:"smaller,omitempty"`
	Text    string      `json:"text"`
}

type compareSide struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Meters    float64 `json:"meters"`
	Formatted string  `json:"formatted"`
}

// NewCompareHandler creates the compare tool handler.
func NewCompareHandler(deps *Dependencies) mcp.ToolHandlerFor[CompareInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CompareInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.A == "" || input.B == "" {
			return ErrorResult("Both object keys are required", "Provide keys a and b"), nil, nil
		}

		c, err := deps.Engine.Compare(input.A, input.B)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return ErrorResult("Object not found: "+err.Error(), "Use the search tool to find valid keys"), nil, nil
			}
			return nil, nil, err
		}

		ratio := "Infinity"
		if !math.IsInf(c.Ratio, 0) {
			ratio = strconv.FormatFloat(c.Ratio, 'g', -1, 64)
		}

		result := compareResult{
			A:       compareSide{Key: c.A.Key, Name: c.A.Name, Meters: c.A.Meters, Formatted: c.A.Formatted},
			B:       compareSide{Key: c.B.Key, Name: c.B.Name, Meters: c.B.Meters, Formatted: c.B.Formatted},
			Ratio:   ratio,
			Larger:  c.Larger,
			Smaller: c.Smaller,
			Text:    c.Text,
		}
		jsonBytes, _ := json.MarshalIndent(result, "", "  ")

		deps.Logger.Info("compare completed", "a", input.A, "b", input.B)
		return TextResult(string(jsonBytes)), nil, nil
	}
}
