package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkarlsen/magnitude/internal/catalog"
	"github.com/mkarlsen/magnitude/internal/scale"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AnalogyInput defines the input schema for the analogy tool.
type AnalogyInput struct {
	A string `json:"a" jsonschema:"required,First object of the ratio"`
	B string `json:"b" jsonschema:"required,Second object of the ratio"`
	C string `json:"c" jsonschema:"required,Object to rescale by the a-to-b ratio"`
}

// analogyResult is the JSON payload returned by the analogy tool.
type analogyResult struct {
	Text     string      `json:"text"`
	Ratio    float64     `json:"ratio"`
	Expected float64     `json:"expected_meters"`
	Match    compareSide `json:"match"`
	Accuracy float64     `json:"accuracy"`
}

// NewAnalogyHandler creates the analogy tool handler.
func NewAnalogyHandler(deps *Dependencies) mcp.ToolHandlerFor[AnalogyInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalogyInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.A == "" || input.B == "" || input.C == "" {
			return ErrorResult("All three object keys are required", "Provide keys a, b and c"), nil, nil
		}

		a, err := deps.Engine.Analogy(input.A, input.B, input.C)
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return ErrorResult("Object not found: "+err.Error(), "Use the search tool to find valid keys"), nil, nil
		case errors.Is(err, scale.ErrZeroDiameter), errors.Is(err, scale.ErrZeroExpected):
			return ErrorResult("Analogy is undefined: "+err.Error(), "Pick objects with non-zero diameters"), nil, nil
		case err != nil:
			return nil, nil, err
		}

		result := analogyResult{
			Text: fmt.Sprintf("%s is to %s as %s is to %s",
				a.A.Name, a.B.Name, a.C.Name, a.Match.Name),
			Ratio:    a.Ratio,
			Expected: a.Expected,
			Match: compareSide{
				Key:       a.Match.Key,
				Name:      a.Match.Name,
				Meters:    a.Match.Meters,
				Formatted: a.Match.Formatted,
			},
			Accuracy: a.Accuracy,
		}
		jsonBytes, _ := json.MarshalIndent(result, "", "  ")

		deps.Logger.Info("analogy completed", "a", input.A, "b", input.B, "c", input.C,
			"match", a.Match.Key)
		return TextResult(string(jsonBytes)), nil, nil
	}
}
