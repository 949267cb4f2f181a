package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mkarlsen/magnitude/internal/catalog"
	"github.com/mkarlsen/magnitude/internal/scale"
	"github.com/mkarlsen/magnitude/internal/units"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ScaleInput defines the input schema for the scale tool.
type ScaleInput struct {
	Target    string   `json:"target" jsonschema:"required,Object to rescale"`
	Reference string   `json:"reference" jsonschema:"required,Object whose size the target takes on"`
	Exclude   []string `json:"exclude,omitempty" jsonschema:"Keys to leave out of the results"`
	Limit     int      `json:"limit,omitempty" jsonschema:"Max results 1-100, default 10"`
}

// scaleResult is the JSON payload returned by the scale tool.
type scaleResult struct {
	ScaleFactor float64       `json:"scale_factor"`
	Objects     []scaledMatch `json:"objects"`
	Count       int           `json:"count"`
}

type scaledMatch struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Meters    float64 `json:"meters"`
	Formatted string  `json:"formatted"`
}

// NewScaleHandler creates the scale tool handler.
func NewScaleHandler(deps *Dependencies) mcp.ToolHandlerFor[ScaleInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ScaleInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.Target == "" || input.Reference == "" {
			return ErrorResult("Target and reference keys are required", "Provide both keys"), nil, nil
		}

		limit := input.Limit
		if limit <= 0 {
			limit = 10
		}
		if limit > 100 {
			return ErrorResult("Limit must be 1-100", "Reduce limit value"), nil, nil
		}

		factor, err := deps.Engine.ScaleFactor(input.Target, input.Reference)
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return ErrorResult("Object not found: "+err.Error(), "Use the search tool to find valid keys"), nil, nil
		case errors.Is(err, scale.ErrZeroDiameter):
			return ErrorResult("Target has a zero diameter", "Pick a target with a non-zero size"), nil, nil
		case err != nil:
			return nil, nil, err
		}

		scaled, err := deps.Engine.ScaleTo(input.Target, input.Reference, input.Exclude)
		if err != nil {
			return nil, nil, err
		}

		result := scaleResult{ScaleFactor: factor, Objects: []scaledMatch{}}
		for _, s := range scaled {
			if len(result.Objects) >= limit {
				break
			}
			result.Objects = append(result.Objects, scaledMatch{
				Key:       s.Key,
				Name:      s.Name,
				Meters:    s.Meters,
				Formatted: units.FormatAuto(s.Meters, ""),
			})
		}
		result.Count = len(result.Objects)
		jsonBytes, _ := json.MarshalIndent(result, "", "  ")

		deps.Logger.Info("scale completed", "target", input.Target, "reference", input.Reference)
		return TextResult(string(jsonBytes)), nil, nil
	}
}
