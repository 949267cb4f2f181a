// Package tools provides MCP tool handlers and registration.
package tools

import (
	"log/slog"

	"github.com/mkarlsen/magnitude/internal/scale"
)

// Dependencies holds shared services for tool handlers.
// Passed to handler factories via closure capture.
type Dependencies struct {
	Engine *scale.Engine
	Logger *slog.Logger
}
