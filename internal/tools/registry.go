package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all tools with the MCP server.
// This is called from main after server creation but before Run().
func RegisterAll(server *mcp.Server, deps *Dependencies) {
	// Ping tool - test/placeholder
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ping",
		Description: "Test tool - responds with pong or echoes input",
	}, NewPingHandler(deps))

	// Lookup tool - retrieve one object with formatted size
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lookup",
		Description: "Retrieve a catalog object by key with its size in readable units",
	}, NewLookupHandler(deps))

	// Search tool - substring and tag filtering
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search",
		Description: "Search catalog objects by name/description substring and tags",
	}, NewSearchHandler(deps))

	// Compare tool - pairwise size comparison
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare",
		Description: "Compare the sizes of two catalog objects",
	}, NewCompareHandler(deps))

	// Scale tool - proportional catalog rescale
	mcp.AddTool(server, &mcp.Tool{
		Name:        "scale",
		Description: "Rescale the catalog as if the target object were reference-sized",
	}, NewScaleHandler(deps))

	// Analogy tool - nearest-match scale analogies
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analogy",
		Description: "Build a scale analogy: a is to b as c is to the nearest catalog match",
	}, NewAnalogyHandler(deps))
}
