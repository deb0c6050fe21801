package colors

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/rgb-split/internal/pkg/ptr"
)

// Tool names registered by this package.
const (
	ToolSplitRGB     = "split_rgb"
	ToolNormalizeHex = "normalize_hex"
)

// ToolNames lists every tool Register adds, in registration order.
var ToolNames = []string{ToolSplitRGB, ToolNormalizeHex}

// Register registers the color tools with the MCP server.
func Register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: ToolSplitRGB,
		Description: "Split a hex color (#RRGGBB or RRGGBB) into its red, green and blue values (0-255) " +
			"and each channel's rounded percentage of the channel sum.",
		Annotations: &mcp.ToolAnnotations{
			Title:          "Split Hex Color Into RGB",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  ptr.Bool(false),
		},
	}, createSplitRGBHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolNormalizeHex,
		Description: "Validate a hex color and return its canonical upper-case #RRGGBB form. Surrounding whitespace is ignored.",
		Annotations: &mcp.ToolAnnotations{
			Title:          "Normalize Hex Color",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  ptr.Bool(false),
		},
	}, createNormalizeHexHandler())
}
