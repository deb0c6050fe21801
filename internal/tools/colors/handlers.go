package colors

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/rgb-split/internal/middleware"
	"github.com/evert/rgb-split/internal/pkg/color"
	"github.com/evert/rgb-split/internal/pkg/response"
)

// --- split_rgb ---

type SplitRGBInput struct {
	Hex string `json:"hex" jsonschema:"Hex color as six hex digits with an optional leading #, e.g. #FFCC00"`
}

type SplitRGBOutput struct {
	Hex   string      `json:"hex"`
	RGB   color.RGB   `json:"rgb"`
	Split color.Split `json:"split"`
}

func createSplitRGBHandler() mcp.ToolHandlerFor[SplitRGBInput, SplitRGBOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SplitRGBInput) (*mcp.CallToolResult, SplitRGBOutput, error) {
		// Surrounding whitespace is ignored, as in the web UI.
		result, err := color.SplitHex(strings.TrimSpace(input.Hex))
		if err != nil {
			return nil, SplitRGBOutput{}, middleware.HandleColorError(err)
		}

		output := SplitRGBOutput{
			Hex:   result.RGB.Hex(),
			RGB:   result.RGB,
			Split: result.Split,
		}

		rb := response.New()
		rb.Header("RGB Split %s", output.Hex)
		rb.KeyValue("Red", result.RGB.R)
		rb.KeyValue("Green", result.RGB.G)
		rb.KeyValue("Blue", result.RGB.B)
		rb.Blank()
		rb.Section("Share of R+G+B")
		rb.Bar("R", result.Split.R)
		rb.Bar("G", result.Split.G)
		rb.Bar("B", result.Split.B)
		if sum := result.Split.R + result.Split.G + result.Split.B; sum != 100 && sum != 0 {
			rb.Blank()
			rb.Line("Percentages are rounded per channel and total %d%%.", sum)
		}

		return rb.TextResult(), output, nil
	}
}

// --- normalize_hex ---

type NormalizeHexInput struct {
	Hex string `json:"hex" jsonschema:"Hex color to normalize, e.g. ffcc00 or #FfCc00"`
}

type NormalizeHexOutput struct {
	Hex string `json:"hex"`
}

func createNormalizeHexHandler() mcp.ToolHandlerFor[NormalizeHexInput, NormalizeHexOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input NormalizeHexInput) (*mcp.CallToolResult, NormalizeHexOutput, error) {
		hex, err := color.Normalize(input.Hex)
		if err != nil {
			return nil, NormalizeHexOutput{}, middleware.HandleColorError(err)
		}

		rb := response.New()
		rb.KeyValue("Hex", hex)
		return rb.TextResult(), NormalizeHexOutput{Hex: hex}, nil
	}
}
