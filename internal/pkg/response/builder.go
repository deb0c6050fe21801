package response

import (
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// barWidth is the number of cells a full 100% bar occupies.
const barWidth = 20

// Builder constructs formatted text responses for MCP tool results.
type Builder struct {
	sb strings.Builder
}

// New creates a new response Builder.
func New() *Builder {
	return &Builder{}
}

// Header writes a header line with optional formatting arguments.
func (b *Builder) Header(format string, args ...any) *Builder {
	b.sb.WriteString("═══ ")
	b.sb.WriteString(fmt.Sprintf(format, args...))
	b.sb.WriteString(" ═══\n")
	return b
}

// Section writes a section header (smaller than Header).
func (b *Builder) Section(format string, args ...any) *Builder {
	b.sb.WriteString("── ")
	b.sb.WriteString(fmt.Sprintf(format, args...))
	b.sb.WriteString(" ──\n")
	return b
}

// KeyValue writes a key-value pair.
func (b *Builder) KeyValue(key string, value any) *Builder {
	b.sb.WriteString(fmt.Sprintf("• %s: %v\n", key, value))
	return b
}

// Bar writes a labelled percentage with a proportional bar, e.g.
// "  R  56% ███████████░░░░░░░░░". pct is clamped to [0, 100].
func (b *Builder) Bar(label string, pct int) *Builder {
	pct = max(0, min(pct, 100))
	filled := (pct*barWidth + 50) / 100
	b.sb.WriteString(fmt.Sprintf("  %s %3d%% ", label, pct))
	b.sb.WriteString(strings.Repeat("█", filled))
	b.sb.WriteString(strings.Repeat("░", barWidth-filled))
	b.sb.WriteByte('\n')
	return b
}

// Line writes a plain line with optional formatting arguments.
func (b *Builder) Line(format string, args ...any) *Builder {
	b.sb.WriteString(fmt.Sprintf(format, args...))
	b.sb.WriteByte('\n')
	return b
}

// Blank writes an empty line.
func (b *Builder) Blank() *Builder {
	b.sb.WriteByte('\n')
	return b
}

// Build returns the assembled string.
func (b *Builder) Build() string {
	return b.sb.String()
}

// TextResult constructs an MCP CallToolResult from the builder's text content.
func (b *Builder) TextResult() *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: b.sb.String()}},
	}
}
