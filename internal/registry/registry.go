package registry

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/rgb-split/internal/tools/colors"
)

// toolNameRE enforces SEP-986: tool names must match ^[a-zA-Z0-9_-]{1,64}$
var toolNameRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidateToolName checks that a tool name complies with SEP-986.
func ValidateToolName(name string) error {
	if !toolNameRE.MatchString(name) {
		return fmt.Errorf("tool name %q does not match SEP-986 pattern ^[a-zA-Z0-9_-]{1,64}$", name)
	}
	return nil
}

// ToolNames returns the names of every tool RegisterAll adds.
func ToolNames() []string {
	return append([]string(nil), colors.ToolNames...)
}

// RegisterAll registers all tool packages with the server.
func RegisterAll(server *mcp.Server) {
	colors.Register(server)
	slog.Info("registered service", "service", "colors", "tools", colors.ToolNames)
}
