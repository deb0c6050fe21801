package validate

import (
	"fmt"
	"regexp"
)

// hexColorRE matches a six-digit hex color with an optional leading '#'.
// Three-digit shorthand (#RGB) is rejected.
var hexColorRE = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// HexColor validates that the given string is a six-digit hex color,
// optionally prefixed with '#'.
func HexColor(hex string) error {
	if !hexColorRE.MatchString(hex) {
		return fmt.Errorf("invalid hex color %q — expected 6 hex digits, optionally prefixed with '#'", hex)
	}
	return nil
}
