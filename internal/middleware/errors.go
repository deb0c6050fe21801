package middleware

import (
	"errors"
	"fmt"

	"github.com/evert/rgb-split/internal/pkg/color"
)

// HandleColorError translates color parsing errors into agent-actionable messages.
// These messages tell the AI what to do next, not the end user.
func HandleColorError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, color.ErrMissingInput) {
		return fmt.Errorf(
			"missing hex color — pass the hex argument as six hex digits, for example \"#FFCC00\"")
	}

	var invalid *color.InvalidHexCodeError
	if errors.As(err, &invalid) {
		return fmt.Errorf(
			"invalid hex code %q — expected exactly six hex digits (0-9, A-F) with an optional leading '#'. "+
				"Three-digit shorthand such as #FFF is not accepted; expand it to #FFFFFF", invalid.Input)
	}

	return err
}
