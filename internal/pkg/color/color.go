// Package color splits hex colors into RGB channels and each channel's
// percentage share of the channel sum.
package color

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/evert/rgb-split/internal/pkg/validate"
)

// ErrMissingInput is returned when no hex color was supplied at all.
var ErrMissingInput = errors.New("missing hex color")

// ErrInvalidHexCode matches any *InvalidHexCodeError via errors.Is.
var ErrInvalidHexCode = errors.New("invalid hex code")

// InvalidHexCodeError reports a hex color that is not six hex digits after
// an optional '#'. Input is the value exactly as the caller supplied it.
type InvalidHexCodeError struct {
	Input string
	Err   error
}

func (e *InvalidHexCodeError) Error() string {
	return fmt.Sprintf("invalid hex code %q", e.Input)
}

func (e *InvalidHexCodeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidHexCode.
func (e *InvalidHexCodeError) Is(target error) bool {
	return target == ErrInvalidHexCode
}

// RGB holds the three 8-bit channel values, each in [0, 255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Split holds each channel's rounded percentage of R+G+B, each in [0, 100].
// The three values are rounded independently and may sum to 99..101.
type Split struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Result is the outcome of splitting one hex color.
type Result struct {
	RGB   RGB   `json:"rgb"`
	Split Split `json:"split"`
}

// ParseHex converts a hex color string (#RRGGBB or RRGGBB, any case) to its
// RGB channels.
func ParseHex(hex string) (RGB, error) {
	if hex == "" {
		return RGB{}, ErrMissingInput
	}
	if err := validate.HexColor(hex); err != nil {
		return RGB{}, &InvalidHexCodeError{Input: hex, Err: err}
	}
	hex = strings.TrimPrefix(hex, "#")
	return RGB{
		R: int(hexToByte(hex[0:2])),
		G: int(hexToByte(hex[2:4])),
		B: int(hexToByte(hex[4:6])),
	}, nil
}

// Percentages returns each channel's share of R+G+B as a whole percentage.
//
// Shares are rounded half away from zero (math.Round), one channel at a
// time; the result is never renormalized to total exactly 100. Pure black
// divides by 1 instead of 0 and yields {0, 0, 0}.
func Percentages(c RGB) Split {
	total := c.R + c.G + c.B
	if total == 0 {
		total = 1
	}
	return Split{
		R: percent(c.R, total),
		G: percent(c.G, total),
		B: percent(c.B, total),
	}
}

// SplitHex parses hex and computes its percentage split. It has no side
// effects and is safe for concurrent use.
func SplitHex(hex string) (Result, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return Result{}, err
	}
	return Result{RGB: rgb, Split: Percentages(rgb)}, nil
}

// Normalize trims surrounding whitespace and returns the canonical
// upper-case "#RRGGBB" form of hex.
func Normalize(hex string) (string, error) {
	trimmed := strings.TrimSpace(hex)
	rgb, err := ParseHex(trimmed)
	if err != nil {
		var invalid *InvalidHexCodeError
		if errors.As(err, &invalid) {
			invalid.Input = hex
		}
		return "", err
	}
	return rgb.Hex(), nil
}

// Hex formats the channels as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func percent(channel, total int) int {
	return int(math.Round(float64(channel) / float64(total) * 100))
}

// hexToByte converts a 2-char hex string to a byte value.
// The caller must have validated the characters.
func hexToByte(hex string) byte {
	var val byte
	for _, c := range hex {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += byte(c - '0')
		case c >= 'a' && c <= 'f':
			val += byte(c-'a') + 10
		case c >= 'A' && c <= 'F':
			val += byte(c-'A') + 10
		}
	}
	return val
}
