// Package hexcolor implements the sRGB color model the palette pipeline
// works in: canonical "#rrggbb" strings, the sRGB transfer function pair,
// WCAG relative luminance and contrast, and gamma-space blending.
package hexcolor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Color is an sRGB color in its canonical form: a lowercase six-digit hex
// string with a leading '#', e.g. "#cc241d". The zero value ("") means
// "no color" and is used throughout the palette pipeline for absent slots.
type Color string

const (
	White Color = "#ffffff"
	Black Color = "#000000"
)

var hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{6})$`)

// Parse normalizes text into a canonical Color. It accepts only the full
// six-digit "#RRGGBB" form (case-insensitive, surrounding whitespace
// ignored). Shorthand forms and named colors are rejected. The second
// return value reports whether the input was a valid color.
func Parse(text string) (Color, bool) {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", false
	}
	return Color("#" + strings.ToLower(m[1])), true
}

// FromRGB builds the canonical Color for a byte triple.
func FromRGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// RGB returns the color's byte triple. The receiver must be canonical;
// Parse and FromRGB are the only constructors.
func (c Color) RGB() (r, g, b uint8) {
	r = parseChannel(string(c)[1:3])
	g = parseChannel(string(c)[3:5])
	b = parseChannel(string(c)[5:7])
	return r, g, b
}

func parseChannel(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		// Unreachable for canonical colors; RGB's contract requires one.
		return 0
	}
	return uint8(v)
}
