package hexcolor

import "math"

// sRGB transfer function and WCAG relative luminance, per the formulas in
// WCAG 2.0. Encode rounds half away from zero (math.Round); the pair is an
// exact inverse over all 256 byte values under that rounding mode.

// Decode converts one 8-bit sRGB channel to linear light in [0, 1].
func Decode(channel uint8) float64 {
	v := float64(channel) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Encode converts a linear-light value back to an 8-bit sRGB channel.
// Input is clamped to [0, 1] before the transfer function is applied.
func Encode(value float64) uint8 {
	value = math.Max(0.0, math.Min(1.0, value))
	var srgb float64
	if value <= 0.0031308 {
		srgb = value * 12.92
	} else {
		srgb = 1.055*math.Pow(value, 1.0/2.4) - 0.055
	}
	return uint8(math.Round(srgb * 255.0))
}

// Linear returns the color's three channels decoded to linear light.
func Linear(c Color) (r, g, b float64) {
	r8, g8, b8 := c.RGB()
	return Decode(r8), Decode(g8), Decode(b8)
}

// FromLinear encodes a linear-light triple to a canonical Color. Channels
// outside [0, 1] are clamped by Encode.
func FromLinear(r, g, b float64) Color {
	return FromRGB(Encode(r), Encode(g), Encode(b))
}

// LuminanceOf combines linear channels into CIE relative luminance.
func LuminanceOf(r, g, b float64) float64 {
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Luminance computes the color's CIE relative luminance in [0, 1].
func Luminance(c Color) float64 {
	return LuminanceOf(Linear(c))
}

// ContrastRatio computes the WCAG contrast ratio between two colors.
// The result is symmetric in its arguments and always >= 1.0.
func ContrastRatio(a, b Color) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}
