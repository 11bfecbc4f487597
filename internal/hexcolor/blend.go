package hexcolor

import "math"

// Blend linearly interpolates between two colors in gamma (byte) space.
// amount 0 returns a, amount 1 returns b. Each channel rounds half away
// from zero, matching Encode's rounding mode.
func Blend(a, b Color, amount float64) Color {
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	return FromRGB(
		blendChannel(ar, br, amount),
		blendChannel(ag, bg, amount),
		blendChannel(ab, bb, amount),
	)
}

func blendChannel(a, b uint8, amount float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*amount))
}
