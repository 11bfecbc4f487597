package palette

import "starsync/internal/hexcolor"

const saturationSearchIterations = 20

// BoostSaturation scales a color's distance from its own luminance in
// linear light, pushing the channels apart while keeping luminance fixed.
// Factors at or below 1.0 are a no-op; the function never desaturates.
//
// The requested factor may push a channel out of [0, 1]. Instead of
// clamping (which would shift luminance and hue), the largest in-gamut
// factor in [1, factor] is found by bounded binary search and used.
func BoostSaturation(c hexcolor.Color, factor float64) hexcolor.Color {
	if factor <= 1.0 {
		return c
	}

	r, g, b := hexcolor.Linear(c)
	y := hexcolor.LuminanceOf(r, g, b)

	transform := func(k float64) (float64, float64, float64) {
		return y + (r-y)*k, y + (g-y)*k, y + (b-y)*k
	}

	k := largestSatisfying(1.0, factor, saturationSearchIterations, func(k float64) bool {
		tr, tg, tb := transform(k)
		return inGamut(tr) && inGamut(tg) && inGamut(tb)
	})

	return hexcolor.FromLinear(transform(k))
}

func inGamut(v float64) bool {
	return v >= 0.0 && v <= 1.0
}
