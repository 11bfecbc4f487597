package palette

import "starsync/internal/hexcolor"

// nearBlackLuminance is the cutoff below which a color has no usable
// chromaticity direction to scale along.
const nearBlackLuminance = 0.001

// ScaleToLuminance rescales a color's linear channels so its relative
// luminance lands on target, preserving the ratios between channels (and
// therefore hue). Near-black input is returned unchanged rather than
// dividing by a vanishing luminance. If the scaled color would leave the
// gamut, the factor is reduced so the brightest channel sits exactly at
// 1.0; the color then lands as close to target as the gamut allows.
func ScaleToLuminance(c hexcolor.Color, target float64) hexcolor.Color {
	r, g, b := hexcolor.Linear(c)
	current := hexcolor.LuminanceOf(r, g, b)

	if current < nearBlackLuminance {
		return c
	}

	factor := target / current
	nr, ng, nb := r*factor, g*factor, b*factor

	if max3(nr, ng, nb) > 1.0 {
		factor /= max3(nr, ng, nb)
		nr, ng, nb = r*factor, g*factor, b*factor
	}

	return hexcolor.FromLinear(nr, ng, nb)
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
