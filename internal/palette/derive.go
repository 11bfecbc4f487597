package palette

import "starsync/internal/hexcolor"

// Thresholds governs the dark-theme correction pass. The zero value is not
// usable; start from DefaultThresholds.
type Thresholds struct {
	// DarkBackgroundLuminance is the background luminance below which the
	// accent corrections run. Backgrounds at or above it pass through.
	DarkBackgroundLuminance float64
	// SaturationBoost is the factor applied to each accent on dark themes.
	SaturationBoost float64
	// MaxAccentLuminance caps accent brightness on dark themes.
	MaxAccentLuminance float64
	// MinAccentContrast is the minimum accent/background contrast ratio.
	MinAccentContrast float64
}

// DefaultThresholds returns the tuning the palette ships with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DarkBackgroundLuminance: 0.26,
		SaturationBoost:         1.35,
		MaxAccentLuminance:      0.55,
		MinAccentContrast:       3.5,
	}
}

// minContrastTargetFloor keeps the contrast-fix from scaling an accent to
// a luminance so low the rescale degenerates.
const minContrastTargetFloor = 0.15

// Fallback colors (gruvbox) for slots the source theme does not provide.
const (
	fallbackForeground = hexcolor.Color("#fbf1c7")
	fallbackBackground = hexcolor.Color("#3c3836")
	fallbackRed        = hexcolor.Color("#cc241d")
	fallbackGreen      = hexcolor.Color("#98971a")
	fallbackYellow     = hexcolor.Color("#d79921")
	fallbackBlue       = hexcolor.Color("#458588")
	fallbackPurple     = hexcolor.Color("#b16286")
	fallbackAqua       = hexcolor.Color("#689d6a")
)

// Input carries the source theme's colors. A zero ("") field means the
// theme did not provide that slot and the fallback applies. Orange is
// never an input; it is always derived from red and yellow.
type Input struct {
	Foreground          hexcolor.Color
	Background          hexcolor.Color
	SelectionBackground hexcolor.Color
	Red                 hexcolor.Color
	Green               hexcolor.Color
	Yellow              hexcolor.Color
	Blue                hexcolor.Color
	Purple              hexcolor.Color
	Aqua                hexcolor.Color
}

// Palette is the full derived color set. Every field is always populated;
// a fixed struct rather than a map so a missing slot is a compile error,
// not a runtime lookup failure.
type Palette struct {
	Foreground          hexcolor.Color
	Background          hexcolor.Color
	SelectionBackground hexcolor.Color

	OnBackground          hexcolor.Color
	OnSelectionBackground hexcolor.Color
	OnBlue                hexcolor.Color
	OnAqua                hexcolor.Color
	OnGreen               hexcolor.Color
	OnOrange              hexcolor.Color
	OnPurple              hexcolor.Color
	OnRed                 hexcolor.Color
	OnYellow              hexcolor.Color

	Blue   hexcolor.Color
	Aqua   hexcolor.Color
	Green  hexcolor.Color
	Orange hexcolor.Color
	Purple hexcolor.Color
	Red    hexcolor.Color
	Yellow hexcolor.Color
}

// Derive computes the complete palette from the source theme snapshot.
// It is a pure function: same input and thresholds, same palette.
func Derive(in Input, th Thresholds) Palette {
	fg := orFallback(in.Foreground, fallbackForeground)
	bg := orFallback(in.Background, fallbackBackground)
	sel := in.SelectionBackground
	if sel == "" {
		sel = hexcolor.Blend(bg, fg, 0.25)
	}

	red := orFallback(in.Red, fallbackRed)
	green := orFallback(in.Green, fallbackGreen)
	yellow := orFallback(in.Yellow, fallbackYellow)
	blue := orFallback(in.Blue, fallbackBlue)
	purple := orFallback(in.Purple, fallbackPurple)
	aqua := orFallback(in.Aqua, fallbackAqua)
	orange := hexcolor.Blend(red, yellow, 0.5)

	if hexcolor.Luminance(bg) < th.DarkBackgroundLuminance {
		correct := th.darkCorrection(bg)
		red = correct(red)
		green = correct(green)
		yellow = correct(yellow)
		blue = correct(blue)
		purple = correct(purple)
		aqua = correct(aqua)
		orange = correct(orange)
	}

	candidates := []string{string(fg), string(bg), string(hexcolor.White), string(hexcolor.Black)}

	return Palette{
		Foreground:          fg,
		Background:          bg,
		SelectionBackground: sel,

		OnBackground:          BestContrastText(bg, candidates),
		OnSelectionBackground: BestContrastText(sel, candidates),
		OnBlue:                BestContrastText(blue, candidates),
		OnAqua:                BestContrastText(aqua, candidates),
		OnGreen:               BestContrastText(green, candidates),
		OnOrange:              BestContrastText(orange, candidates),
		OnPurple:              BestContrastText(purple, candidates),
		OnRed:                 BestContrastText(red, candidates),
		OnYellow:              BestContrastText(yellow, candidates),

		Blue:   blue,
		Aqua:   aqua,
		Green:  green,
		Orange: orange,
		Purple: purple,
		Red:    red,
		Yellow: yellow,
	}
}

// darkCorrection builds the per-accent correction chain for a dark
// background: saturation boost, then luminance ceiling, then contrast
// floor. The steps are strictly sequential; each sees the previous step's
// output, never the original accent.
func (th Thresholds) darkCorrection(bg hexcolor.Color) func(hexcolor.Color) hexcolor.Color {
	bgLum := hexcolor.Luminance(bg)

	boost := func(c hexcolor.Color) hexcolor.Color {
		return BoostSaturation(c, th.SaturationBoost)
	}
	clampLuminance := func(c hexcolor.Color) hexcolor.Color {
		if hexcolor.Luminance(c) > th.MaxAccentLuminance {
			return ScaleToLuminance(c, th.MaxAccentLuminance)
		}
		return c
	}
	ensureContrast := func(c hexcolor.Color) hexcolor.Color {
		if hexcolor.ContrastRatio(c, bg) >= th.MinAccentContrast {
			return c
		}
		// The accent must be the lighter of the pair, so solve
		// (target+0.05)/(bgLum+0.05) = MinAccentContrast for target.
		target := th.MinAccentContrast*(bgLum+0.05) - 0.05
		if target < minContrastTargetFloor {
			target = minContrastTargetFloor
		}
		return ScaleToLuminance(c, target)
	}

	return compose(boost, clampLuminance, ensureContrast)
}

func compose(steps ...func(hexcolor.Color) hexcolor.Color) func(hexcolor.Color) hexcolor.Color {
	return func(c hexcolor.Color) hexcolor.Color {
		for _, step := range steps {
			c = step(c)
		}
		return c
	}
}

// BestContrastText picks, from candidates, the color with the highest
// contrast ratio against the surface. Candidates are normalized and
// deduplicated first (order-preserving, first occurrence wins); invalid
// entries are dropped. Ties keep the earliest candidate. An empty list
// after normalization falls back to white.
func BestContrastText(surface hexcolor.Color, candidates []string) hexcolor.Color {
	var unique []hexcolor.Color
	for _, raw := range candidates {
		c, ok := hexcolor.Parse(raw)
		if !ok {
			continue
		}
		if !containsColor(unique, c) {
			unique = append(unique, c)
		}
	}

	if len(unique) == 0 {
		return hexcolor.White
	}

	best := unique[0]
	bestRatio := hexcolor.ContrastRatio(surface, best)
	for _, c := range unique[1:] {
		if ratio := hexcolor.ContrastRatio(surface, c); ratio > bestRatio {
			best = c
			bestRatio = ratio
		}
	}
	return best
}

func containsColor(list []hexcolor.Color, c hexcolor.Color) bool {
	for _, have := range list {
		if have == c {
			return true
		}
	}
	return false
}

func orFallback(c, fallback hexcolor.Color) hexcolor.Color {
	if c == "" {
		return fallback
	}
	return c
}
