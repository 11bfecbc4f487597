// Package palette derives the full Starship prompt palette from a
// terminal theme snapshot.
//
// # Derivation
//
// Six accent colors (red, green, yellow, blue, purple, aqua) plus
// foreground, background and selection background come from the source
// theme; any missing slot falls back to a gruvbox constant. Orange is
// always synthesized as the gamma-space midpoint of red and yellow.
//
// # Dark-theme corrections
//
// When the background's relative luminance falls below the dark threshold,
// each of the seven accents runs through a sequential correction chain:
//
//  1. Saturation boost — channels pushed apart in linear light around the
//     accent's own luminance, with a bounded binary search keeping the
//     result inside the sRGB gamut.
//  2. Luminance ceiling — accents brighter than the cap are rescaled down
//     so prompt segments do not wash out.
//  3. Contrast floor — accents below the minimum contrast ratio against
//     the background are rescaled up to the luminance that satisfies it.
//
// Light themes pass through untouched.
//
// # Text colors
//
// For each colored surface the best-contrast text color is picked from
// the foreground, background, pure white and pure black, so every prompt
// segment gets a readable "on" color.
//
// Everything in this package is a pure function; deriving the same input
// twice yields identical palettes.
package palette
