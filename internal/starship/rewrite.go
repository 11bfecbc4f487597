// Package starship rewrites a Starship configuration document so its
// palette section carries the derived theme colors. The rewrite is
// line-based on purpose: a TOML round-trip would reorder keys and drop the
// user's comments, while this leaves every unrelated byte untouched.
package starship

import (
	"fmt"
	"regexp"
	"strings"

	"starsync/internal/hexcolor"
	"starsync/internal/palette"
)

// PaletteName is the name of the managed Starship palette.
const PaletteName = "ghostty_dynamic"

var (
	paletteRefRe = regexp.MustCompile(`(?m)^palette\s*=\s*['"][^'"]+['"]\s*$`)
	valueLineRe  = regexp.MustCompile(`^(\s*)([A-Za-z0-9_]+)\s*=\s*(['"])([^'"]*)(['"])\s*$`)
)

// Entry is one palette key/value pair in the order Starship sees it.
type Entry struct {
	Key   string
	Value hexcolor.Color
}

// Entries flattens a palette into the fixed key order the managed section
// is written in.
func Entries(p palette.Palette) []Entry {
	return []Entry{
		{"color_fg0", p.Foreground},
		{"color_bg1", p.Background},
		{"color_bg3", p.SelectionBackground},
		{"color_on_bg1", p.OnBackground},
		{"color_on_bg3", p.OnSelectionBackground},
		{"color_on_blue", p.OnBlue},
		{"color_on_aqua", p.OnAqua},
		{"color_on_green", p.OnGreen},
		{"color_on_orange", p.OnOrange},
		{"color_on_purple", p.OnPurple},
		{"color_on_red", p.OnRed},
		{"color_on_yellow", p.OnYellow},
		{"color_blue", p.Blue},
		{"color_aqua", p.Aqua},
		{"color_green", p.Green},
		{"color_orange", p.Orange},
		{"color_purple", p.Purple},
		{"color_red", p.Red},
		{"color_yellow", p.Yellow},
	}
}

// EnsurePaletteRef points the document's top-level `palette = '...'` line
// at the managed palette. An existing assignment (first one only) is
// replaced in place; otherwise the line is inserted before the first
// section header, or appended when the document has none.
func EnsurePaletteRef(text string) string {
	refLine := fmt.Sprintf("palette = '%s'", PaletteName)

	if loc := paletteRefRe.FindStringIndex(text); loc != nil {
		return text[:loc[0]] + refLine + text[loc[1]:]
	}

	lines := splitLines(text)
	insertAt := len(lines)
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "[") {
			insertAt = i
			break
		}
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, lines[:insertAt]...)
	out = append(out, refLine, "")
	out = append(out, lines[insertAt:]...)
	return strings.Join(out, "\n") + "\n"
}

// SetPaletteValues sets every palette entry inside the managed
// `[palettes.ghostty_dynamic]` section. Existing keys are rewritten in
// place, keeping their indentation; keys the section lacks are appended
// before it ends; a missing section is created at the end of the document.
// Lines outside the section pass through unchanged.
func SetPaletteValues(text string, p palette.Palette) string {
	entries := Entries(p)
	sectionHeader := fmt.Sprintf("[palettes.%s]", PaletteName)

	var out []string
	inSection := false
	foundSection := false
	seen := make(map[string]bool)

	appendMissing := func() {
		for _, e := range entries {
			if !seen[e.Key] {
				out = append(out, fmt.Sprintf("%s = '%s'", e.Key, e.Value))
			}
		}
	}

	for _, line := range splitLines(text) {
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, "[") && strings.HasSuffix(stripped, "]") {
			if inSection {
				appendMissing()
				inSection = false
			}
			if stripped == sectionHeader {
				foundSection = true
				inSection = true
				out = append(out, line)
				continue
			}
		}

		if inSection {
			if m := valueLineRe.FindStringSubmatch(line); m != nil {
				indent, key := m[1], m[2]
				if value, ok := entryValue(entries, key); ok {
					out = append(out, fmt.Sprintf("%s%s = '%s'", indent, key, value))
					seen[key] = true
					continue
				}
			}
		}

		out = append(out, line)
	}

	if inSection {
		appendMissing()
	}

	if !foundSection {
		if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, sectionHeader)
		for _, e := range entries {
			out = append(out, fmt.Sprintf("%s = '%s'", e.Key, e.Value))
		}
	}

	return strings.Join(out, "\n") + "\n"
}

func entryValue(entries []Entry, key string) (hexcolor.Color, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// splitLines splits without a trailing phantom line for newline-terminated
// documents, so rewrites do not accumulate blank lines at the end.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
