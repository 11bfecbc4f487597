// Package ghostty reads the active Ghostty theme by invoking the ghostty
// binary and parsing its flattened configuration dump.
package ghostty

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"starsync/internal/hexcolor"
	"starsync/internal/palette"
	"starsync/pkg/logging"
)

const subsystem = "ghostty"

var (
	paletteLineRe = regexp.MustCompile(`^(\d+)\s*=\s*(#[0-9a-fA-F]{6})$`)
	keyValueRe    = regexp.MustCompile(`^([a-z0-9-]+)\s*=\s*(.+)$`)
)

// Theme is a snapshot of the colors the terminal reported. Absent or
// malformed entries are simply missing; the palette layer applies
// fallbacks, so nothing here is ever an error.
type Theme struct {
	foreground          hexcolor.Color
	background          hexcolor.Color
	selectionBackground hexcolor.Color
	indexed             map[int]hexcolor.Color
}

// Foreground returns the theme's foreground color, if present.
func (t *Theme) Foreground() (hexcolor.Color, bool) {
	return t.foreground, t.foreground != ""
}

// Background returns the theme's background color, if present.
func (t *Theme) Background() (hexcolor.Color, bool) {
	return t.background, t.background != ""
}

// SelectionBackground returns the selection background color, if present.
func (t *Theme) SelectionBackground() (hexcolor.Color, bool) {
	return t.selectionBackground, t.selectionBackground != ""
}

// Indexed returns the color at a terminal palette index (0-255), if the
// theme defined one.
func (t *Theme) Indexed(i int) (hexcolor.Color, bool) {
	c, ok := t.indexed[i]
	return c, ok
}

// Input maps the theme onto the palette deriver's input slots using the
// conventional ANSI ordering: 1=red, 2=green, 3=yellow, 4=blue, 5=magenta,
// 6=cyan. Index 7 backs an absent foreground, index 0 an absent
// background, index 8 an absent selection background.
func (t *Theme) Input() palette.Input {
	in := palette.Input{
		Foreground:          t.firstOf(t.foreground, 7),
		Background:          t.firstOf(t.background, 0),
		SelectionBackground: t.firstOf(t.selectionBackground, 8),
	}
	in.Red, _ = t.Indexed(1)
	in.Green, _ = t.Indexed(2)
	in.Yellow, _ = t.Indexed(3)
	in.Blue, _ = t.Indexed(4)
	in.Purple, _ = t.Indexed(5)
	in.Aqua, _ = t.Indexed(6)
	return in
}

func (t *Theme) firstOf(named hexcolor.Color, fallbackIndex int) hexcolor.Color {
	if named != "" {
		return named
	}
	c, _ := t.Indexed(fallbackIndex)
	return c
}

// runShowConfig is a variable so tests can stub the process invocation.
var runShowConfig = func(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, command, "+show-config")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute '%s +show-config': %w. Stderr: %s",
			command, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// Load invokes `<command> +show-config` and parses the dump. A failed
// invocation returns an error; the caller decides whether that is fatal
// (for palette syncing it is not — the template renders without a theme).
func Load(ctx context.Context, command string) (*Theme, error) {
	output, err := runShowConfig(ctx, command)
	if err != nil {
		return nil, err
	}
	theme := parseConfig(output)
	logging.Debug(subsystem, "parsed theme: %d indexed colors", len(theme.indexed))
	return theme, nil
}

// parseConfig walks the flattened `key = value` dump. Blank lines and
// comments are skipped; malformed colors are dropped, never surfaced as
// errors. Repeated keys keep the last value, matching how ghostty itself
// resolves its config.
func parseConfig(output string) *Theme {
	theme := &Theme{indexed: make(map[int]hexcolor.Color)}

	for _, rawLine := range strings.Split(output, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		kv := keyValueRe.FindStringSubmatch(line)
		if kv == nil {
			continue
		}
		key, value := kv[1], strings.TrimSpace(kv[2])

		if key == "palette" {
			entry := paletteLineRe.FindStringSubmatch(value)
			if entry == nil {
				continue
			}
			idx, err := strconv.Atoi(entry[1])
			if err != nil {
				continue
			}
			if c, ok := hexcolor.Parse(entry[2]); ok {
				theme.indexed[idx] = c
			}
			continue
		}

		c, ok := hexcolor.Parse(value)
		if !ok {
			continue
		}
		switch key {
		case "foreground":
			theme.foreground = c
		case "background":
			theme.background = c
		case "selection-background":
			theme.selectionBackground = c
		}
	}

	return theme
}
