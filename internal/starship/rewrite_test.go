package starship

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starsync/internal/palette"
)

// testPalette builds a palette with recognizable values without running
// the full derivation.
func testPalette() palette.Palette {
	return palette.Derive(palette.Input{
		Foreground: "#ebdbb2",
		Background: "#1d2021",
	}, palette.DefaultThresholds())
}

func TestEntriesCoverEverySlot(t *testing.T) {
	entries := Entries(testPalette())
	require.Len(t, entries, 19)

	seen := make(map[string]bool)
	for _, e := range entries {
		assert.False(t, seen[e.Key], "duplicate key %s", e.Key)
		seen[e.Key] = true
		assert.NotEmpty(t, e.Value, "key %s has no value", e.Key)
	}

	assert.Equal(t, "color_fg0", entries[0].Key)
	assert.Equal(t, "color_yellow", entries[18].Key)
}

func TestEnsurePaletteRef(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "replaces existing assignment",
			input: "palette = 'gruvbox'\n\n[character]\nsuccess_symbol = '>'\n",
			want:  "palette = 'ghostty_dynamic'\n\n[character]\nsuccess_symbol = '>'\n",
		},
		{
			name:  "replaces double quoted assignment",
			input: "palette = \"nord\"\n",
			want:  "palette = 'ghostty_dynamic'\n",
		},
		{
			name:  "inserts before first section",
			input: "add_newline = false\n\n[character]\nsuccess_symbol = '>'\n",
			want:  "add_newline = false\n\npalette = 'ghostty_dynamic'\n\n[character]\nsuccess_symbol = '>'\n",
		},
		{
			name:  "appends when no sections exist",
			input: "add_newline = false\n",
			want:  "add_newline = false\npalette = 'ghostty_dynamic'\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnsurePaletteRef(tt.input))
		})
	}
}

func TestEnsurePaletteRefIdempotent(t *testing.T) {
	input := "add_newline = false\n\n[character]\nsuccess_symbol = '>'\n"
	once := EnsurePaletteRef(input)
	assert.Equal(t, once, EnsurePaletteRef(once))
}

func TestEnsurePaletteRefOnlyFirstAssignment(t *testing.T) {
	input := "palette = 'a'\npalette = 'b'\n"
	got := EnsurePaletteRef(input)
	assert.Equal(t, "palette = 'ghostty_dynamic'\npalette = 'b'\n", got)
}

func TestSetPaletteValuesCreatesSection(t *testing.T) {
	pal := testPalette()
	input := "[character]\nsuccess_symbol = '>'\n"
	got := SetPaletteValues(input, pal)

	assert.True(t, strings.HasPrefix(got, "[character]\nsuccess_symbol = '>'\n"))
	assert.Contains(t, got, "[palettes.ghostty_dynamic]\n")
	for _, e := range Entries(pal) {
		assert.Contains(t, got, e.Key+" = '"+string(e.Value)+"'")
	}
	assert.True(t, strings.HasSuffix(got, "\n"))
	assert.False(t, strings.HasSuffix(got, "\n\n\n"))
}

func TestSetPaletteValuesRewritesExistingKeys(t *testing.T) {
	pal := testPalette()
	input := strings.Join([]string{
		"# my prompt",
		"[palettes.ghostty_dynamic]",
		"color_fg0 = '#000000'",
		"  color_red = \"#111111\"",
		"custom_key = '#222222'",
		"",
		"[character]",
		"success_symbol = '>'",
		"",
	}, "\n")

	got := SetPaletteValues(input, pal)

	// Known keys rewritten, indentation preserved.
	assert.Contains(t, got, "color_fg0 = '"+string(pal.Foreground)+"'")
	assert.Contains(t, got, "  color_red = '"+string(pal.Red)+"'")
	// Keys the palette does not own are left alone.
	assert.Contains(t, got, "custom_key = '#222222'")
	// Unrelated sections and comments are untouched.
	assert.Contains(t, got, "# my prompt")
	assert.Contains(t, got, "[character]\nsuccess_symbol = '>'")
	// Missing palette keys were appended inside the section, before
	// the next section header.
	idxBlue := strings.Index(got, "color_blue = '")
	idxCharacter := strings.Index(got, "[character]")
	require.Greater(t, idxBlue, -1)
	assert.Less(t, idxBlue, idxCharacter)
}

func TestSetPaletteValuesSectionAtEOF(t *testing.T) {
	pal := testPalette()
	input := "[palettes.ghostty_dynamic]\ncolor_fg0 = '#000000'\n"
	got := SetPaletteValues(input, pal)

	assert.Contains(t, got, "color_fg0 = '"+string(pal.Foreground)+"'")
	assert.Contains(t, got, "color_yellow = '"+string(pal.Yellow)+"'")
}

func TestSetPaletteValuesIdempotent(t *testing.T) {
	pal := testPalette()
	input := "add_newline = false\n\n[character]\nsuccess_symbol = '>'\n"
	once := SetPaletteValues(input, pal)
	assert.Equal(t, once, SetPaletteValues(once, pal))
}

func TestSetPaletteValuesEmptyDocument(t *testing.T) {
	pal := testPalette()
	got := SetPaletteValues("", pal)

	assert.True(t, strings.HasPrefix(got, "[palettes.ghostty_dynamic]\n"))
	for _, e := range Entries(pal) {
		assert.Contains(t, got, e.Key+" = '"+string(e.Value)+"'")
	}
}
