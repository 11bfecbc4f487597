package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncCommandFlags(t *testing.T) {
	cmd := newSyncCmd()

	for _, flag := range []string{"template", "output", "ghostty-cmd"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing --%s flag", flag)
	}
}

func TestSyncDegradesWithoutGhostty(t *testing.T) {
	tempDir := t.TempDir()
	// Point HOME at the temp dir so no real user config interferes.
	t.Setenv("HOME", tempDir)

	templatePath := filepath.Join(tempDir, "starship.template.toml")
	outputPath := filepath.Join(tempDir, "starship.toml")
	templateContent := "add_newline = false\n\n[character]\nsuccess_symbol = '>'\n"
	require.NoError(t, os.WriteFile(templatePath, []byte(templateContent), 0o644))

	cmd := newSyncCmd()
	cmd.SetArgs([]string{
		"--template", templatePath,
		"--output", outputPath,
		"--ghostty-cmd", filepath.Join(tempDir, "no-such-ghostty"),
	})

	// Ghostty being unavailable is a degraded run, not a failure: the
	// template must land in the output unmodified.
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, templateContent, string(data))
}

func TestSyncFailsOnMissingTemplate(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	cmd := newSyncCmd()
	cmd.SetArgs([]string{
		"--template", filepath.Join(tempDir, "missing.toml"),
		"--output", filepath.Join(tempDir, "out.toml"),
	})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	assert.Error(t, cmd.Execute())
}
