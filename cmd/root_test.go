package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	expected := map[string]bool{
		"sync":    false,
		"preview": false,
		"version": false,
	}

	for _, sub := range rootCmd.Commands() {
		if _, ok := expected[sub.Name()]; ok {
			expected[sub.Name()] = true
		}
	}

	for name, found := range expected {
		assert.True(t, found, "subcommand %q not registered", name)
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", rootCmd.Version)
}
