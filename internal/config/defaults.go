package config

// GetDefaultConfig returns the compiled-in configuration. Paths use "~"
// and are expanded at load time; threshold overrides are empty so the
// palette package's own defaults apply.
func GetDefaultConfig() StarsyncConfig {
	return StarsyncConfig{
		Template:       "~/.config/starsync/starship.template.toml",
		Output:         "~/.config/starship.toml",
		GhosttyCommand: "ghostty",
	}
}
