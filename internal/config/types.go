package config

import "starsync/internal/palette"

// StarsyncConfig is the top-level configuration structure for starsync.
type StarsyncConfig struct {
	// Template is the Starship config template the palette is injected into.
	Template string `yaml:"template"`
	// Output is where the rendered Starship config is written.
	Output string `yaml:"output"`
	// GhosttyCommand is the ghostty executable name or path.
	GhosttyCommand string `yaml:"ghosttyCommand"`
	// Thresholds optionally overrides the dark-theme correction tuning.
	Thresholds ThresholdSettings `yaml:"thresholds"`
}

// ThresholdSettings mirrors palette.Thresholds with optional fields so a
// config file can override any subset and leave the rest at the defaults.
type ThresholdSettings struct {
	DarkBackgroundLuminance *float64 `yaml:"darkBackgroundLuminance,omitempty"`
	SaturationBoost         *float64 `yaml:"saturationBoost,omitempty"`
	MaxAccentLuminance      *float64 `yaml:"maxAccentLuminance,omitempty"`
	MinAccentContrast       *float64 `yaml:"minAccentContrast,omitempty"`
}

// PaletteThresholds resolves the settings against the palette defaults.
func (c StarsyncConfig) PaletteThresholds() palette.Thresholds {
	th := palette.DefaultThresholds()
	if v := c.Thresholds.DarkBackgroundLuminance; v != nil {
		th.DarkBackgroundLuminance = *v
	}
	if v := c.Thresholds.SaturationBoost; v != nil {
		th.SaturationBoost = *v
	}
	if v := c.Thresholds.MaxAccentLuminance; v != nil {
		th.MaxAccentLuminance = *v
	}
	if v := c.Thresholds.MinAccentContrast; v != nil {
		th.MinAccentContrast = *v
	}
	return th
}
