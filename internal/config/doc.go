// Package config provides configuration management for starsync.
//
// Configuration is loaded and merged in the following order, with later
// sources overriding earlier ones:
//
//  1. Default Configuration (embedded in binary)
//     - Sensible defaults so starsync works out-of-the-box
//
//  2. User Configuration (~/.config/starsync/config.yaml)
//     - YAML file with paths, the ghostty command, and threshold tuning
//
//  3. Environment (~/.config/starsync/starsync.env, then process env)
//     - STARSYNC_TEMPLATE, STARSYNC_OUTPUT, STARSYNC_GHOSTTY_COMMAND,
//       STARSYNC_DARK_LUMINANCE_THRESHOLD
//     - The env file suits shell-free setups (systemd timers, launchd)
//
//  4. Command-line flags (applied by the cmd layer)
//
// # Configuration Structure
//
//	template: ~/.config/starsync/starship.template.toml
//	output: ~/.config/starship.toml
//	ghosttyCommand: ghostty
//	thresholds:
//	  darkBackgroundLuminance: 0.26
//	  saturationBoost: 1.35
//	  maxAccentLuminance: 0.55
//	  minAccentContrast: 3.5
//
// Threshold fields are optional; unset fields keep the palette package's
// defaults.
package config
