package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"starsync/pkg/logging"
)

const subsystem = "config"

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/starsync"
	configFileName = "config.yaml"
	envFileName    = "starsync.env"
)

// LoadConfig loads the starsync configuration by layering default, user
// file, and environment settings. Later layers override earlier ones;
// command-line flags are applied on top by the caller.
func LoadConfig() (StarsyncConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User configuration file (optional)
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		logging.Warn(subsystem, "could not determine user config path: %v", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return StarsyncConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Environment overrides, optionally sourced from an env file
	applyEnvOverrides(&config)

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getEnvFilePath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir, envFileName), nil
}

func loadConfigFromFile(path string) (StarsyncConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StarsyncConfig{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	var config StarsyncConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return StarsyncConfig{}, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	return config, nil
}

// mergeConfigs overlays non-empty fields of override onto base.
func mergeConfigs(base, override StarsyncConfig) StarsyncConfig {
	merged := base
	if override.Template != "" {
		merged.Template = override.Template
	}
	if override.Output != "" {
		merged.Output = override.Output
	}
	if override.GhosttyCommand != "" {
		merged.GhosttyCommand = override.GhosttyCommand
	}
	if override.Thresholds.DarkBackgroundLuminance != nil {
		merged.Thresholds.DarkBackgroundLuminance = override.Thresholds.DarkBackgroundLuminance
	}
	if override.Thresholds.SaturationBoost != nil {
		merged.Thresholds.SaturationBoost = override.Thresholds.SaturationBoost
	}
	if override.Thresholds.MaxAccentLuminance != nil {
		merged.Thresholds.MaxAccentLuminance = override.Thresholds.MaxAccentLuminance
	}
	if override.Thresholds.MinAccentContrast != nil {
		merged.Thresholds.MinAccentContrast = override.Thresholds.MinAccentContrast
	}
	return merged
}

// applyEnvOverrides reads STARSYNC_* environment variables, first loading
// the optional env file so a shell-free setup (systemd timer, launchd job)
// can still configure the tool.
func applyEnvOverrides(config *StarsyncConfig) {
	if envPath, err := getEnvFilePath(); err == nil {
		if _, statErr := os.Stat(envPath); statErr == nil {
			if err := godotenv.Load(envPath); err != nil {
				logging.Warn(subsystem, "could not load env file %s: %v", envPath, err)
			}
		}
	}

	if v := os.Getenv("STARSYNC_TEMPLATE"); v != "" {
		config.Template = v
	}
	if v := os.Getenv("STARSYNC_OUTPUT"); v != "" {
		config.Output = v
	}
	if v := os.Getenv("STARSYNC_GHOSTTY_COMMAND"); v != "" {
		config.GhosttyCommand = v
	}
	if v := os.Getenv("STARSYNC_DARK_LUMINANCE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Thresholds.DarkBackgroundLuminance = &f
		} else {
			logging.Warn(subsystem, "ignoring invalid STARSYNC_DARK_LUMINANCE_THRESHOLD=%q", v)
		}
	}
}

// ExpandPath resolves a leading "~" against the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := osUserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand '%s': %w", path, err)
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
