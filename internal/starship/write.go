package starship

import (
	"fmt"
	"os"
	"path/filepath"

	"starsync/pkg/logging"
)

const subsystem = "starship"

// WriteIfChanged writes content to path, creating parent directories as
// needed. The write is skipped when the file already holds exactly the
// same content, so Starship's config watcher does not reload needlessly.
// It reports whether a write happened.
func WriteIfChanged(path, content string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory for '%s': %w", path, err)
	}

	if existing, err := os.ReadFile(path); err == nil && string(existing) == content {
		logging.Debug(subsystem, "config at %s already up to date", path)
		return false, nil
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("failed to write '%s': %w", path, err)
	}
	return true, nil
}
