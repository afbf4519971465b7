// Package prefs persists htmlref user preferences.
// Preferences are stored in ~/.config/htmlref/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/htmlref/internal/config"
)

// Prefs holds choices the user makes inside the browser, such as the theme.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/htmlref/prefs.toml"
	defaultTheme     = "Nightfox"
	fileHeader       = "# htmlref preferences, rewritten when the theme changes (T)\n"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. A missing, unreadable or malformed file
// yields the defaults; the browser must start regardless.
func Load(path string) (Prefs, error) {
	defaults := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		slog.Debug("prefs path unresolved, using defaults", "path", path, "error", err)
		return defaults, nil
	}

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return defaults, nil
	case err != nil:
		slog.Debug("prefs unreadable, using defaults", "path", resolved, "error", err)
		return defaults, nil
	}

	var stored Prefs
	if err := toml.Unmarshal(data, &stored); err != nil {
		slog.Debug("prefs malformed, using defaults", "path", resolved, "error", err)
		return defaults, nil
	}

	if theme := strings.TrimSpace(stored.Theme); theme != "" {
		defaults.Theme = theme
	}
	return defaults, nil
}

// Save writes preferences to path. The file is replaced atomically so a
// crash mid-write never leaves a truncated prefs file behind.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	body, err := toml.Marshal(Prefs{Theme: strings.TrimSpace(p.Theme)})
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	_, err = tmp.Write(append([]byte(fileHeader), body...))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
