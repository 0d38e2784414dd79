// Package prefs persists user-level preferences that seed the init
// wizard with the answers from the last run. Preferences live outside
// the project tree and never override a project's own configuration.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/forma-cli/forma/internal/config"
)

// FileName is the preferences file stored under the user config dir.
const FileName = "preferences.yaml"

// Preferences holds the remembered wizard answers.
type Preferences struct {
	Framework string `yaml:"framework,omitempty"`
	Pattern   string `yaml:"pattern,omitempty"`
	Language  string `yaml:"language,omitempty"`
	Styling   string `yaml:"styling,omitempty"`
	WithTests *bool  `yaml:"withTests,omitempty"`
}

// Dir reports the directory holding the preferences file.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, "forma"), nil
}

// Load reads the stored preferences. A missing file yields zero
// preferences, not an error.
func Load() (Preferences, error) {
	dir, err := Dir()
	if err != nil {
		return Preferences{}, err
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Preferences{}, nil
		}
		return Preferences{}, fmt.Errorf("read preferences: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("parse preferences: %w", err)
	}
	return p, nil
}

// Save writes the preferences atomically via temp file + rename.
func Save(p Preferences) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".forma-prefs-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, FileName)); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// FromConfig extracts the rememberable answers from a saved config.
func FromConfig(cfg *config.Config) Preferences {
	withTests := cfg.WithTests
	return Preferences{
		Framework: cfg.Framework,
		Pattern:   cfg.Pattern,
		Language:  cfg.Language,
		Styling:   cfg.Styling,
		WithTests: &withTests,
	}
}

// Apply fills a config's zero fields from the stored preferences,
// leaving explicitly set values alone.
func (p Preferences) Apply(cfg *config.Config) {
	if cfg.Framework == "" && p.Framework != "" {
		cfg.Framework = p.Framework
	}
	if cfg.Pattern == "" && p.Pattern != "" {
		cfg.Pattern = p.Pattern
	}
	if cfg.Language == "" && p.Language != "" {
		cfg.Language = p.Language
	}
	if cfg.Styling == "" && p.Styling != "" {
		cfg.Styling = p.Styling
	}
	if p.WithTests != nil {
		cfg.WithTests = *p.WithTests
	}
}
