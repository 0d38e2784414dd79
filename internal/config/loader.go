package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Load reads and validates the configuration document from projectRoot.
// It returns ErrConfigMissing if the file does not exist and a validation
// error (wrapping ErrInvalidConfig) if any field is outside its domain.
func Load(projectRoot string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(projectRoot, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigMissing
		}
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}

	// Unknown keys are rejected: the document schema is closed.
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, FileName, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save validates and writes the configuration document to projectRoot.
func Save(projectRoot string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", FileName, err)
	}
	data = append(data, '\n')

	path := filepath.Join(projectRoot, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", FileName, err)
	}
	return nil
}

// Exists reports whether a configuration document is present at projectRoot.
func Exists(projectRoot string) bool {
	_, err := os.Stat(filepath.Join(projectRoot, FileName))
	return err == nil
}

// Validate checks every field against its enumerated domain.
func Validate(cfg *Config) error {
	var errs []ValidationError

	check := func(field, value string, domain []string) {
		if !slices.Contains(domain, value) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(domain, ", ")),
				Value:   value,
			})
		}
	}

	check("framework", cfg.Framework, Frameworks)
	check("pattern", cfg.Pattern, Patterns)
	check("language", cfg.Language, Languages)
	check("styling", cfg.Styling, Stylings)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// Set assigns a configuration key from its string form, enforcing the
// field's domain. Boolean keys accept only "true" and "false".
func Set(cfg *Config, key, value string) error {
	switch key {
	case "framework", "pattern", "language", "styling":
		domain := domainFor(key)
		if !slices.Contains(domain, value) {
			return &ValidationError{Field: key, Message: fmt.Sprintf("must be one of: %s", strings.Join(domain, ", ")), Value: value}
		}
		switch key {
		case "framework":
			cfg.Framework = value
		case "pattern":
			cfg.Pattern = value
		case "language":
			cfg.Language = value
		case "styling":
			cfg.Styling = value
		}
	case "withTests", "useClient":
		b, err := strconv.ParseBool(value)
		if err != nil || (value != "true" && value != "false") {
			return &ValidationError{Field: key, Message: "must be true or false", Value: value}
		}
		if key == "withTests" {
			cfg.WithTests = b
		} else {
			cfg.UseClient = b
		}
	default:
		return &ValidationError{Field: key, Message: fmt.Sprintf("unknown key, valid keys: %s", strings.Join(Keys, ", "))}
	}
	return nil
}

// Get returns the string form of a configuration key.
func Get(cfg *Config, key string) (string, error) {
	switch key {
	case "framework":
		return cfg.Framework, nil
	case "pattern":
		return cfg.Pattern, nil
	case "language":
		return cfg.Language, nil
	case "styling":
		return cfg.Styling, nil
	case "withTests":
		return strconv.FormatBool(cfg.WithTests), nil
	case "useClient":
		return strconv.FormatBool(cfg.UseClient), nil
	}
	return "", &ValidationError{Field: key, Message: fmt.Sprintf("unknown key, valid keys: %s", strings.Join(Keys, ", "))}
}

func domainFor(key string) []string {
	switch key {
	case "framework":
		return Frameworks
	case "pattern":
		return Patterns
	case "language":
		return Languages
	case "styling":
		return Stylings
	}
	return nil
}
