// Package ui provides the interactive terminal components: spinners and
// progress bars for long-running scaffold operations, with plain-text
// fallbacks when no TTY is attached.
package ui

import "os"

// Palette holds the hex colors used by the interactive components.
type Palette struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme bundles the palette with the color toggle.
type Theme struct {
	Colors  Palette
	NoColor bool
}

// DefaultTheme returns the standard theme. NO_COLOR in the environment
// disables coloring.
func DefaultTheme() *Theme {
	return &Theme{
		Colors: Palette{
			Primary:   "#7C3AED",
			Secondary: "#06B6D4",
			Success:   "#22C55E",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}
