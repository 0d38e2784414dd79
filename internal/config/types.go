// Package config manages the persisted project configuration: a single
// JSON document at the project root holding exactly six fields. It loads,
// validates, saves, and explains configuration values; every command except
// init requires a valid configuration before touching the filesystem.
package config

import "slices"

// FileName is the configuration document at the project root.
const FileName = "forma.config.json"

// Config is the persisted project configuration. All six fields are
// required and must be drawn from their enumerated domains.
type Config struct {
	// Framework determines whether generated paths are rooted at src/
	// (react) or the project root (nextjs).
	Framework string `json:"framework"`

	// Pattern selects the architecture structure.
	Pattern string `json:"pattern"`

	// Language determines script and component file extensions.
	Language string `json:"language"`

	// Styling determines the style-module extension.
	Styling string `json:"styling"`

	// WithTests controls whether a test file accompanies each generated
	// resource.
	WithTests bool `json:"withTests"`

	// UseClient is Next.js-only: whether generated components and pages
	// get a "use client" directive by default. Contexts always do.
	UseClient bool `json:"useClient"`
}

// Framework values.
const (
	FrameworkReact  = "react"
	FrameworkNextJS = "nextjs"
)

// Pattern values.
const (
	PatternAtomicDesign = "atomic-design"
	PatternFeatureBased = "feature-based"
	PatternDomainDriven = "domain-driven"
	PatternMVCLike      = "mvc-like"
)

// Language values.
const (
	LanguageTypeScript = "typescript"
	LanguageJavaScript = "javascript"
)

// Styling values.
const (
	StylingCSS  = "css"
	StylingSCSS = "scss"
)

// Enumerated domains for each string field.
var (
	Frameworks = []string{FrameworkReact, FrameworkNextJS}
	Patterns   = []string{PatternAtomicDesign, PatternFeatureBased, PatternDomainDriven, PatternMVCLike}
	Languages  = []string{LanguageTypeScript, LanguageJavaScript}
	Stylings   = []string{StylingCSS, StylingSCSS}
)

// ScriptExt returns the plain script extension: "ts" or "js".
func (c *Config) ScriptExt() string {
	if c.Language == LanguageJavaScript {
		return "js"
	}
	return "ts"
}

// ComponentExt returns the component file extension: "tsx" or "jsx".
func (c *Config) ComponentExt() string {
	if c.Language == LanguageJavaScript {
		return "jsx"
	}
	return "tsx"
}

// StyleExt returns the style-module extension: "css" or "scss".
func (c *Config) StyleExt() string {
	if c.Styling == StylingSCSS {
		return "scss"
	}
	return "css"
}

// Keys lists the configuration keys accepted by config get/set.
var Keys = []string{"framework", "pattern", "language", "styling", "withTests", "useClient"}

// IsValidKey reports whether key names a configuration field.
func IsValidKey(key string) bool {
	return slices.Contains(Keys, key)
}
