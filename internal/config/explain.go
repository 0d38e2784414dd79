package config

import "fmt"

// Explain returns a human-readable sentence per configuration key,
// describing the effect of the current value. The MCP get_project_config
// tool ships this map alongside the raw configuration.
func Explain(cfg *Config) map[string]string {
	root := "src/"
	if cfg.Framework == FrameworkNextJS {
		root = "the project root"
	}

	patternDesc := map[string]string{
		PatternAtomicDesign: "components are classified into atoms, molecules, organisms and templates",
		PatternFeatureBased: "code is grouped by feature with shared components alongside",
		PatternDomainDriven: "code is grouped by business domain with shared infrastructure",
		PatternMVCLike:      "code is split into views, models and supporting layers",
	}

	tests := "no test files are generated"
	if cfg.WithTests {
		tests = "each generated resource is accompanied by a test file"
	}

	client := "generated components stay server components"
	if cfg.UseClient {
		client = "generated components and pages start with a \"use client\" directive"
	}
	if cfg.Framework == FrameworkReact {
		client = "ignored for the react framework (contexts always get the directive under nextjs)"
	}

	return map[string]string{
		"framework": fmt.Sprintf("%s: generated paths are rooted at %s", cfg.Framework, root),
		"pattern":   fmt.Sprintf("%s: %s", cfg.Pattern, patternDesc[cfg.Pattern]),
		"language":  fmt.Sprintf("%s: scripts use .%s and components use .%s", cfg.Language, cfg.ScriptExt(), cfg.ComponentExt()),
		"styling":   fmt.Sprintf("%s: style modules use the .module.%s extension", cfg.Styling, cfg.StyleExt()),
		"withTests": tests,
		"useClient": client,
	}
}
