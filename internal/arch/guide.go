package arch

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/forma-cli/forma/internal/config"
)

// Guide describes the configured architecture for human and assistant
// consumption: where every resource kind lives, how names are derived,
// and which extensions the configuration produces.
type Guide struct {
	Pattern              string            `json:"pattern"`
	Framework            string            `json:"framework"`
	Description          string            `json:"description"`
	Folders              []string          `json:"folders"`
	ResourcePlacement    map[string]string `json:"resourcePlacement"`
	NamingConventions    map[string]string `json:"namingConventions"`
	ResourceDescriptions map[string]string `json:"resourceDescriptions"`
	FileExtensions       map[string]string `json:"fileExtensions"`
}

var patternDescriptions = map[string]string{
	config.PatternAtomicDesign: "Atomic Design classifies components by granularity: atoms compose into molecules, molecules into organisms, organisms into templates and pages. Shared logic lives in flat hooks, services, contexts and stores directories.",
	config.PatternFeatureBased: "Feature-Based architecture groups code by product feature. Each feature owns its view, hook and service; cross-cutting components live under components/shared.",
	config.PatternDomainDriven: "Domain-Driven architecture groups code by business domain under domains/, with reusable infrastructure under shared/.",
	config.PatternMVCLike:      "MVC-Like architecture separates views, controllers and models in the classic triad, with React-specific concerns (hooks, contexts, stores) alongside.",
}

var namingConventions = map[string]string{
	"component": "PascalCase, unchanged (Button)",
	"hook":      "use prefix on the PascalCase name, deduplicated (Auth and UseAuth both become useAuth)",
	"page":      "PascalCase with a Page suffix (Home becomes HomePage)",
	"service":   "camelCase with a Service suffix (User becomes userService)",
	"context":   "PascalCase with a Context suffix (Auth becomes AuthContext)",
	"store":     "use prefix and Store suffix (Cart becomes useCartStore)",
	"type":      "PascalCase with a .types suffix (User becomes User.types)",
	"api":       "camelCase route directory (Users becomes users)",
	"feature":   "PascalCase, unchanged; nested resources follow their own conventions",
}

var resourceDescriptions = map[string]string{
	"component": "a reusable UI component with a style module and barrel",
	"hook":      "a custom React hook",
	"page":      "a routed page component",
	"service":   "an API/service layer module",
	"context":   "a React context with provider and consumer hook",
	"store":     "a state store hook",
	"type":      "a type declaration file",
	"api":       "a Next.js API route handler",
	"feature":   "a self-contained feature slice with view, hook, service and types",
}

// titleCaser renders enum values as display labels ("atomic-design" to
// "Atomic Design").
var titleCaser = cases.Title(language.English)

// displayOverrides holds labels the generic title caser gets wrong.
var displayOverrides = map[string]string{
	config.FrameworkNextJS:    "Next.js",
	config.LanguageTypeScript: "TypeScript",
	config.LanguageJavaScript: "JavaScript",
	config.StylingCSS:         "CSS",
	config.StylingSCSS:        "SCSS",
}

// DisplayName converts an enum value like "feature-based" or "nextjs"
// into a human label.
func DisplayName(value string) string {
	if label, ok := displayOverrides[value]; ok {
		return label
	}
	return titleCaser.String(strings.ReplaceAll(value, "-", " "))
}

// GuideFor builds the architecture guide for a validated configuration.
func GuideFor(cfg *config.Config) *Guide {
	s := StructureFor(cfg)

	placement := make(map[string]string, len(resourceTypes))
	for _, t := range resourceTypes {
		if t == TypeAPI && cfg.Framework != config.FrameworkNextJS {
			placement[string(t)] = "unavailable (requires nextjs)"
			continue
		}
		if t == TypeComponent && cfg.Pattern == config.PatternAtomicDesign {
			placement[string(t)] = s.ComponentDir(LevelAtom) + " (by atomic level)"
			continue
		}
		dir := s.Dir(t)
		if t == TypeComponent {
			dir = s.ComponentDir("")
		}
		placement[string(t)] = dir
	}

	return &Guide{
		Pattern:              cfg.Pattern,
		Framework:            cfg.Framework,
		Description:          patternDescriptions[cfg.Pattern],
		Folders:              s.Folders,
		ResourcePlacement:    placement,
		NamingConventions:    namingConventions,
		ResourceDescriptions: resourceDescriptions,
		FileExtensions: map[string]string{
			"script":    "." + cfg.ScriptExt(),
			"component": "." + cfg.ComponentExt(),
			"style":     ".module." + cfg.StyleExt(),
		},
	}
}

// Markdown renders the guide as a markdown document for terminal display.
func (g *Guide) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s on %s\n\n", DisplayName(g.Pattern), DisplayName(g.Framework))
	fmt.Fprintf(&b, "%s\n\n", g.Description)

	b.WriteString("## Folders\n\n")
	for _, f := range g.Folders {
		fmt.Fprintf(&b, "- `%s`\n", f)
	}

	b.WriteString("\n## Resource placement\n\n")
	for _, t := range sortedKeys(g.ResourcePlacement) {
		fmt.Fprintf(&b, "- **%s**: `%s` (%s)\n", t, g.ResourcePlacement[t], g.ResourceDescriptions[t])
	}

	b.WriteString("\n## Naming conventions\n\n")
	for _, t := range sortedKeys(g.NamingConventions) {
		fmt.Fprintf(&b, "- **%s**: %s\n", t, g.NamingConventions[t])
	}

	b.WriteString("\n## File extensions\n\n")
	for _, k := range sortedKeys(g.FileExtensions) {
		fmt.Fprintf(&b, "- %s: `%s`\n", k, g.FileExtensions[k])
	}
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
