package arch

import (
	"path"
	"slices"

	"github.com/forma-cli/forma/internal/config"
)

// Structure is the static mapping from one (framework × pattern) pair to
// its scaffold folder set and per-resource-kind containing directories.
// All directories are project-root-relative, forward-slash paths: rooted
// at src/ for react, un-rooted for nextjs.
type Structure struct {
	Framework string
	Pattern   string

	// Folders is the ordered list of directories scaffolded at init time.
	Folders []string

	dirs       map[ResourceType]string
	atomicDirs map[AtomicLevel]string
}

// Dir returns the containing directory for a non-component resource kind.
func (s *Structure) Dir(t ResourceType) string {
	return s.dirs[t]
}

// ComponentDir returns the containing directory for a component at the
// given atomic level. For non-atomic patterns the level is ignored.
func (s *Structure) ComponentDir(level AtomicLevel) string {
	if s.Pattern != config.PatternAtomicDesign {
		return s.dirs[TypeComponent]
	}
	return s.atomicDirs[level]
}

// ComponentDirs returns every directory that can host components: one per
// atomic level under atomic-design, a single directory otherwise.
func (s *Structure) ComponentDirs() []string {
	if s.Pattern != config.PatternAtomicDesign {
		return []string{s.dirs[TypeComponent]}
	}
	var dirs []string
	for _, lvl := range AtomicLevels(s.Framework) {
		dirs = append(dirs, s.atomicDirs[lvl])
	}
	return dirs
}

// layout is a pattern's framework-agnostic shape. Directories are relative;
// the react variant prefixes src/ and the nextjs variant substitutes the
// app router locations for pages and api routes.
type layout struct {
	folders    []string
	dirs       map[ResourceType]string
	atomicDirs map[AtomicLevel]string
}

var layouts = map[string]layout{
	config.PatternAtomicDesign: {
		folders: []string{
			"components/atoms", "components/molecules", "components/organisms",
			"components/templates", "hooks", "services", "contexts", "stores", "types",
		},
		dirs: map[ResourceType]string{
			TypeComponent: "components/atoms",
			TypeHook:      "hooks",
			TypePage:      "pages",
			TypeService:   "services",
			TypeContext:   "contexts",
			TypeStore:     "stores",
			TypeType:      "types",
			TypeFeature:   "features",
		},
		atomicDirs: map[AtomicLevel]string{
			LevelAtom:     "components/atoms",
			LevelMolecule: "components/molecules",
			LevelOrganism: "components/organisms",
			LevelTemplate: "components/templates",
			LevelPage:     "components/pages",
		},
	},
	config.PatternFeatureBased: {
		folders: []string{
			"components/shared", "features", "hooks", "services",
			"contexts", "stores", "types",
		},
		dirs: map[ResourceType]string{
			TypeComponent: "components/shared",
			TypeHook:      "hooks",
			TypePage:      "pages",
			TypeService:   "services",
			TypeContext:   "contexts",
			TypeStore:     "stores",
			TypeType:      "types",
			TypeFeature:   "features",
		},
	},
	config.PatternDomainDriven: {
		folders: []string{
			"domains", "shared/components", "shared/hooks", "shared/services",
			"shared/contexts", "shared/stores", "shared/types",
		},
		dirs: map[ResourceType]string{
			TypeComponent: "shared/components",
			TypeHook:      "shared/hooks",
			TypePage:      "pages",
			TypeService:   "shared/services",
			TypeContext:   "shared/contexts",
			TypeStore:     "shared/stores",
			TypeType:      "shared/types",
			TypeFeature:   "domains",
		},
	},
	config.PatternMVCLike: {
		folders: []string{
			"components", "views", "controllers", "models",
			"hooks", "contexts", "stores",
		},
		dirs: map[ResourceType]string{
			TypeComponent: "components",
			TypeHook:      "hooks",
			TypePage:      "views",
			TypeService:   "controllers",
			TypeContext:   "contexts",
			TypeStore:     "stores",
			TypeType:      "models",
			TypeFeature:   "modules",
		},
	},
}

// StructureFor builds the Structure for the given configuration. The
// configuration must already be validated; an unknown pattern yields nil.
func StructureFor(cfg *config.Config) *Structure {
	l, ok := layouts[cfg.Pattern]
	if !ok {
		return nil
	}

	s := &Structure{
		Framework:  cfg.Framework,
		Pattern:    cfg.Pattern,
		dirs:       make(map[ResourceType]string, len(l.dirs)+1),
		atomicDirs: make(map[AtomicLevel]string, len(l.atomicDirs)),
	}

	root := func(dir string) string {
		if cfg.Framework == config.FrameworkReact {
			return path.Join("src", dir)
		}
		return dir
	}

	for t, dir := range l.dirs {
		s.dirs[t] = root(dir)
	}
	for lvl, dir := range l.atomicDirs {
		s.atomicDirs[lvl] = root(dir)
	}

	// The app router owns pages and api routes under nextjs; react keeps a
	// conventional pages directory and has no api location at all.
	if cfg.Framework == config.FrameworkNextJS {
		s.dirs[TypePage] = "app"
		s.dirs[TypeAPI] = "app/api"
	}

	for _, dir := range l.folders {
		s.Folders = append(s.Folders, root(dir))
	}
	// mvc-like already lists the page dir (views) among its folders.
	if !slices.Contains(s.Folders, s.dirs[TypePage]) {
		s.Folders = append(s.Folders, s.dirs[TypePage])
	}
	if cfg.Framework == config.FrameworkNextJS {
		s.Folders = append(s.Folders, s.dirs[TypeAPI])
	} else if cfg.Pattern == config.PatternAtomicDesign {
		// The page atomic level only exists under react.
		s.Folders = append(s.Folders, s.atomicDirs[LevelPage])
	}

	return s
}
