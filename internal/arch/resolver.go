package arch

import (
	"fmt"
	"path"

	"github.com/forma-cli/forma/internal/config"
)

// Request identifies a resource to resolve.
type Request struct {
	Type ResourceType
	Name string

	// AtomicLevel optionally sub-classifies a component under the
	// atomic-design pattern. Ignored (with a note) for other patterns.
	AtomicLevel string
}

// PathInfo is the resolution result shared by the file-writing commands
// and the MCP query layer. Directory is project-root-relative with forward
// slashes; Files are relative to Directory (nested for feature resources).
type PathInfo struct {
	Directory    string   `json:"directory"`
	ResolvedName string   `json:"resolvedName"`
	Files        []string `json:"files"`
	Note         string   `json:"note,omitempty"`
}

// Resolve computes the directory, resolved identifier, and expected file
// set for a resource. It is the only place the per-type rules live: every
// caller, mutating or read-only, must go through this function so the two
// surfaces can never drift apart.
func Resolve(req Request, cfg *config.Config) (*PathInfo, error) {
	if !IsValidResourceType(string(req.Type)) {
		return nil, &UnknownTypeError{Type: string(req.Type)}
	}
	if err := ValidateName(req.Name, req.Type); err != nil {
		return nil, err
	}

	s := StructureFor(cfg)
	ext := extensions{
		script:    cfg.ScriptExt(),
		component: cfg.ComponentExt(),
		style:     cfg.StyleExt(),
	}

	switch req.Type {
	case TypeComponent:
		return resolveComponent(req, cfg, s, ext)
	case TypeHook:
		name := HookName(req.Name)
		return simple(s.Dir(TypeHook), name, files(ext, cfg.WithTests,
			name+"."+ext.script, name+".test."+ext.script)), nil
	case TypePage:
		// Pages keep the raw name as their directory, the Page suffix
		// only applies to the generated files.
		name := req.Name + "Page"
		return &PathInfo{
			Directory:    path.Join(s.Dir(TypePage), req.Name),
			ResolvedName: name,
			Files: files(ext, cfg.WithTests,
				name+"."+ext.component, name+".test."+ext.component,
				name+".module."+ext.style),
		}, nil
	case TypeService:
		name := ToCamelCase(req.Name) + "Service"
		return simple(s.Dir(TypeService), name, files(ext, cfg.WithTests,
			name+"."+ext.script, name+".test."+ext.script)), nil
	case TypeContext:
		name := req.Name + "Context"
		return simple(s.Dir(TypeContext), name, files(ext, cfg.WithTests,
			name+"."+ext.component, name+".test."+ext.component)), nil
	case TypeStore:
		name := "use" + req.Name + "Store"
		return simple(s.Dir(TypeStore), name, files(ext, cfg.WithTests,
			name+"."+ext.script, name+".test."+ext.script)), nil
	case TypeType:
		// Type declarations live flat in the types directory, no
		// subdirectory, no barrel, never a test.
		name := req.Name + ".types"
		return &PathInfo{
			Directory:    s.Dir(TypeType),
			ResolvedName: name,
			Files:        []string{name + "." + ext.script},
		}, nil
	case TypeAPI:
		if cfg.Framework != config.FrameworkNextJS {
			return nil, &FrameworkUnsupportedError{Type: TypeAPI, Framework: cfg.Framework}
		}
		name := ToCamelCase(req.Name)
		return &PathInfo{
			Directory:    path.Join(s.Dir(TypeAPI), name),
			ResolvedName: name,
			Files:        []string{"route." + ext.script},
		}, nil
	case TypeFeature:
		return resolveFeature(req, cfg, s, ext), nil
	}
	return nil, &UnknownTypeError{Type: string(req.Type)}
}

// extensions bundles the three config-derived file extensions.
type extensions struct {
	script    string
	component string
	style     string
}

// HookName prefixes the name with "use" unless its camelCase form already
// carries the hook prefix, so "Auth" and "UseAuth" both resolve to useAuth.
func HookName(name string) string {
	camel := ToCamelCase(name)
	if hookPrefixed(camel) {
		return camel
	}
	return "use" + name
}

// resolveComponent handles atomic level selection and its notes.
func resolveComponent(req Request, cfg *config.Config, s *Structure, ext extensions) (*PathInfo, error) {
	level := AtomicLevel(req.AtomicLevel)
	note := ""

	if cfg.Pattern == config.PatternAtomicDesign {
		if req.AtomicLevel == "" {
			level = LevelAtom
			note = "no atomic level specified, defaulting to atom"
		} else if !IsValidAtomicLevel(req.AtomicLevel, cfg.Framework) {
			return nil, &UnknownAtomicLevelError{Level: req.AtomicLevel, Framework: cfg.Framework}
		}
	} else if req.AtomicLevel != "" {
		note = fmt.Sprintf("atomic level %q ignored: pattern %s does not use atomic levels", req.AtomicLevel, cfg.Pattern)
	}

	info := &PathInfo{
		Directory:    path.Join(s.ComponentDir(level), req.Name),
		ResolvedName: req.Name,
		Files: []string{
			req.Name + "." + ext.component,
			req.Name + ".module." + ext.style,
			"index." + ext.script,
		},
		Note: note,
	}
	if cfg.WithTests {
		info.Files = append(info.Files, req.Name+".test."+ext.component)
	}
	return info, nil
}

// resolveFeature enumerates the fixed nested feature file set: a view
// component, a hook, a service, root types and barrels for every
// subdirectory. Tests, when enabled, cover the view and the hook only.
func resolveFeature(req Request, cfg *config.Config, s *Structure, ext extensions) *PathInfo {
	view := req.Name + "View"
	hook := HookName(req.Name)
	service := ToCamelCase(req.Name) + "Service"

	fileSet := []string{
		path.Join("components", view, view+"."+ext.component),
		path.Join("components", view, view+".module."+ext.style),
		path.Join("components", view, "index."+ext.script),
		path.Join("components", "index."+ext.script),
		path.Join("hooks", hook, hook+"."+ext.script),
		path.Join("hooks", hook, "index."+ext.script),
		path.Join("hooks", "index."+ext.script),
		path.Join("services", service, service+"."+ext.script),
		path.Join("services", service, "index."+ext.script),
		path.Join("services", "index."+ext.script),
		"types." + ext.script,
		"index." + ext.script,
	}
	if cfg.WithTests {
		fileSet = append(fileSet,
			path.Join("components", view, view+".test."+ext.component),
			path.Join("hooks", hook, hook+".test."+ext.script),
		)
	}

	return &PathInfo{
		Directory:    path.Join(s.Dir(TypeFeature), req.Name),
		ResolvedName: req.Name,
		Files:        fileSet,
	}
}

// simple builds a PathInfo for the common single-directory resources that
// place the primary file next to an index barrel.
func simple(baseDir, resolvedName string, fileSet []string) *PathInfo {
	return &PathInfo{
		Directory:    path.Join(baseDir, resolvedName),
		ResolvedName: resolvedName,
		Files:        fileSet,
	}
}

// files assembles a primary file, its optional test, any extra files, and
// the index barrel. Tests accompany primary source files only, never
// style modules or barrels.
func files(ext extensions, withTests bool, primary, test string, extra ...string) []string {
	out := []string{primary}
	out = append(out, extra...)
	out = append(out, "index."+ext.script)
	if withTests {
		out = append(out, test)
	}
	return out
}
