package scaffold

import (
	"fmt"
	"path"
	"strings"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
)

// FileContents returns the body for every file the resolver enumerated,
// keyed by the file's path relative to info.Directory. Bodies are minimal
// idiomatic React/Next shapes; their exact text is not contractual beyond
// the identifiers the rename engine rewrites.
func FileContents(req arch.Request, info *arch.PathInfo, cfg *config.Config) map[string]string {
	g := generator{cfg: cfg, req: req, info: info}
	out := make(map[string]string, len(info.Files))
	for _, rel := range info.Files {
		out[rel] = g.body(rel)
	}
	return out
}

type generator struct {
	cfg  *config.Config
	req  arch.Request
	info *arch.PathInfo
}

func (g *generator) script() string { return g.cfg.ScriptExt() }

// body dispatches on the file's name and location within the resource.
func (g *generator) body(rel string) string {
	base := path.Base(rel)

	switch {
	case strings.Contains(base, ".module."):
		return g.style(strings.SplitN(base, ".module.", 2)[0])
	case strings.Contains(base, ".test."):
		return g.test(rel)
	case base == "route."+g.script():
		return g.apiRoute()
	case base == "index."+g.script():
		return g.barrel(rel)
	case base == "types."+g.script() && g.req.Type == arch.TypeFeature:
		return g.featureTypes()
	}
	return g.primary(rel)
}

// primary generates the main source file for the resource (or a nested
// feature resource, identified by its directory).
func (g *generator) primary(rel string) string {
	name := strings.TrimSuffix(path.Base(rel), path.Ext(rel))

	switch g.req.Type {
	case arch.TypeComponent:
		return g.component(name)
	case arch.TypeHook:
		return g.hook(name)
	case arch.TypePage:
		return g.component(name)
	case arch.TypeService:
		return g.service(name)
	case arch.TypeContext:
		return g.context()
	case arch.TypeStore:
		return g.store(name)
	case arch.TypeType:
		return g.typeDecls()
	case arch.TypeFeature:
		switch {
		case strings.HasPrefix(rel, "components/"):
			return g.component(name)
		case strings.HasPrefix(rel, "hooks/"):
			return g.hook(name)
		case strings.HasPrefix(rel, "services/"):
			return g.service(name)
		}
	}
	return ""
}

// useClientDirective returns the "use client" prologue when the
// configuration asks for it. Contexts pass force to get it regardless.
func (g *generator) useClientDirective(force bool) string {
	if g.cfg.Framework != config.FrameworkNextJS {
		return ""
	}
	if g.cfg.UseClient || force {
		return "'use client';\n\n"
	}
	return ""
}

func (g *generator) component(name string) string {
	className := arch.ToCamelCase(name)
	styleImport := fmt.Sprintf("import styles from './%s.module.%s';\n", name, g.cfg.StyleExt())

	if g.cfg.Language == config.LanguageTypeScript {
		return g.useClientDirective(false) +
			"import type { ReactNode } from 'react';\n\n" +
			styleImport + "\n" +
			fmt.Sprintf("export interface %sProps {\n  children?: ReactNode;\n}\n\n", name) +
			fmt.Sprintf("export default function %s({ children }: %sProps) {\n", name, name) +
			fmt.Sprintf("  return <div className={styles.%s}>{children}</div>;\n}\n", className)
	}
	return g.useClientDirective(false) +
		styleImport + "\n" +
		fmt.Sprintf("export default function %s({ children }) {\n", name) +
		fmt.Sprintf("  return <div className={styles.%s}>{children}</div>;\n}\n", className)
}

func (g *generator) hook(name string) string {
	if g.cfg.Language == config.LanguageTypeScript {
		return "import { useCallback, useState } from 'react';\n\n" +
			fmt.Sprintf("export default function %s() {\n", name) +
			"  const [value, setValue] = useState<unknown>(null);\n" +
			"  const update = useCallback((next: unknown) => setValue(next), []);\n" +
			"  return { value, update };\n}\n"
	}
	return "import { useCallback, useState } from 'react';\n\n" +
		fmt.Sprintf("export default function %s() {\n", name) +
		"  const [value, setValue] = useState(null);\n" +
		"  const update = useCallback((next) => setValue(next), []);\n" +
		"  return { value, update };\n}\n"
}

func (g *generator) service(name string) string {
	route := strings.TrimSuffix(name, "Service")
	id := "id"
	if g.cfg.Language == config.LanguageTypeScript {
		id = "id: string"
	}
	return fmt.Sprintf("const BASE_URL = '/api/%s';\n\n", route) +
		fmt.Sprintf("const %s = {\n", name) +
		"  async list() {\n    const response = await fetch(BASE_URL);\n    return response.json();\n  },\n\n" +
		fmt.Sprintf("  async get(%s) {\n    const response = await fetch(`${BASE_URL}/${id}`);\n    return response.json();\n  },\n", id) +
		"};\n\n" +
		fmt.Sprintf("export default %s;\n", name)
}

// context always gets the client directive under nextjs, independent of
// the useClient setting.
func (g *generator) context() string {
	name := g.req.Name
	ctx := name + "Context"
	provider := name + "Provider"
	hook := "use" + name

	if g.cfg.Language == config.LanguageTypeScript {
		return g.useClientDirective(true) +
			"import { createContext, useContext, useState, type ReactNode } from 'react';\n\n" +
			fmt.Sprintf("interface %sValue {\n  ready: boolean;\n  setReady: (ready: boolean) => void;\n}\n\n", ctx) +
			fmt.Sprintf("const %s = createContext<%sValue | null>(null);\n\n", ctx, ctx) +
			fmt.Sprintf("export function %s({ children }: { children: ReactNode }) {\n", provider) +
			"  const [ready, setReady] = useState(false);\n" +
			fmt.Sprintf("  return <%s.Provider value={{ ready, setReady }}>{children}</%s.Provider>;\n}\n\n", ctx, ctx) +
			fmt.Sprintf("export function %s() {\n", hook) +
			fmt.Sprintf("  const context = useContext(%s);\n", ctx) +
			fmt.Sprintf("  if (!context) {\n    throw new Error('%s must be used within %s');\n  }\n", hook, provider) +
			"  return context;\n}\n\n" +
			fmt.Sprintf("export default %s;\n", ctx)
	}
	return g.useClientDirective(true) +
		"import { createContext, useContext, useState } from 'react';\n\n" +
		fmt.Sprintf("const %s = createContext(null);\n\n", ctx) +
		fmt.Sprintf("export function %s({ children }) {\n", provider) +
		"  const [ready, setReady] = useState(false);\n" +
		fmt.Sprintf("  return <%s.Provider value={{ ready, setReady }}>{children}</%s.Provider>;\n}\n\n", ctx, ctx) +
		fmt.Sprintf("export function %s() {\n", hook) +
		fmt.Sprintf("  const context = useContext(%s);\n", ctx) +
		fmt.Sprintf("  if (!context) {\n    throw new Error('%s must be used within %s');\n  }\n", hook, provider) +
		"  return context;\n}\n\n" +
		fmt.Sprintf("export default %s;\n", ctx)
}

func (g *generator) store(name string) string {
	stateName := strings.TrimSuffix(strings.TrimPrefix(name, "use"), "Store") + "State"
	if g.cfg.Language == config.LanguageTypeScript {
		return "import { useCallback, useState } from 'react';\n\n" +
			fmt.Sprintf("export interface %s {\n  [key: string]: unknown;\n}\n\n", stateName) +
			fmt.Sprintf("export default function %s(initial: %s = {}) {\n", name, stateName) +
			fmt.Sprintf("  const [state, setState] = useState<%s>(initial);\n", stateName) +
			fmt.Sprintf("  const patch = useCallback((next: Partial<%s>) => {\n", stateName) +
			"    setState((current) => ({ ...current, ...next }));\n  }, []);\n" +
			"  return { state, patch };\n}\n"
	}
	return "import { useCallback, useState } from 'react';\n\n" +
		fmt.Sprintf("export default function %s(initial = {}) {\n", name) +
		"  const [state, setState] = useState(initial);\n" +
		"  const patch = useCallback((next) => {\n" +
		"    setState((current) => ({ ...current, ...next }));\n  }, []);\n" +
		"  return { state, patch };\n}\n"
}

func (g *generator) typeDecls() string {
	name := g.req.Name
	if g.cfg.Language == config.LanguageTypeScript {
		return fmt.Sprintf("export interface %s {\n  id: string;\n}\n\nexport type %sList = %s[];\n", name, name, name)
	}
	return fmt.Sprintf("/**\n * @typedef {Object} %s\n * @property {string} id\n */\n\nexport {};\n", name)
}

func (g *generator) featureTypes() string {
	name := g.req.Name
	if g.cfg.Language == config.LanguageTypeScript {
		return fmt.Sprintf("export interface %sState {\n  ready: boolean;\n}\n", name)
	}
	return fmt.Sprintf("/**\n * @typedef {Object} %sState\n * @property {boolean} ready\n */\n\nexport {};\n", name)
}

func (g *generator) apiRoute() string {
	request := "request"
	if g.cfg.Language == config.LanguageTypeScript {
		request = "request: Request"
	}
	return "export async function GET() {\n" +
		fmt.Sprintf("  return Response.json({ resource: '%s' });\n}\n\n", g.info.ResolvedName) +
		fmt.Sprintf("export async function POST(%s) {\n", request) +
		"  const body = await request.json();\n" +
		"  return Response.json(body, { status: 201 });\n}\n"
}

func (g *generator) style(name string) string {
	return fmt.Sprintf(".%s {\n  display: block;\n}\n", arch.ToCamelCase(name))
}

// barrel generates an index file. The location inside a feature decides
// between star re-exports (group and root barrels) and the default-as
// line next to a primary file.
func (g *generator) barrel(rel string) string {
	if g.req.Type != arch.TypeFeature {
		return fmt.Sprintf("export { default as %s } from './%s';\n", g.info.ResolvedName, g.info.ResolvedName)
	}

	dir := path.Dir(rel)
	switch dir {
	case ".":
		return "export * from './components';\nexport * from './hooks';\nexport * from './services';\nexport * from './types';\n"
	case "components", "hooks", "services":
		return fmt.Sprintf("export * from './%s';\n", g.featureChild(dir))
	}
	// Leaf barrel next to a nested primary file.
	name := path.Base(dir)
	return fmt.Sprintf("export { default as %s } from './%s';\n", name, name)
}

// featureChild returns the nested resource directory name for a feature
// group directory.
func (g *generator) featureChild(group string) string {
	switch group {
	case "components":
		return g.req.Name + "View"
	case "hooks":
		return arch.HookName(g.req.Name)
	case "services":
		return arch.ToCamelCase(g.req.Name) + "Service"
	}
	return ""
}

func (g *generator) test(rel string) string {
	base := path.Base(rel)
	name := strings.SplitN(base, ".test.", 2)[0]
	componentLike := strings.HasSuffix(base, "."+g.cfg.ComponentExt())

	if componentLike {
		return "import { render } from '@testing-library/react';\n\n" +
			fmt.Sprintf("import %s from './%s';\n\n", name, name) +
			fmt.Sprintf("describe('%s', () => {\n", name) +
			"  it('renders without crashing', () => {\n" +
			fmt.Sprintf("    render(<%s />);\n  });\n});\n", name)
	}
	if strings.HasPrefix(name, "use") {
		return "import { renderHook } from '@testing-library/react';\n\n" +
			fmt.Sprintf("import %s from './%s';\n\n", name, name) +
			fmt.Sprintf("describe('%s', () => {\n", name) +
			"  it('returns a value', () => {\n" +
			fmt.Sprintf("    const { result } = renderHook(() => %s());\n", name) +
			"    expect(result.current).toBeDefined();\n  });\n});\n"
	}
	return fmt.Sprintf("import %s from './%s';\n\n", name, name) +
		fmt.Sprintf("describe('%s', () => {\n", name) +
		"  it('is defined', () => {\n" +
		fmt.Sprintf("    expect(%s).toBeDefined();\n  });\n});\n", name)
}
