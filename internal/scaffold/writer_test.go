package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
)

func testConfig(framework, pattern string) *config.Config {
	return &config.Config{
		Framework: framework,
		Pattern:   pattern,
		Language:  config.LanguageTypeScript,
		Styling:   config.StylingCSS,
	}
}

func mustAdd(t *testing.T, root string, req arch.Request, cfg *config.Config) *AddResult {
	t.Helper()
	result, err := Add(root, req, cfg)
	if err != nil {
		t.Fatalf("Add(%s %s) error: %v", req.Type, req.Name, err)
	}
	return result
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestAddComponent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)

	result := mustAdd(t, root, arch.Request{Type: arch.TypeComponent, Name: "Button"}, cfg)

	if result.Directory != "src/components/shared/Button" {
		t.Errorf("Directory = %q", result.Directory)
	}
	if result.BarrelAction != BarrelCreated {
		t.Errorf("BarrelAction = %q, want created", result.BarrelAction)
	}

	dir := filepath.Join(root, "src", "components", "shared", "Button")
	for _, f := range []string{"Button.tsx", "Button.module.css", "index.ts"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}

	component := readFile(t, filepath.Join(dir, "Button.tsx"))
	if !strings.Contains(component, "Button") || !strings.Contains(component, "export default") {
		t.Errorf("component body %q lacks the expected shape", component)
	}

	barrel := readFile(t, filepath.Join(root, "src", "components", "shared", "index.ts"))
	if !strings.Contains(barrel, "export { default as Button } from './Button';") {
		t.Errorf("parent barrel = %q", barrel)
	}
}

func TestAddConflict(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)
	req := arch.Request{Type: arch.TypeComponent, Name: "Button"}

	mustAdd(t, root, req, cfg)
	_, err := Add(root, req, cfg)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("second Add error = %v, want ErrConflict", err)
	}
}

func TestAddInvalidNameNoSideEffects(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)

	_, err := Add(root, arch.Request{Type: arch.TypeComponent, Name: "my-component"}, cfg)
	if !errors.Is(err, arch.ErrInvalidName) {
		t.Fatalf("Add error = %v, want ErrInvalidName", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed add left %d entries behind", len(entries))
	}
}

func TestAddTypeIsFlatFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)

	result := mustAdd(t, root, arch.Request{Type: arch.TypeType, Name: "User"}, cfg)
	if result.BarrelAction != "" {
		t.Errorf("type BarrelAction = %q, want none", result.BarrelAction)
	}
	if _, err := os.Stat(filepath.Join(root, "src", "types", "User.types.ts")); err != nil {
		t.Fatalf("missing type file: %v", err)
	}

	// A second type shares the directory without conflict.
	mustAdd(t, root, arch.Request{Type: arch.TypeType, Name: "Cart"}, cfg)

	// The same type conflicts on the file.
	if _, err := Add(root, arch.Request{Type: arch.TypeType, Name: "User"}, cfg); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate type Add error = %v, want ErrConflict", err)
	}
}

func TestAddFeature(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)
	cfg.WithTests = true

	result := mustAdd(t, root, arch.Request{Type: arch.TypeFeature, Name: "Checkout"}, cfg)

	base := filepath.Join(root, "src", "features", "Checkout")
	for _, rel := range result.Files {
		if _, err := os.Stat(filepath.Join(base, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}

	// Group barrels re-export their children.
	groupBarrel := readFile(t, filepath.Join(base, "components", "index.ts"))
	if !strings.Contains(groupBarrel, "CheckoutView") {
		t.Errorf("components barrel = %q", groupBarrel)
	}
}

func TestAddContextUseClient(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := testConfig(config.FrameworkNextJS, config.PatternFeatureBased)

	mustAdd(t, root, arch.Request{Type: arch.TypeContext, Name: "Auth"}, cfg)
	body := readFile(t, filepath.Join(root, "contexts", "AuthContext", "AuthContext.tsx"))
	if !strings.HasPrefix(body, "'use client';") {
		t.Errorf("nextjs context should start with the client directive, got %q", body[:40])
	}
	for _, token := range []string{"AuthContext", "AuthProvider", "useAuth"} {
		if !strings.Contains(body, token) {
			t.Errorf("context body missing %s", token)
		}
	}
}

func TestScaffoldFolders(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := testConfig(config.FrameworkReact, config.PatternAtomicDesign)
	s := arch.StructureFor(cfg)

	created, err := ScaffoldFolders(root, s)
	if err != nil {
		t.Fatalf("ScaffoldFolders() error: %v", err)
	}
	if len(created) != len(s.Folders) {
		t.Errorf("created %d folders, want %d", len(created), len(s.Folders))
	}
	if missing := MissingFolders(root, s); len(missing) != 0 {
		t.Errorf("missing after scaffold: %v", missing)
	}

	// Second run creates nothing.
	created, err = ScaffoldFolders(root, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 0 {
		t.Errorf("second run created %v", created)
	}
}

func TestMissingFolders(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)
	s := arch.StructureFor(cfg)

	missing := MissingFolders(root, s)
	if len(missing) != len(s.Folders) {
		t.Errorf("missing = %d, want all %d", len(missing), len(s.Folders))
	}
}
