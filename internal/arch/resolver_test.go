package arch

import (
	"errors"
	"reflect"
	"strings"
	"testing"

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

func TestResolveComponentFeatureBased(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)
	info, err := Resolve(Request{Type: TypeComponent, Name: "Button"}, cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if info.Directory != "src/components/shared/Button" {
		t.Errorf("Directory = %q, want %q", info.Directory, "src/components/shared/Button")
	}
	if info.ResolvedName != "Button" {
		t.Errorf("ResolvedName = %q, want %q", info.ResolvedName, "Button")
	}
	want := []string{"Button.tsx", "Button.module.css", "index.ts"}
	if !reflect.DeepEqual(info.Files, want) {
		t.Errorf("Files = %v, want %v", info.Files, want)
	}
}

func TestResolveComponentAtomicLevels(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.FrameworkReact, config.PatternAtomicDesign)

	tests := []struct {
		name     string
		level    string
		wantDir  string
		wantNote bool
	}{
		{"explicit molecule", "molecule", "src/components/molecules/Card", false},
		{"explicit template", "template", "src/components/templates/Card", false},
		{"react page level", "page", "src/components/pages/Card", false},
		{"default to atom", "", "src/components/atoms/Card", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info, err := Resolve(Request{Type: TypeComponent, Name: "Card", AtomicLevel: tt.level}, cfg)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if info.Directory != tt.wantDir {
				t.Errorf("Directory = %q, want %q", info.Directory, tt.wantDir)
			}
			if tt.wantNote && info.Note == "" {
				t.Error("expected a defaulting note, got none")
			}
			if !tt.wantNote && info.Note != "" {
				t.Errorf("unexpected note %q", info.Note)
			}
		})
	}
}

func TestResolveComponentUnknownAtomicLevel(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.FrameworkReact, config.PatternAtomicDesign)
	_, err := Resolve(Request{Type: TypeComponent, Name: "Card", AtomicLevel: "quark"}, cfg)
	var levelErr *UnknownAtomicLevelError
	if !errors.As(err, &levelErr) {
		t.Fatalf("error = %v, want *UnknownAtomicLevelError", err)
	}

	// The page level belongs to react only.
	next := testConfig(config.FrameworkNextJS, config.PatternAtomicDesign)
	if _, err := Resolve(Request{Type: TypeComponent, Name: "Card", AtomicLevel: "page"}, next); !errors.As(err, &levelErr) {
		t.Fatalf("page level under nextjs: error = %v, want *UnknownAtomicLevelError", err)
	}
}

func TestResolveComponentLevelIgnoredOutsideAtomic(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)
	info, err := Resolve(Request{Type: TypeComponent, Name: "Card", AtomicLevel: "molecule"}, cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if info.Directory != "src/components/shared/Card" {
		t.Errorf("Directory = %q, want %q", info.Directory, "src/components/shared/Card")
	}
	if !strings.Contains(info.Note, "ignored") {
		t.Errorf("Note = %q, want mention of the ignored level", info.Note)
	}
}

func TestResolveHook(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)

	for _, name := range []string{"Auth", "UseAuth"} {
		info, err := Resolve(Request{Type: TypeHook, Name: name}, cfg)
		if err != nil {
			t.Fatalf("Resolve(hook %q) error: %v", name, err)
		}
		if info.ResolvedName != "useAuth" {
			t.Errorf("ResolvedName(%q) = %q, want useAuth", name, info.ResolvedName)
		}
		if info.Directory != "src/hooks/useAuth" {
			t.Errorf("Directory(%q) = %q, want src/hooks/useAuth", name, info.Directory)
		}
		want := []string{"useAuth.ts", "index.ts"}
		if !reflect.DeepEqual(info.Files, want) {
			t.Errorf("Files = %v, want %v", info.Files, want)
		}
	}
}

func TestResolveService(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)
	info, err := Resolve(Request{Type: TypeService, Name: "User"}, cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if info.ResolvedName != "userService" {
		t.Errorf("ResolvedName = %q, want userService", info.ResolvedName)
	}
	if info.Directory != "src/services/userService" {
		t.Errorf("Directory = %q, want src/services/userService", info.Directory)
	}
}

func TestResolvePage(t *testing.T) {
	t.Parallel()

	react := testConfig(config.FrameworkReact, config.PatternFeatureBased)
	info, err := Resolve(Request{Type: TypePage, Name: "Home"}, react)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if info.Directory != "src/pages/Home" {
		t.Errorf("Directory = %q, want src/pages/Home", info.Directory)
	}
	if info.ResolvedName != "HomePage" {
		t.Errorf("ResolvedName = %q, want HomePage", info.ResolvedName)
	}
	want := []string{"HomePage.tsx", "HomePage.module.css", "index.ts"}
	if !reflect.DeepEqual(info.Files, want) {
		t.Errorf("Files = %v, want %v", info.Files, want)
	}

	next := testConfig(config.FrameworkNextJS, config.PatternFeatureBased)
	info, err = Resolve(Request{Type: TypePage, Name: "Home"}, next)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if info.Directory != "app/Home" {
		t.Errorf("nextjs Directory = %q, want app/Home", info.Directory)
	}
}

func TestResolveContextStoreType(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)

	ctx, err := Resolve(Request{Type: TypeContext, Name: "Auth"}, cfg)
	if err != nil {
		t.Fatalf("Resolve(context) error: %v", err)
	}
	if ctx.ResolvedName != "AuthContext" || ctx.Directory != "src/contexts/AuthContext" {
		t.Errorf("context = %q in %q", ctx.ResolvedName, ctx.Directory)
	}
	if ctx.Files[0] != "AuthContext.tsx" {
		t.Errorf("context primary file = %q, want AuthContext.tsx", ctx.Files[0])
	}

	store, err := Resolve(Request{Type: TypeStore, Name: "Cart"}, cfg)
	if err != nil {
		t.Fatalf("Resolve(store) error: %v", err)
	}
	if store.ResolvedName != "useCartStore" {
		t.Errorf("store ResolvedName = %q, want useCartStore", store.ResolvedName)
	}

	typ, err := Resolve(Request{Type: TypeType, Name: "User"}, cfg)
	if err != nil {
		t.Fatalf("Resolve(type) error: %v", err)
	}
	if typ.Directory != "src/types" {
		t.Errorf("type Directory = %q, want src/types (no subdirectory)", typ.Directory)
	}
	want := []string{"User.types.ts"}
	if !reflect.DeepEqual(typ.Files, want) {
		t.Errorf("type Files = %v, want %v (no test, no barrel)", typ.Files, want)
	}
}

func TestResolveAPIRequiresNextJS(t *testing.T) {
	t.Parallel()

	react := testConfig(config.FrameworkReact, config.PatternFeatureBased)
	_, err := Resolve(Request{Type: TypeAPI, Name: "Users"}, react)
	if err == nil {
		t.Fatal("Resolve(api) under react = nil error, want failure")
	}
	if !errors.Is(err, ErrUnsupportedCombination) {
		t.Errorf("error = %v, want ErrUnsupportedCombination", err)
	}
	if !strings.Contains(strings.ToLower(err.Error()), "next") {
		t.Errorf("error %q should mention the Next.js requirement", err)
	}

	next := testConfig(config.FrameworkNextJS, config.PatternFeatureBased)
	info, err := Resolve(Request{Type: TypeAPI, Name: "Users"}, next)
	if err != nil {
		t.Fatalf("Resolve(api) under nextjs error: %v", err)
	}
	if info.Directory != "app/api/users" {
		t.Errorf("Directory = %q, want app/api/users", info.Directory)
	}
	want := []string{"route.ts"}
	if !reflect.DeepEqual(info.Files, want) {
		t.Errorf("Files = %v, want %v", info.Files, want)
	}
}

func TestResolveFeature(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)
	cfg.WithTests = true
	info, err := Resolve(Request{Type: TypeFeature, Name: "Checkout"}, cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if info.Directory != "src/features/Checkout" {
		t.Errorf("Directory = %q, want src/features/Checkout", info.Directory)
	}

	wantFiles := []string{
		"components/CheckoutView/CheckoutView.tsx",
		"components/CheckoutView/CheckoutView.module.css",
		"components/CheckoutView/index.ts",
		"components/index.ts",
		"hooks/useCheckout/useCheckout.ts",
		"hooks/useCheckout/index.ts",
		"hooks/index.ts",
		"services/checkoutService/checkoutService.ts",
		"services/checkoutService/index.ts",
		"services/index.ts",
		"types.ts",
		"index.ts",
		"components/CheckoutView/CheckoutView.test.tsx",
		"hooks/useCheckout/useCheckout.test.ts",
	}
	if !reflect.DeepEqual(info.Files, wantFiles) {
		t.Errorf("Files = %v, want %v", info.Files, wantFiles)
	}

	// No service test even with tests enabled.
	for _, f := range info.Files {
		if strings.Contains(f, "Service.test") {
			t.Errorf("unexpected service test file %q", f)
		}
	}
}

func TestResolveWithTests(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)
	cfg.WithTests = true

	component, err := Resolve(Request{Type: TypeComponent, Name: "Button"}, cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	want := []string{"Button.tsx", "Button.module.css", "index.ts", "Button.test.tsx"}
	if !reflect.DeepEqual(component.Files, want) {
		t.Errorf("component Files = %v, want %v", component.Files, want)
	}

	// type resources never get tests.
	typ, err := Resolve(Request{Type: TypeType, Name: "User"}, cfg)
	if err != nil {
		t.Fatalf("Resolve(type) error: %v", err)
	}
	if len(typ.Files) != 1 {
		t.Errorf("type Files = %v, want exactly the declaration file", typ.Files)
	}
}

func TestResolveUnknownType(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)
	_, err := Resolve(Request{Type: "widget", Name: "Button"}, cfg)
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("error = %v, want ErrUnknownType", err)
	}
}

func TestResolveJavaScriptExtensions(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.FrameworkReact, config.PatternFeatureBased)
	cfg.Language = config.LanguageJavaScript
	cfg.Styling = config.StylingSCSS

	info, err := Resolve(Request{Type: TypeComponent, Name: "Button"}, cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	want := []string{"Button.jsx", "Button.module.scss", "index.js"}
	if !reflect.DeepEqual(info.Files, want) {
		t.Errorf("Files = %v, want %v", info.Files, want)
	}
}
