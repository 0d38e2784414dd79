package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/forma-cli/forma/internal/config"
)

func TestLoadMissingYieldsZero(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p != (Preferences{}) {
		t.Errorf("Load() = %+v, want zero preferences", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	withTests := true
	want := Preferences{
		Framework: "nextjs",
		Pattern:   "atomic-design",
		Language:  "typescript",
		Styling:   "scss",
		WithTests: &withTests,
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Framework != want.Framework || got.Pattern != want.Pattern ||
		got.Language != want.Language || got.Styling != want.Styling {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
	if got.WithTests == nil || !*got.WithTests {
		t.Errorf("Load().WithTests = %v, want true", got.WithTests)
	}

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read prefs dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != FileName {
		t.Errorf("prefs dir entries = %v, want only %s", entries, FileName)
	}
}

func TestLoadMalformed(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() on malformed file, want error")
	}
}

func TestApplyFillsOnlyZeroFields(t *testing.T) {
	t.Parallel()

	withTests := true
	p := Preferences{
		Framework: "nextjs",
		Pattern:   "mvc-like",
		Language:  "javascript",
		Styling:   "scss",
		WithTests: &withTests,
	}

	cfg := config.Config{Framework: "react", Styling: "css"}
	p.Apply(&cfg)

	if cfg.Framework != "react" {
		t.Errorf("Apply overwrote Framework: got %q", cfg.Framework)
	}
	if cfg.Styling != "css" {
		t.Errorf("Apply overwrote Styling: got %q", cfg.Styling)
	}
	if cfg.Pattern != "mvc-like" {
		t.Errorf("Apply skipped zero Pattern: got %q", cfg.Pattern)
	}
	if cfg.Language != "javascript" {
		t.Errorf("Apply skipped zero Language: got %q", cfg.Language)
	}
	if !cfg.WithTests {
		t.Error("Apply skipped WithTests")
	}
}

func TestApplyEmptyIsNoOp(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Framework: "react", Pattern: "feature-based", Language: "typescript", Styling: "css"}
	orig := cfg
	(Preferences{}).Apply(&cfg)
	if cfg != orig {
		t.Errorf("Apply(zero) changed config: %+v", cfg)
	}
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Framework: "react",
		Pattern:   "atomic-design",
		Language:  "typescript",
		Styling:   "css",
		WithTests: true,
	}
	p := FromConfig(&cfg)
	if p.Framework != "react" || p.Pattern != "atomic-design" ||
		p.Language != "typescript" || p.Styling != "css" {
		t.Errorf("FromConfig() = %+v", p)
	}
	if p.WithTests == nil || !*p.WithTests {
		t.Errorf("FromConfig().WithTests = %v, want true", p.WithTests)
	}
}
