package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDoc(t *testing.T, doc string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestValidateDocumentValid(t *testing.T) {
	t.Parallel()

	root := writeDoc(t, `{"framework":"nextjs","pattern":"domain-driven","language":"javascript","styling":"scss","withTests":false,"useClient":true}`)
	issues, err := ValidateDocument(root)
	if err != nil {
		t.Fatalf("ValidateDocument() error: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
}

func TestValidateDocumentMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ValidateDocument(t.TempDir())
	if !errors.Is(err, ErrConfigMissing) {
		t.Fatalf("error = %v, want ErrConfigMissing", err)
	}
}

func TestValidateDocumentIssues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		wantPath string
	}{
		{
			"missing field",
			`{"framework":"react","pattern":"mvc-like","language":"typescript","styling":"css","withTests":true}`,
			"",
		},
		{
			"wrong type",
			`{"framework":"react","pattern":"mvc-like","language":"typescript","styling":"css","withTests":"yes","useClient":false}`,
			"/withTests",
		},
		{
			"out of enum",
			`{"framework":"angular","pattern":"mvc-like","language":"typescript","styling":"css","withTests":true,"useClient":false}`,
			"/framework",
		},
		{
			"extra field",
			`{"framework":"react","pattern":"mvc-like","language":"typescript","styling":"css","withTests":true,"useClient":false,"theme":"dark"}`,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			issues, err := ValidateDocument(writeDoc(t, tt.doc))
			if err != nil {
				t.Fatalf("ValidateDocument() error: %v", err)
			}
			if len(issues) == 0 {
				t.Fatal("no issues reported, want at least one")
			}
			if tt.wantPath != "" {
				found := false
				for _, issue := range issues {
					if issue.Path == tt.wantPath {
						found = true
					}
				}
				if !found {
					t.Errorf("issues %v missing path %q", issues, tt.wantPath)
				}
			}
		})
	}
}

func TestValidateDocumentNotJSON(t *testing.T) {
	t.Parallel()

	issues, err := ValidateDocument(writeDoc(t, "{broken"))
	if err != nil {
		t.Fatalf("ValidateDocument() error: %v", err)
	}
	if len(issues) != 1 || !strings.Contains(issues[0].Message, "not valid JSON") {
		t.Errorf("issues = %v, want a single not-valid-JSON issue", issues)
	}
}
