package arch

import (
	"errors"
	"testing"
)

func TestToCamelCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"pascal", "UserProfile", "userProfile"},
		{"single letter", "A", "a"},
		{"already camel", "userProfile", "userProfile"},
		{"digits preserved", "Page2View", "page2View"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ToCamelCase(tt.in); got != tt.want {
				t.Errorf("ToCamelCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToCamelCaseIdempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"UserProfile", "Auth", "X", "useAuth"} {
		once := ToCamelCase(in)
		if twice := ToCamelCase(once); twice != once {
			t.Errorf("ToCamelCase not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestValidateNameAccepts(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Button", "UserProfile", "A", "Page2", "HTTPClient"} {
		if err := ValidateName(name, TypeComponent); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}
}

func TestValidateNameRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		name  string
	}{
		{"lowercase start", "button"},
		{"digit start", "123bad"},
		{"hyphen", "my-component"},
		{"underscore", "My_Component"},
		{"empty", ""},
		{"whitespace", "   "},
		{"interior space", "My Component"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			err := ValidateName(tt.name, TypeHook)
			if err == nil {
				t.Fatalf("ValidateName(%q) = nil, want error", tt.name)
			}
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("ValidateName(%q) error = %v, want ErrInvalidName", tt.name, err)
			}
			var nameErr *InvalidNameError
			if !errors.As(err, &nameErr) {
				t.Fatalf("ValidateName(%q) error type = %T, want *InvalidNameError", tt.name, err)
			}
			if nameErr.Name != tt.name || nameErr.Type != TypeHook {
				t.Errorf("InvalidNameError = {%q %q}, want {%q %q}",
					nameErr.Name, nameErr.Type, tt.name, TypeHook)
			}
		})
	}
}

func TestHookName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Auth", "useAuth"},
		{"UseAuth", "useAuth"},
		{"User", "useUser"},   // "user" is not use-prefixed
		{"Users", "useUsers"}, // neither is "users"
		{"UseFetch", "useFetch"},
	}

	for _, tt := range tests {
		if got := HookName(tt.in); got != tt.want {
			t.Errorf("HookName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
