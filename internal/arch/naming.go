// Package arch implements the architecture core shared by the CLI commands
// and the MCP query layer: naming transforms, the (framework × pattern)
// structure table, and the single path-resolution function both call sites
// consume. Nothing in this package touches the filesystem.
package arch

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// pascalCasePattern matches the accepted resource name form: an uppercase
// letter followed by letters and digits only.
var pascalCasePattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)

// ToCamelCase lowercases the first character of name and leaves the rest
// untouched. It is idempotent on already-camelCase input.
func ToCamelCase(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

// ValidateName checks that name is valid PascalCase for the given resource
// type. On violation it returns an *InvalidNameError carrying both the
// offending name and the type, so callers can abort before any side effects.
func ValidateName(name string, resourceType ResourceType) error {
	if !pascalCasePattern.MatchString(name) {
		return &InvalidNameError{Name: name, Type: resourceType}
	}
	return nil
}

// hookPrefixed reports whether the camelCase form of a name already carries
// the "use" hook prefix. The prefix only counts when followed by an
// uppercase letter: "useAuth" is a hook name, "user" is not.
func hookPrefixed(camel string) bool {
	if len(camel) <= 3 || camel[:3] != "use" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(camel[3:])
	return unicode.IsUpper(r)
}
