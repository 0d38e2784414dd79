package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/config.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// SchemaIssue is a single JSON-schema violation in the persisted document.
type SchemaIssue struct {
	Path    string // instance location, e.g. "/framework"
	Message string
}

func (i SchemaIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// getSchema compiles the embedded config schema once.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("config.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("config.schema.json")
	})
	return compiledSchema, compileErr
}

// ValidateDocument validates the raw persisted configuration file at
// projectRoot against the embedded JSON schema. It catches shape problems
// Load cannot report precisely: missing fields, wrong value types, and
// unknown extra fields. Returns ErrConfigMissing when the file is absent.
func ValidateDocument(projectRoot string) ([]SchemaIssue, error) {
	data, err := os.ReadFile(filepath.Join(projectRoot, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigMissing
		}
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}

	schema, err := getSchema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return []SchemaIssue{{Path: "", Message: fmt.Sprintf("not valid JSON: %v", err)}}, nil
	}

	if err := schema.Validate(inst); err != nil {
		verr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("validate %s: %w", FileName, err)
		}
		return collectIssues(verr), nil
	}
	return nil, nil
}

// collectIssues flattens a ValidationError tree into leaf issues.
func collectIssues(verr *jsonschema.ValidationError) []SchemaIssue {
	var issues []SchemaIssue
	var walk func(v *jsonschema.ValidationError)
	walk = func(v *jsonschema.ValidationError) {
		if len(v.Causes) == 0 {
			path := "/" + strings.Join(v.InstanceLocation, "/")
			if len(v.InstanceLocation) == 0 {
				path = ""
			}
			msg := ""
			if v.ErrorKind != nil {
				msg = v.ErrorKind.LocalizedString(printer)
			}
			issues = append(issues, SchemaIssue{Path: path, Message: msg})
			return
		}
		for _, c := range v.Causes {
			walk(c)
		}
	}
	walk(verr)
	return issues
}
