package mcp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/forma-cli/forma/internal/arch"
	"github.com/forma-cli/forma/internal/config"
)

// configURI is the read-only resource exposing the raw persisted
// configuration document.
const configURI = "forma://config"

// toolResult is the MCP tools/call result shape: one text content block
// carrying a JSON payload. Domain failures are reported inside the
// payload as {"error": ...} so the assistant can branch on them; IsError
// flags them without raising a protocol fault.
type toolResult struct {
	Content []contentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// textResult wraps a payload in a toolResult.
func textResult(payload any, isError bool) (*toolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}
	return &toolResult{
		Content: []contentBlock{{Type: "text", Text: string(data)}},
		IsError: isError,
	}, nil
}

// errorResult builds the structured {"error": ...} payload.
func errorResult(err error) (*toolResult, error) {
	return textResult(map[string]string{"error": err.Error()}, true)
}

// toolDescriptor describes one tool in tools/list.
type toolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

var emptySchema = map[string]any{
	"type":       "object",
	"properties": map[string]any{},
}

var resolveSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{
			"type":        "string",
			"description": "resource type: component, hook, page, service, context, store, type, api, or feature",
		},
		"name": map[string]any{
			"type":        "string",
			"description": "PascalCase resource name",
		},
		"atomicLevel": map[string]any{
			"type":        "string",
			"description": "atomic-design component level: atom, molecule, organism, template, or page (react only)",
		},
	},
	"required": []string{"type", "name"},
}

// handleToolsList enumerates the three query tools.
func (s *Server) handleToolsList() any {
	return map[string]any{
		"tools": []toolDescriptor{
			{
				Name:        "get_project_config",
				Description: "Read the project configuration with a per-key explanation of its effect.",
				InputSchema: emptySchema,
			},
			{
				Name:        "get_architecture_guide",
				Description: "Describe the configured architecture: folders, resource placement, naming conventions, and file extensions.",
				InputSchema: emptySchema,
			},
			{
				Name:        "resolve_resource_path",
				Description: "Resolve the directory, final identifier, and expected files for a resource, exactly as the add command would create them.",
				InputSchema: resolveSchema,
			},
		},
	}
}

// handleToolsCall dispatches a tool invocation.
func (s *Server) handleToolsCall(params json.RawMessage) (any, error) {
	var call struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, &rpcError{Code: CodeInvalidParams, Message: "invalid tools/call params: " + err.Error()}
	}

	switch call.Name {
	case "get_project_config":
		return s.toolProjectConfig()
	case "get_architecture_guide":
		return s.toolArchitectureGuide()
	case "resolve_resource_path":
		return s.toolResolvePath(call.Arguments)
	}
	return nil, &rpcError{Code: CodeInvalidParams, Message: "unknown tool: " + call.Name}
}

// toolProjectConfig returns the configuration and its explanation map.
func (s *Server) toolProjectConfig() (any, error) {
	cfg, err := config.Load(s.projectRoot)
	if err != nil {
		return errorResult(err)
	}
	return textResult(map[string]any{
		"config":      cfg,
		"explanation": config.Explain(cfg),
	}, false)
}

// toolArchitectureGuide returns the guide for the configured architecture.
func (s *Server) toolArchitectureGuide() (any, error) {
	cfg, err := config.Load(s.projectRoot)
	if err != nil {
		return errorResult(err)
	}
	return textResult(arch.GuideFor(cfg), false)
}

// toolResolvePath runs the shared resolver on the tool arguments. This is
// the same function the add command calls: both surfaces always agree.
func (s *Server) toolResolvePath(arguments json.RawMessage) (any, error) {
	var args struct {
		Type        string `json:"type"`
		Name        string `json:"name"`
		AtomicLevel string `json:"atomicLevel"`
	}
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &args); err != nil {
			return nil, &rpcError{Code: CodeInvalidParams, Message: "invalid resolve_resource_path arguments: " + err.Error()}
		}
	}

	cfg, err := config.Load(s.projectRoot)
	if err != nil {
		return errorResult(err)
	}

	info, err := arch.Resolve(arch.Request{
		Type:        arch.ResourceType(args.Type),
		Name:        args.Name,
		AtomicLevel: args.AtomicLevel,
	}, cfg)
	if err != nil {
		return errorResult(err)
	}
	return textResult(info, false)
}

// handleResourcesList exposes the raw configuration document.
func (s *Server) handleResourcesList() any {
	return map[string]any{
		"resources": []map[string]any{
			{
				"uri":         configURI,
				"name":        "Project configuration",
				"description": "The raw " + config.FileName + " document.",
				"mimeType":    "application/json",
			},
		},
	}
}

// handleResourcesRead serves the configuration document verbatim.
func (s *Server) handleResourcesRead(params json.RawMessage) (any, error) {
	var read struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(params, &read); err != nil {
		return nil, &rpcError{Code: CodeInvalidParams, Message: "invalid resources/read params: " + err.Error()}
	}
	if read.URI != configURI {
		return nil, &rpcError{Code: CodeInvalidParams, Message: "unknown resource: " + read.URI}
	}

	data, err := os.ReadFile(filepath.Join(s.projectRoot, config.FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &rpcError{Code: CodeInvalidParams, Message: config.ErrConfigMissing.Error()}
		}
		return nil, err
	}

	return map[string]any{
		"contents": []map[string]any{
			{
				"uri":      configURI,
				"mimeType": "application/json",
				"text":     string(data),
			},
		},
	}, nil
}
