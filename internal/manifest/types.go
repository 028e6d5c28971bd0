package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Manifest is the project definition produced by the build step
// (.mcplug/definition.json). It is immutable after parsing.
type Manifest struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	GitHub    string            `json:"github,omitempty"`
	Website   string            `json:"website,omitempty"`
	Env       map[string]EnvVar `json:"env,omitempty"`
	Tools     ToolList          `json:"tools,omitempty"`
	Prompts   []Prompt          `json:"prompts,omitempty"`
	Resources []Resource        `json:"resources,omitempty"`
}

// Tool describes a single capability exposed by the server.
type Tool struct {
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	InputSchema  map[string]any `json:"inputSchema,omitempty"`
	OutputSchema map[string]any `json:"outputSchema,omitempty"`
}

// Prompt describes a reusable prompt entry in the manifest.
type Prompt struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Resource describes a resource entry in the manifest.
type Resource struct {
	Name        string `json:"name"`
	URI         string `json:"uri,omitempty"`
	Description string `json:"description,omitempty"`
}

// EnvVar declares an environment variable the server expects at runtime.
// Manifests may spell an entry as a bare description string or as an object.
type EnvVar struct {
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Default     string `json:"default,omitempty"`
}

// UnmarshalJSON accepts either a description string or a full object.
func (e *EnvVar) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var desc string
		if err := json.Unmarshal(data, &desc); err != nil {
			return err
		}
		*e = EnvVar{Description: desc}
		return nil
	}

	type envVar EnvVar
	var v envVar
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = EnvVar(v)
	return nil
}

// ToolList is the canonical ordered representation of the manifest's tools.
// Build outputs spell tools either as a JSON array or as an object keyed by
// tool name; both forms normalize to a slice at the unmarshal boundary and
// the rest of the codebase only ever sees the slice. For the object form the
// key names are ignored (each tool must carry its own name) and entries are
// ordered by key so normalization is deterministic.
type ToolList []Tool

// UnmarshalJSON normalizes the array and object spellings of "tools".
func (t *ToolList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = nil
		return nil
	}

	switch trimmed[0] {
	case '[':
		var tools []Tool
		if err := json.Unmarshal(data, &tools); err != nil {
			return err
		}
		*t = tools
		return nil
	case '{':
		var byKey map[string]Tool
		if err := json.Unmarshal(data, &byKey); err != nil {
			return err
		}
		tools := make([]Tool, 0, len(byKey))
		for _, key := range slices.Sorted(maps.Keys(byKey)) {
			tools = append(tools, byKey[key])
		}
		*t = tools
		return nil
	default:
		return fmt.Errorf("tools must be a JSON array or object, got %s", preview(trimmed))
	}
}

// preview truncates raw JSON for inclusion in an error message.
func preview(data []byte) string {
	const max = 24
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
