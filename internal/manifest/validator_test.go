package manifest

import (
	"strings"
	"testing"
)

func validManifest() *Manifest {
	return &Manifest{
		Name:    "Weather",
		Version: "1.0.0",
		Tools: ToolList{
			{
				Name: "get-weather",
				OutputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"temp": map[string]any{"type": "number"},
					},
				},
			},
		},
	}
}

func TestValidate_ValidManifest(t *testing.T) {
	result := Validate(validManifest())
	if !result.Valid {
		t.Fatalf("expected valid, got errors: %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %v", result.Errors)
	}
}

func TestValidate_InvalidVersions(t *testing.T) {
	versions := []string{"1.0", "v1.0.0", "", "not-a-version", "1.0.0.0"}

	for _, v := range versions {
		t.Run(v, func(t *testing.T) {
			m := validManifest()
			m.Version = v

			result := Validate(m)
			if result.Valid {
				t.Fatalf("expected invalid for version %q", v)
			}
			found := false
			for _, e := range result.Errors {
				if strings.Contains(e, "is not a valid semantic version") {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a semantic version error, got %v", result.Errors)
			}
		})
	}
}

func TestValidate_BadVersionOnly_SingleError(t *testing.T) {
	m := &Manifest{Name: "Bad", Version: "not-a-version", Tools: ToolList{}}

	result := Validate(m)
	if result.Valid {
		t.Fatal("expected invalid")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(result.Errors), result.Errors)
	}
	if !strings.Contains(result.Errors[0], "is not a valid semantic version") {
		t.Errorf("unexpected error: %s", result.Errors[0])
	}
}

func TestValidate_DefaultOutputSchemaIsUndefined(t *testing.T) {
	m := validManifest()
	m.Tools[0].OutputSchema = map[string]any{"type": "object"}

	result := Validate(m)
	if result.Valid {
		t.Fatal("expected invalid for default output schema")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "undefined output schema") {
		t.Errorf("expected one undefined-schema error, got %v", result.Errors)
	}
}

func TestValidate_MissingOutputSchema(t *testing.T) {
	m := validManifest()
	m.Tools[0].OutputSchema = nil

	result := Validate(m)
	if result.Valid {
		t.Fatal("expected invalid for missing output schema")
	}
}

func TestValidate_EmptyPropertiesIsUndefined(t *testing.T) {
	m := validManifest()
	m.Tools[0].OutputSchema = map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}

	result := Validate(m)
	if result.Valid {
		t.Fatal("expected invalid for object schema with empty properties")
	}
}

func TestValidate_ErrorsAccumulate(t *testing.T) {
	// One bad version plus two bad tools must yield exactly three errors.
	m := &Manifest{
		Name:    "Multi",
		Version: "1.0",
		Tools: ToolList{
			{Name: "first", OutputSchema: map[string]any{"type": "object"}},
			{Name: "second"},
		},
	}

	result := Validate(m)
	if result.Valid {
		t.Fatal("expected invalid")
	}
	if len(result.Errors) != 3 {
		t.Fatalf("expected exactly 3 errors, got %d: %v", len(result.Errors), result.Errors)
	}
}

func TestValidate_ToolWithoutName(t *testing.T) {
	m := validManifest()
	m.Tools = append(m.Tools, Tool{OutputSchema: map[string]any{
		"type":       "object",
		"properties": map[string]any{"ok": map[string]any{"type": "boolean"}},
	}})

	result := Validate(m)
	if result.Valid {
		t.Fatal("expected invalid for nameless tool")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "has no name") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a nameless-tool error, got %v", result.Errors)
	}
}

func TestValidate_DuplicateToolNames(t *testing.T) {
	m := validManifest()
	m.Tools = append(m.Tools, m.Tools[0])

	result := Validate(m)
	if result.Valid {
		t.Fatal("expected invalid for duplicate tool names")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "Duplicate tool name") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a duplicate-name error, got %v", result.Errors)
	}
}

func TestValidate_MissingName(t *testing.T) {
	m := validManifest()
	m.Name = ""

	result := Validate(m)
	if result.Valid {
		t.Fatal("expected invalid for missing name")
	}
}

func TestValidate_NonObjectOutputSchemaCounts(t *testing.T) {
	// A non-object schema (e.g. {"type":"string"}) is a deliberate contract,
	// not the generated default.
	m := validManifest()
	m.Tools[0].OutputSchema = map[string]any{"type": "string"}

	result := Validate(m)
	if !result.Valid {
		t.Fatalf("expected valid, got %v", result.Errors)
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}
