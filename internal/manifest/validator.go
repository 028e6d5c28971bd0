package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/definition.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Result is the aggregate outcome of manifest validation. Validation never
// aborts on the first problem; Errors lists every issue found, in order, so
// the user can fix the whole manifest in one pass. Callers branch on Valid.
type Result struct {
	Valid  bool
	Errors []string
}

// getSchema compiles the embedded definition schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("definition.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("definition.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks a parsed manifest and returns every problem found.
// Structural issues (missing name, wrong field types) come from the embedded
// JSON Schema; semantic issues (version not semver, tools without a usable
// output schema) are checked explicitly. Pure function, no I/O.
func Validate(m *Manifest) *Result {
	var errs []string

	errs = append(errs, structuralErrors(m)...)

	// Version must be a strict semantic version: "1.0", "v1.0.0", and ""
	// are all rejected.
	if _, err := semver.StrictNewVersion(m.Version); err != nil {
		errs = append(errs, fmt.Sprintf("Version %q is not a valid semantic version", m.Version))
	}

	seen := make(map[string]bool)
	for i, tool := range m.Tools {
		switch {
		case tool.Name == "":
			errs = append(errs, fmt.Sprintf("Tool #%d has no name", i+1))
		case seen[tool.Name]:
			errs = append(errs, fmt.Sprintf("Duplicate tool name %q", tool.Name))
		case !schemaDefined(tool.OutputSchema):
			errs = append(errs, fmt.Sprintf("Tool %q has an undefined output schema", tool.Name))
		default:
			if err := compileToolSchema(tool.OutputSchema); err != nil {
				errs = append(errs, fmt.Sprintf("Tool %q has an invalid output schema: %v", tool.Name, err))
			}
		}
		seen[tool.Name] = true
	}

	return &Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// structuralErrors validates the canonical manifest form against the
// embedded JSON Schema and flattens the issue tree into readable strings.
func structuralErrors(m *Manifest) []string {
	schema, err := getSchema()
	if err != nil {
		// The embedded schema is covered by tests; never reached in practice.
		return []string{fmt.Sprintf("internal: loading definition schema: %v", err)}
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return []string{fmt.Sprintf("internal: re-encoding manifest: %v", err)}
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return []string{fmt.Sprintf("internal: preparing manifest for validation: %v", err)}
	}

	verr := schema.Validate(inst)
	if verr == nil {
		return nil
	}

	ve, ok := verr.(*jsonschema.ValidationError)
	if !ok {
		return []string{verr.Error()}
	}

	var errs []string
	collectLeafErrors(ve, &errs)
	if len(errs) == 0 {
		errs = append(errs, ve.Error())
	}
	return dedupe(errs)
}

// collectLeafErrors walks the ValidationError tree and keeps leaf-level
// messages with their instance path, skipping uninformative container errors.
func collectLeafErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		keyword := ""
		if ve.ErrorKind != nil {
			if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}
		if keyword == "anyOf" || keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		msg := ve.ErrorKind.LocalizedString(printer)
		if len(ve.InstanceLocation) > 0 {
			msg = "/" + strings.Join(ve.InstanceLocation, "/") + ": " + msg
		}
		*errs = append(*errs, msg)
		return
	}

	for _, cause := range ve.Causes {
		collectLeafErrors(cause, errs)
	}
}

func dedupe(errs []string) []string {
	seen := make(map[string]bool, len(errs))
	var out []string
	for _, e := range errs {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

// schemaDefined reports whether a tool's output schema carries an actual
// contract. A missing schema, or a bare {"type":"object"} with no
// properties, is the generated default and counts as undefined.
func schemaDefined(s map[string]any) bool {
	if len(s) == 0 {
		return false
	}

	if t, _ := s["type"].(string); t == "object" {
		if props, ok := s["properties"].(map[string]any); ok && len(props) > 0 {
			return true
		}
		// An object schema with constraints beyond type/properties still counts.
		for k := range s {
			if k != "type" && k != "properties" {
				return true
			}
		}
		return false
	}

	return true
}

// compileToolSchema checks that an output schema is itself a valid JSON
// Schema document.
func compileToolSchema(s map[string]any) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("tool-output.schema.json", doc); err != nil {
		return err
	}
	_, err = c.Compile("tool-output.schema.json")
	return err
}
