package scaffold

import (
	"bytes"
	"crypto/rand"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
	"unicode"
)

//go:embed all:templates
var templateFS embed.FS

const projectTemplateDir = "templates/project"

// Data holds the template variables substituted into a scaffolded project.
type Data struct {
	Name      string // e.g., "weather-server"
	ClassName string // Derived: "WeatherServer"
	Secret    string // Generated per project, hex-encoded
	Version   string // Initial semver, "0.1.0"
	Year      int
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
}

// NewData creates scaffold data for a project name, deriving the class name
// and generating a fresh local secret.
func NewData(name string) (*Data, error) {
	secret, err := newSecret()
	if err != nil {
		return nil, err
	}
	return &Data{
		Name:      name,
		ClassName: pascalCase(name),
		Secret:    secret,
		Version:   "0.1.0",
		Year:      time.Now().Year(),
	}, nil
}

// Generate renders the embedded project templates into outputDir,
// substituting the data tokens. The output directory must be empty.
func Generate(data *Data, outputDir string) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Refuse to clobber existing files.
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}

	err = fs.WalkDir(templateFS, projectTemplateDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		// Embedded paths always use forward slashes.
		rel := strings.TrimPrefix(path, projectTemplateDir+"/")
		outName := strings.TrimSuffix(rel, ".tmpl")
		outPath := filepath.Join(outputDir, filepath.FromSlash(outName))

		raw, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		tmpl, err := template.New(d.Name()).Parse(string(raw))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", d.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("executing template %s: %w", d.Name(), err)
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
		}
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// newSecret returns a 32-character hex string for local dev signing.
func newSecret() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating project secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// pascalCase converts a kebab/snake name to PascalCase: "weather-server"
// becomes "WeatherServer".
func pascalCase(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		if r == '-' || r == '_' || r == ' ' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
