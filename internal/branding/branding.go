// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes the values into the binary. Runtime configuration (see
// internal/config) can still override the endpoint URLs per user.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	GoModule       string `yaml:"go_module"`
	GitHubRepo     string `yaml:"github_repo"`
	RegistryURL    string `yaml:"registry_url"`
	MarketplaceURL string `yaml:"marketplace_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:        "mcplug",
			DisplayName:    "MCPlug",
			Description:    "Scaffold, build, and publish MCP servers to the MCPlug marketplace",
			HomeDir:        ".mcplug",
			EnvPrefix:      "MCPLUG",
			GoModule:       "github.com/mcplug-ai/mcplug",
			GitHubRepo:     "mcplug-ai/mcplug",
			RegistryURL:    "https://api.mcplug.ai/v1/servers",
			MarketplaceURL: "https://mcplug.ai",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "mcplug").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "MCPlug").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".mcplug").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MCPLUG").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
// Reserved for rebranding tooling; not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string used for release checks.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// RegistryURL returns the default publish endpoint.
func RegistryURL() string { load(); return defaults.RegistryURL }

// MarketplaceURL returns the public marketplace base URL.
func MarketplaceURL() string { load(); return defaults.MarketplaceURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("TOKEN") → "MCPLUG_TOKEN".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
