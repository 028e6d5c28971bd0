package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcplug-ai/mcplug/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys recognized in config.yaml and via MCPLUG_* env vars.
const (
	KeyRegistryURL    = "registry.url"
	KeyPayloadField   = "registry.payload_field"
	KeyFileField      = "registry.file_field"
	KeyMarketplaceURL = "marketplace.url"
)

// Dir returns the path to the MCPlug config directory (~/.mcplug/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.mcplug/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	// Dotted keys map onto underscored env vars, e.g. registry.url is
	// overridden by MCPLUG_REGISTRY_URL.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetOr returns a config value by key, or fallback when unset.
func GetOr(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// RegistryURL returns the publish endpoint, honoring config overrides.
func RegistryURL() string {
	return GetOr(KeyRegistryURL, branding.RegistryURL())
}

// MarketplaceURL returns the marketplace base URL, honoring config overrides.
func MarketplaceURL() string {
	return GetOr(KeyMarketplaceURL, branding.MarketplaceURL())
}

// PayloadField returns the multipart field name for the manifest JSON.
// The hosted registry expects "payload"; self-hosted deployments may differ.
func PayloadField() string {
	return GetOr(KeyPayloadField, "payload")
}

// FileField returns the multipart field name for the bundle file part.
func FileField() string {
	return GetOr(KeyFileField, "file")
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
