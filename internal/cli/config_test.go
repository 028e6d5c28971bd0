package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mcplug-ai/mcplug/internal/config"
	"github.com/spf13/viper"
)

// runCommand executes the root command with args, capturing its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConfigSetGetRoundtrip(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	config.Load()

	out, err := runCommand(t, "config", "set", config.KeyRegistryURL, "https://selfhosted.example/api")
	if err != nil {
		t.Fatalf("config set: %v", err)
	}
	if !strings.Contains(out, "Set registry.url = https://selfhosted.example/api") {
		t.Errorf("unexpected set output: %q", out)
	}

	out, err = runCommand(t, "config", "get", config.KeyRegistryURL)
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(out) != "https://selfhosted.example/api" {
		t.Errorf("config get output = %q", out)
	}
}

func TestConfigGetUnsetKeyPrintsEmpty(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	config.Load()

	out, err := runCommand(t, "config", "get", "nonexistent.key")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Errorf("expected empty output for unset key, got %q", out)
	}
}
