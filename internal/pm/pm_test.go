package pm

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		lockfiles []string
		want      Manager
	}{
		{"no lockfile defaults to npm", nil, Npm},
		{"yarn.lock", []string{"yarn.lock"}, Yarn},
		{"pnpm-lock.yaml", []string{"pnpm-lock.yaml"}, Pnpm},
		{"bun.lockb", []string{"bun.lockb"}, Bun},
		{"bun.lock text lockfile", []string{"bun.lock"}, Bun},
		{"package-lock.json still npm", []string{"package-lock.json"}, Npm},
		{"yarn wins over bun", []string{"bun.lockb", "yarn.lock"}, Yarn},
		{"pnpm wins over bun", []string{"bun.lock", "pnpm-lock.yaml"}, Pnpm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.lockfiles {
				touch(t, dir, f)
			}
			if got := Detect(dir); got != tt.want {
				t.Errorf("Detect() = %s, want %s", got, tt.want)
			}
		})
	}
}

// stubManager writes a fake package manager script onto PATH so runner tests
// don't depend on a real npm installation.
func stubManager(t *testing.T, name, script string) {
	t.Helper()
	binDir := t.TempDir()
	path := filepath.Join(binDir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunner_BuildSuccess(t *testing.T) {
	stubManager(t, "npm", `echo "built $1 $2"`)

	r := NewRunner(t.TempDir())
	r.Stdout = io.Discard
	r.Stderr = io.Discard

	out, err := r.Build(context.Background())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if out.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", out.ExitCode)
	}
	if !strings.Contains(out.Stdout, "built run build") {
		t.Errorf("expected captured stdout, got %q", out.Stdout)
	}
}

func TestRunner_BuildFailureExitCode(t *testing.T) {
	stubManager(t, "npm", `echo "boom" >&2; exit 3`)

	r := NewRunner(t.TempDir())
	r.Stdout = io.Discard
	r.Stderr = io.Discard

	out, err := r.Build(context.Background())
	if err != nil {
		t.Fatalf("non-zero exit must not be an error, got: %v", err)
	}
	if out.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", out.ExitCode)
	}
	if !strings.Contains(out.Stderr, "boom") {
		t.Errorf("expected captured stderr, got %q", out.Stderr)
	}
}

func TestRunner_ManagerNotInstalled(t *testing.T) {
	// Empty PATH: LookPath cannot find anything.
	t.Setenv("PATH", t.TempDir())

	r := &Runner{Dir: t.TempDir(), Manager: Pnpm}
	if _, err := r.Build(context.Background()); err == nil {
		t.Fatal("expected spawn error for missing manager, got nil")
	}
}

func TestRunner_Install(t *testing.T) {
	stubManager(t, "yarn", `echo "args:$*"`)

	dir := t.TempDir()
	touch(t, dir, "yarn.lock")

	r := NewRunner(dir)
	r.Stdout = io.Discard
	r.Stderr = io.Discard

	if r.Manager != Yarn {
		t.Fatalf("expected yarn runner, got %s", r.Manager)
	}

	out, err := r.Install(context.Background())
	if err != nil {
		t.Fatalf("Install error: %v", err)
	}
	if !strings.Contains(out.Stdout, "args:install") {
		t.Errorf("expected install arg, got %q", out.Stdout)
	}
}
