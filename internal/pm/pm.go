package pm

import (
	"os"
	"path/filepath"
)

// Manager identifies a JavaScript package manager.
type Manager string

// Supported package managers.
const (
	Npm  Manager = "npm"
	Yarn Manager = "yarn"
	Pnpm Manager = "pnpm"
	Bun  Manager = "bun"
)

// lockfiles maps each manager to the lockfile names that select it.
// Detection order matters: yarn, then pnpm, then bun, then the npm default.
var lockfiles = []struct {
	manager Manager
	files   []string
}{
	{Yarn, []string{"yarn.lock"}},
	{Pnpm, []string{"pnpm-lock.yaml"}},
	{Bun, []string{"bun.lockb", "bun.lock"}},
}

// Detect infers the package manager for a project directory from lockfile
// presence. Projects without a recognized lockfile default to npm.
func Detect(dir string) Manager {
	for _, entry := range lockfiles {
		for _, name := range entry.files {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return entry.manager
			}
		}
	}
	return Npm
}

// Bin returns the executable name for the manager.
func (m Manager) Bin() string {
	return string(m)
}
