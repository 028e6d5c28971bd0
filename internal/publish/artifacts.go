package publish

import (
	"os"
	"path/filepath"
)

// Build output layout, written by the project's build tooling under the
// project root. The CLI never creates this directory itself.
const (
	OutputDirName    = ".mcplug"
	ManifestFileName = "definition.json"
	BundleFileName   = "worker.js"
)

// Artifacts holds the resolved paths of the build outputs after a
// successful Locate. Contents are read on demand.
type Artifacts struct {
	Dir          string
	ManifestPath string
	BundlePath   string
}

// LocateArtifacts verifies the build output directory and both required
// artifact files exist. It fails on the first missing path, before reading
// anything.
func LocateArtifacts(projectDir string) (*Artifacts, error) {
	dir := filepath.Join(projectDir, OutputDirName)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &ArtifactMissingError{Path: dir}
	}

	manifestPath := filepath.Join(dir, ManifestFileName)
	if _, err := os.Stat(manifestPath); err != nil {
		return nil, &ArtifactMissingError{Path: manifestPath}
	}

	bundlePath := filepath.Join(dir, BundleFileName)
	if _, err := os.Stat(bundlePath); err != nil {
		return nil, &ArtifactMissingError{Path: bundlePath}
	}

	return &Artifacts{
		Dir:          dir,
		ManifestPath: manifestPath,
		BundlePath:   bundlePath,
	}, nil
}

// ReadManifest returns the raw manifest JSON bytes.
func (a *Artifacts) ReadManifest() ([]byte, error) {
	return os.ReadFile(a.ManifestPath)
}

// ReadBundle returns the bundle bytes uploaded alongside the manifest.
func (a *Artifacts) ReadBundle() ([]byte, error) {
	return os.ReadFile(a.BundlePath)
}
