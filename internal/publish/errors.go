package publish

import (
	"fmt"

	"github.com/mcplug-ai/mcplug/internal/branding"
)

// BuildError reports a build command that ran to completion with a non-zero
// exit code. Classification is by exit code alone.
type BuildError struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build failed with exit code %d", e.ExitCode)
}

// SpawnError reports a build command that could not be started at all,
// typically because the package manager is not installed.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string { return fmt.Sprintf("starting build: %v", e.Err) }
func (e *SpawnError) Unwrap() error { return e.Err }

// ArtifactMissingError reports a missing build output directory or file.
type ArtifactMissingError struct {
	Path string
}

func (e *ArtifactMissingError) Error() string {
	return fmt.Sprintf("required build artifact missing: %s (run the build first)", e.Path)
}

// ManifestParseError reports a definition.json that could not be read or
// decoded as JSON.
type ManifestParseError struct {
	Err error
}

func (e *ManifestParseError) Error() string { return fmt.Sprintf("reading manifest: %v", e.Err) }
func (e *ManifestParseError) Unwrap() error { return e.Err }

// ValidationError aggregates every manifest validation problem found in one
// pass. It is never raised for the first error only.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("manifest validation failed with %d problem(s)", len(e.Errors))
}

// CredentialMissingError is returned when no token source is available and
// interactive prompting is disabled.
type CredentialMissingError struct{}

func (e *CredentialMissingError) Error() string {
	return fmt.Sprintf("no API token found: set %s or add it to the project's .env file", branding.EnvVar("TOKEN"))
}

// RejectedError reports a non-2xx response from the publish endpoint.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("publish rejected (HTTP %d): %s", e.StatusCode, e.Message)
}

// NetworkError reports a transport-level failure (connection refused, DNS,
// timeout). Uploads are never retried automatically.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("publish request failed: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }
