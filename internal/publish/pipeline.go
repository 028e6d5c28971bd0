package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mcplug-ai/mcplug/internal/manifest"
	"github.com/mcplug-ai/mcplug/internal/pm"
	"github.com/mcplug-ai/mcplug/internal/term"
)

// State tracks the pipeline's progress. Transitions only move forward; a
// restart requires a fresh Pipeline.
type State int

// Pipeline states in order. Succeeded, Rejected, Cancelled, and Failed are
// terminal.
const (
	StateIdle State = iota
	StateBuilding
	StateValidating
	StateAwaitingConfirmation
	StateUploading
	StateSucceeded
	StateRejected
	StateCancelled
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:                 "idle",
	StateBuilding:             "building",
	StateValidating:           "validating",
	StateAwaitingConfirmation: "awaiting confirmation",
	StateUploading:            "uploading",
	StateSucceeded:            "succeeded",
	StateRejected:             "rejected",
	StateCancelled:            "cancelled",
	StateFailed:               "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// defaultBuildTimeout bounds the build child process. The observed upstream
// behavior waits forever; the bound is a deliberate hardening deviation.
const defaultBuildTimeout = 10 * time.Minute

// Pipeline runs one publish invocation: build, locate and validate
// artifacts, resolve a credential, confirm with the user, upload. All
// collaborators and ambient state (environment lookup, output writer) are
// explicit fields so the pipeline is deterministic under test.
type Pipeline struct {
	ProjectDir string
	Prompter   term.Prompter
	Uploader   *Uploader

	// LookupEnv defaults to os.LookupEnv (see CredentialResolver).
	LookupEnv func(string) (string, bool)

	// Out receives progress, build output, and the summary. Defaults to
	// io.Discard.
	Out io.Writer

	SkipBuild   bool
	AutoConfirm bool

	// BuildTimeout defaults to defaultBuildTimeout; set negative to disable.
	BuildTimeout time.Duration

	state State
}

// Outcome describes the terminal result of a pipeline run.
type Outcome struct {
	State     State
	Manifest  *manifest.Manifest
	Result    *UploadResult
	ServerURL string
}

// State returns the pipeline's current (or terminal) state.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the pipeline to a terminal state. User cancellation yields
// (Outcome{State: StateCancelled}, nil); it is not an error. Every other
// early exit returns a typed error from the publish taxonomy.
func (p *Pipeline) Run(ctx context.Context) (*Outcome, error) {
	out := p.Out
	if out == nil {
		out = io.Discard
	}

	if err := p.build(ctx, out); err != nil {
		p.state = StateFailed
		return &Outcome{State: p.state}, err
	}

	p.state = StateValidating
	m, rawManifest, err := p.validate(out)
	if err != nil {
		p.state = StateFailed
		return &Outcome{State: p.state}, err
	}

	resolver := &CredentialResolver{
		ProjectDir: p.ProjectDir,
		LookupEnv:  p.LookupEnv,
		Prompter:   p.Prompter,
	}
	cred, err := resolver.Resolve()
	if err != nil {
		p.state = StateFailed
		return &Outcome{State: p.state}, err
	}
	fmt.Fprintf(out, "Using API token from %s (%s)\n", cred.Source, Redact(cred.Token))

	p.state = StateAwaitingConfirmation
	fmt.Fprintln(out)
	fmt.Fprint(out, RenderSummary(m))
	fmt.Fprintln(out)

	if !p.AutoConfirm {
		ok, err := p.Prompter.Confirm(fmt.Sprintf("Publish %s v%s?", m.Name, m.Version), true)
		if err != nil {
			p.state = StateFailed
			return &Outcome{State: p.state}, fmt.Errorf("reading confirmation: %w", err)
		}
		if !ok {
			p.state = StateCancelled
			return &Outcome{State: p.state, Manifest: m}, nil
		}
	}

	p.state = StateUploading
	arts, err := LocateArtifacts(p.ProjectDir)
	if err != nil {
		p.state = StateFailed
		return &Outcome{State: p.state}, err
	}
	bundle, err := arts.ReadBundle()
	if err != nil {
		p.state = StateFailed
		return &Outcome{State: p.state}, fmt.Errorf("reading bundle: %w", err)
	}

	fmt.Fprintln(out, "Uploading...")
	result, err := p.Uploader.Upload(ctx, cred.Token, rawManifest, bundle)
	if err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			p.state = StateRejected
		} else {
			p.state = StateFailed
		}
		return &Outcome{State: p.state, Manifest: m}, err
	}

	p.state = StateSucceeded
	return &Outcome{
		State:     p.state,
		Manifest:  m,
		Result:    result,
		ServerURL: p.Uploader.ServerURL(result),
	}, nil
}

// build runs the project's build command unless SkipBuild is set.
func (p *Pipeline) build(ctx context.Context, out io.Writer) error {
	p.state = StateBuilding
	if p.SkipBuild {
		return nil
	}

	timeout := p.BuildTimeout
	if timeout == 0 {
		timeout = defaultBuildTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	runner := pm.NewRunner(p.ProjectDir)
	runner.Stdout = out
	runner.Stderr = out

	fmt.Fprintf(out, "Building with %s...\n", runner.Manager)

	result, err := runner.Build(ctx)
	if err != nil {
		return &SpawnError{Err: err}
	}
	if result.ExitCode != 0 {
		return &BuildError{
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
		}
	}
	return nil
}

// validate locates the build artifacts and checks the manifest. Artifact
// presence is verified before any file is read; validation problems are
// printed in full and returned as one aggregate error.
func (p *Pipeline) validate(out io.Writer) (*manifest.Manifest, []byte, error) {
	arts, err := LocateArtifacts(p.ProjectDir)
	if err != nil {
		return nil, nil, err
	}

	raw, err := arts.ReadManifest()
	if err != nil {
		return nil, nil, &ManifestParseError{Err: err}
	}

	m, err := manifest.Parse(raw)
	if err != nil {
		return nil, nil, &ManifestParseError{Err: err}
	}

	result := manifest.Validate(m)
	if !result.Valid {
		fmt.Fprintln(out, "Manifest validation failed:")
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
		return nil, nil, &ValidationError{Errors: result.Errors}
	}

	return m, raw, nil
}
