package pm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Output captures the result of a package manager invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes package manager commands in a project directory,
// streaming output while also capturing it for later inspection.
type Runner struct {
	Dir     string
	Manager Manager

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a Runner for dir with the manager detected from lockfiles.
func NewRunner(dir string) *Runner {
	return &Runner{
		Dir:     dir,
		Manager: Detect(dir),
	}
}

// Install runs `<manager> install` in the project directory.
func (r *Runner) Install(ctx context.Context) (*Output, error) {
	return r.run(ctx, "install")
}

// Build runs `<manager> run build` in the project directory. A non-zero exit
// is reported through Output.ExitCode, not as an error; errors are reserved
// for spawn failures (manager not installed, context cancelled before start).
func (r *Runner) Build(ctx context.Context) (*Output, error) {
	return r.run(ctx, "run", "build")
}

func (r *Runner) run(ctx context.Context, args ...string) (*Output, error) {
	bin, err := exec.LookPath(r.Manager.Bin())
	if err != nil {
		return nil, fmt.Errorf("%s is not installed: %w", r.Manager.Bin(), err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.Dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("running %s %v: %w", r.Manager.Bin(), args, err)
	}

	output.ExitCode = 0
	return output, nil
}
