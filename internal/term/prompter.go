package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter abstracts user-facing prompting so pipeline code can be tested
// with a scripted implementation while the CLI supplies the interactive one.
type Prompter interface {
	// Confirm asks a yes/no question and returns the choice; an empty
	// answer selects def.
	Confirm(prompt string, def bool) (bool, error)
	// Input asks for a line of text and requires a non-empty answer.
	Input(prompt string) (string, error)
}

// Interactive prompts on a reader/writer pair, usually stdin/stderr.
type Interactive struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewInteractive creates an Interactive prompter over r and w.
func NewInteractive(r io.Reader, w io.Writer) *Interactive {
	return &Interactive{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// NewStdPrompter creates an Interactive prompter over stdin/stderr. Prompts
// go to stderr so they never pollute pipeable stdout output.
func NewStdPrompter() *Interactive {
	return NewInteractive(os.Stdin, os.Stderr)
}

// Confirm presents a [Y/n] / [y/N] question. Unrecognized answers re-prompt.
func (p *Interactive) Confirm(prompt string, def bool) (bool, error) {
	hint := "[Y/n]"
	if !def {
		hint = "[y/N]"
	}

	for {
		fmt.Fprintf(p.writer, "%s %s: ", prompt, hint)

		line, err := p.reader.ReadString('\n')
		if err != nil && line == "" {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		fmt.Fprintln(p.writer, "Please answer y or n.")
		if err != nil {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}
	}
}

// Input reads a line of text, re-prompting until the answer is non-empty.
func (p *Interactive) Input(prompt string) (string, error) {
	for {
		fmt.Fprintf(p.writer, "%s: ", prompt)

		line, err := p.reader.ReadString('\n')
		value := strings.TrimSpace(line)
		if value != "" {
			return value, nil
		}
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}

		fmt.Fprintln(p.writer, "A value is required.")
	}
}
