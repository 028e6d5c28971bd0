package term

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm_DefaultYes(t *testing.T) {
	var out bytes.Buffer
	p := NewInteractive(strings.NewReader("\n"), &out)

	ok, err := p.Confirm("Proceed?", true)
	if err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if !ok {
		t.Error("empty answer should select the default (yes)")
	}
	if !strings.Contains(out.String(), "[Y/n]") {
		t.Errorf("expected [Y/n] hint, got %q", out.String())
	}
}

func TestConfirm_DefaultNo(t *testing.T) {
	var out bytes.Buffer
	p := NewInteractive(strings.NewReader("\n"), &out)

	ok, err := p.Confirm("Proceed?", false)
	if err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if ok {
		t.Error("empty answer should select the default (no)")
	}
}

func TestConfirm_Answers(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"NO\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewInteractive(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("Proceed?", !tt.want)
			if err != nil {
				t.Fatalf("Confirm error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfirm_RepromptsOnGarbage(t *testing.T) {
	var out bytes.Buffer
	p := NewInteractive(strings.NewReader("maybe\ny\n"), &out)

	ok, err := p.Confirm("Proceed?", false)
	if err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if !ok {
		t.Error("expected eventual yes after re-prompt")
	}
	if !strings.Contains(out.String(), "Please answer") {
		t.Errorf("expected re-prompt notice, got %q", out.String())
	}
}

func TestInput_RequiresNonEmpty(t *testing.T) {
	var out bytes.Buffer
	p := NewInteractive(strings.NewReader("\n  \ntoken-123\n"), &out)

	got, err := p.Input("Token")
	if err != nil {
		t.Fatalf("Input error: %v", err)
	}
	if got != "token-123" {
		t.Errorf("Input = %q, want token-123", got)
	}
	if !strings.Contains(out.String(), "A value is required") {
		t.Errorf("expected required notice, got %q", out.String())
	}
}

func TestInput_EOF(t *testing.T) {
	var out bytes.Buffer
	p := NewInteractive(strings.NewReader(""), &out)

	if _, err := p.Input("Token"); err == nil {
		t.Fatal("expected error on EOF, got nil")
	}
}
