package publish

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mcplug-ai/mcplug/internal/branding"
	"github.com/mcplug-ai/mcplug/internal/term"
	"github.com/subosito/gotenv"
)

// CredentialSource identifies where a token was resolved from.
type CredentialSource string

// Resolution sources, in priority order.
const (
	SourceEnvironment CredentialSource = "environment"
	SourceEnvFile     CredentialSource = ".env file"
	SourcePrompt      CredentialSource = "prompt"
)

// Credential is an API token valid for one publish invocation. It is never
// persisted and never validated beyond being non-empty.
type Credential struct {
	Token  string
	Source CredentialSource
}

// TokenKey returns the env var and .env key consulted for the token
// (MCPLUG_TOKEN under default branding).
func TokenKey() string {
	return branding.EnvVar("TOKEN")
}

// CredentialResolver obtains a token from, in strict priority order: the
// process environment, the project's .env file, then an interactive prompt.
// The first satisfied source wins; later sources are not consulted.
type CredentialResolver struct {
	ProjectDir string

	// LookupEnv defaults to os.LookupEnv; injectable so tests don't mutate
	// process-global state.
	LookupEnv func(string) (string, bool)

	// Prompter supplies the interactive fallback; nil means non-interactive.
	Prompter term.Prompter
}

// Resolve returns the first available credential. A missing or unreadable
// .env file is not an error; resolution falls through to the next source.
func (r *CredentialResolver) Resolve() (*Credential, error) {
	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if value, ok := lookup(TokenKey()); ok {
		if token := cleanToken(value); token != "" {
			return &Credential{Token: token, Source: SourceEnvironment}, nil
		}
	}

	if env, err := gotenv.Read(filepath.Join(r.ProjectDir, ".env")); err == nil {
		if token := cleanToken(env[TokenKey()]); token != "" {
			return &Credential{Token: token, Source: SourceEnvFile}, nil
		}
	}

	if r.Prompter == nil {
		return nil, &CredentialMissingError{}
	}

	token, err := r.Prompter.Input("Enter your " + branding.DisplayName() + " API token")
	if err != nil {
		return nil, err
	}
	return &Credential{Token: cleanToken(token), Source: SourcePrompt}, nil
}

// cleanToken trims surrounding whitespace and one layer of wrapping quotes.
func cleanToken(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return strings.TrimSpace(value)
}

// Redact returns a display-safe form of a token: the first 4 characters
// followed by "***", or "***" for short tokens.
func Redact(token string) string {
	if len(token) >= 4 {
		return token[:4] + "***"
	}
	return "***"
}
