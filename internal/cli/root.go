package cli

import (
	"os"

	"github.com/mcplug-ai/mcplug/internal/branding"
	"github.com/mcplug-ai/mcplug/internal/config"
	"github.com/mcplug-ai/mcplug/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds, builds, and publishes MCP servers.
Create a project from a template, build it with your package manager, and
publish the bundled worker to the registry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The publish pipeline promises no network traffic before the
		// confirmation gate, and validate/version should stay offline too.
		// config get output must stay pipeable, so it skips the banner as
		// well.
		name := cmd.Name()
		if name == "publish" || name == "validate" || name == "version" || name == "get" || name == "set" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	config.Load()
	return rootCmd.Execute()
}
