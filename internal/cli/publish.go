package cli

import (
	"fmt"

	"github.com/mcplug-ai/mcplug/internal/publish"
	"github.com/mcplug-ai/mcplug/internal/term"
	"github.com/spf13/cobra"
)

var (
	publishYes       bool
	publishSkipBuild bool
)

func init() {
	publishCmd.Flags().BoolVarP(&publishYes, "yes", "y", false, "Skip the confirmation prompt")
	publishCmd.Flags().BoolVar(&publishSkipBuild, "skip-build", false, "Publish existing artifacts without rebuilding")
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Build, validate, and publish the server to the registry",
	Long: `Build the project, validate the produced artifacts, and upload them to
the registry after an interactive confirmation. Nothing is sent over the
network until you confirm.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline := &publish.Pipeline{
			ProjectDir:  ".",
			Prompter:    term.NewStdPrompter(),
			Uploader:    publish.NewUploader(),
			Out:         cmd.OutOrStdout(),
			SkipBuild:   publishSkipBuild,
			AutoConfirm: publishYes,
		}

		outcome, err := pipeline.Run(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if outcome.State == publish.StateCancelled {
			fmt.Fprintln(out, "Publish cancelled.")
			return nil
		}

		fmt.Fprintf(out, "\nPublished %s v%s\n", outcome.Manifest.Name, outcome.Manifest.Version)
		if outcome.ServerURL != "" {
			fmt.Fprintf(out, "View it at %s\n", outcome.ServerURL)
		}
		return nil
	},
}
