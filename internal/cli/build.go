package cli

import (
	"fmt"

	"github.com/mcplug-ai/mcplug/internal/pm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the project",
	Long: `Run the project's build script via the detected package manager.
The build is expected to produce .mcplug/definition.json and .mcplug/worker.js.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := pm.NewRunner(".")

		fmt.Fprintf(cmd.OutOrStdout(), "Building with %s...\n", runner.Manager)

		output, err := runner.Build(cmd.Context())
		if err != nil {
			return fmt.Errorf("running %s run build: %w", runner.Manager, err)
		}
		if output.ExitCode != 0 {
			return fmt.Errorf("%s run build exited with code %d", runner.Manager, output.ExitCode)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Build complete.")
		return nil
	},
}
