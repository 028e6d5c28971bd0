package cli

import (
	"fmt"

	"github.com/mcplug-ai/mcplug/internal/pm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install project dependencies",
	Long: `Install dependencies using the package manager detected from the
project lockfile (yarn, pnpm, bun, or npm by default).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := pm.NewRunner(".")

		fmt.Fprintf(cmd.OutOrStdout(), "Installing dependencies with %s...\n", runner.Manager)

		output, err := runner.Install(cmd.Context())
		if err != nil {
			return fmt.Errorf("running %s install: %w", runner.Manager, err)
		}
		if output.ExitCode != 0 {
			return fmt.Errorf("%s install exited with code %d", runner.Manager, output.ExitCode)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Dependencies installed.")
		return nil
	},
}
