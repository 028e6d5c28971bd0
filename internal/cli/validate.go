package cli

import (
	"fmt"

	"github.com/mcplug-ai/mcplug/internal/manifest"
	"github.com/mcplug-ai/mcplug/internal/publish"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the built server definition",
	Long: `Validate .mcplug/definition.json against the server definition rules:
structure, semantic version, and per-tool name and output schema checks.
Run a build first if the artifacts are missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		artifacts, err := publish.LocateArtifacts(".")
		if err != nil {
			return err
		}

		m, err := manifest.ParseFile(artifacts.ManifestPath)
		if err != nil {
			return &publish.ManifestParseError{Err: err}
		}

		out := cmd.OutOrStdout()
		result := manifest.Validate(m)
		if !result.Valid {
			fmt.Fprintf(out, "Definition is invalid (%d error(s)):\n", len(result.Errors))
			for _, e := range result.Errors {
				fmt.Fprintf(out, "  - %s\n", e)
			}
			return fmt.Errorf("validation failed")
		}

		fmt.Fprintf(out, "Definition is valid.\n\n")
		fmt.Fprint(out, publish.RenderSummary(m))
		return nil
	},
}
