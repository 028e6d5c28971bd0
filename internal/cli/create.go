package cli

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/mcplug-ai/mcplug/internal/branding"
	"github.com/mcplug-ai/mcplug/internal/scaffold"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var createOutputDir string

func init() {
	createCmd.Flags().StringVar(&createOutputDir, "output-dir", "", "Output directory (default: ./<name>)")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Scaffold a new MCP server project",
	Long: `Scaffold a new MCP server project from the built-in TypeScript template.

Example:
  ` + branding.CLIName() + ` create weather-server`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validateName(name); err != nil {
			return err
		}

		data, err := scaffold.NewData(name)
		if err != nil {
			return fmt.Errorf("preparing project data: %w", err)
		}

		outDir := createOutputDir
		if outDir == "" {
			outDir = filepath.Join(".", name)
		}

		result, err := scaffold.Generate(data, outDir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created project at %s/\n", result.OutputDir)
		for _, f := range result.Files {
			fmt.Fprintf(out, "  %s\n", f)
		}

		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintf(out, "  1. cd %s\n", outDir)
		fmt.Fprintf(out, "  2. %s install\n", branding.CLIName())
		fmt.Fprintln(out, "  3. Edit src/index.ts to implement your tools")
		fmt.Fprintf(out, "  4. %s publish\n", branding.CLIName())
		return nil
	},
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}
	return nil
}
