package commands

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/hatch"
	"github.com/simonhull/hatch/internal/logger"
)

// RootCmd creates and returns the root command for the hatch CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "hatch",
		Short: "Scaffold LLM agent projects",
		Long: `hatch asks a few questions and creates a ready-to-run agent project:
• package.json with dev/build/start scripts
• TypeScript or JavaScript entry point with an interactive loop
• .env.example for your LLM provider
• README with next steps

Example:
  hatch new my-agent`,
		Version:       hatch.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.Default().SetLevel(logger.LevelDebug)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("config", "", "Config file (default: ./hatch.yml or ~/.config/hatch/hatch.yml)")

	cmd.AddCommand(NewCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
