package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

// CreateRootCommand creates the root command for the CLI
func (a *App) CreateRootCommand() *cobra.Command {
	var optionsFile string
	var debug bool
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:   "selectdemo",
		Short: "Single and multiple choice dropdowns in the terminal",
		Long:  "selectdemo shows a single-choice and a multi-choice select over the same options. Use the keyboard or the mouse to choose.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(optionsFile, debug)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&optionsFile, "options", "o", "", "YAML file listing the options")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Dump every UI message to a debug log file")

	rootCmd.AddCommand(a.createVersionCommand())
	rootCmd.AddCommand(a.createInitConfigCommand())
	rootCmd.AddCommand(a.createListCommand(&optionsFile, &jsonOutput))

	return rootCmd
}
