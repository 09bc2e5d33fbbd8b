package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zamm-dev/zamm-select/internal/config"
	"github.com/zamm-dev/zamm-select/internal/options"
)

func (a *App) createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "selectdemo %s\n", Version)
		},
	}
}

func (a *App) createInitConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteDefaultConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration: %s\n", path)

			// sample options file next to the config, for use with --options
			samplePath := filepath.Join(filepath.Dir(path), "options.yaml")
			if _, err := os.Stat(samplePath); err == nil {
				return nil
			}
			if err := options.Write(samplePath, options.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sample options: %s\n", samplePath)
			return nil
		},
	}
}

// createListCommand prints the options the demo would offer
func (a *App) createListCommand(optionsFile *string, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available options",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.loadOptions(*optionsFile)
			if err != nil {
				return err
			}
			return a.outputOptions(cmd.OutOrStdout(), opts, *jsonOutput)
		},
	}
}
