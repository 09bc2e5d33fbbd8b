package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zamm-dev/zamm-select/internal/cli"
	"github.com/zamm-dev/zamm-select/internal/models"
)

func main() {
	app, err := cli.NewApp()
	if err != nil {
		handleError(err)
		os.Exit(2)
	}
	defer app.Close()

	rootCmd := app.CreateRootCommand()
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		handleError(err)
		os.Exit(getExitCode(err))
	}
}

// handleError prints error messages in a user-friendly format
func handleError(err error) {
	var selErr *models.SelectError
	if errors.As(err, &selErr) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", selErr.Message)
		if selErr.Details != "" {
			fmt.Fprintf(os.Stderr, "Details: %s\n", selErr.Details)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}

// getExitCode returns appropriate exit code based on error type
func getExitCode(err error) int {
	var selErr *models.SelectError
	if errors.As(err, &selErr) {
		switch selErr.Type {
		case models.ErrTypeValidation, models.ErrTypeNotFound:
			return 1 // User error
		default:
			return 2
		}
	}
	return 2 // Default to system error
}
