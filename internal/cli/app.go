package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/zamm-dev/zamm-select/internal/cli/interactive/common"
	"github.com/zamm-dev/zamm-select/internal/config"
	"github.com/zamm-dev/zamm-select/internal/logging"
	"github.com/zamm-dev/zamm-select/internal/options"
)

// App represents the CLI application
type App struct {
	config *config.Config
	logger *logrus.Logger
}

// NewApp creates a new CLI application
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return newAppWithConfig(cfg)
}

func newAppWithConfig(cfg *config.Config) (*App, error) {
	logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, File: cfg.Logging.File})
	if err != nil {
		return nil, err
	}
	if cfg.UI.Color == "never" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return &App{config: cfg, logger: logger}, nil
}

// Close closes the application and cleans up resources
func (a *App) Close() error {
	return nil
}

// loadOptions returns the options named by path, the configured options
// file, or the built-in list, in that order
func (a *App) loadOptions(path string) ([]*common.Option, error) {
	if path == "" {
		path = a.config.Options.File
	}
	if path == "" {
		return options.Default(), nil
	}
	a.logger.WithField("file", path).Debug("loading options")
	return options.LoadFile(path)
}
