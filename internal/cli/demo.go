package cli

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zamm-dev/zamm-select/internal/cli/interactive"
)

// runDemo starts the interactive select demo
func (a *App) runDemo(optionsFile string, debug bool) error {
	opts, err := a.loadOptions(optionsFile)
	if err != nil {
		return err
	}

	var dump io.Writer
	if debug {
		file, err := createDebugLogFile()
		if err != nil {
			return err
		}
		defer file.Close()
		dump = file
		a.logger.WithField("file", file.Name()).Info("dumping messages")
	}

	model := interactive.NewDemoModel(interactive.DemoConfig{
		Options:     opts,
		Width:       a.config.UI.Width,
		Placeholder: a.config.UI.Placeholder,
		Logger:      a.logger,
		Dump:        dump,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}
