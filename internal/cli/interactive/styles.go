package interactive

import "github.com/charmbracelet/lipgloss"

// HeaderStyle returns the style for the demo title
func HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Underline(true)
}
