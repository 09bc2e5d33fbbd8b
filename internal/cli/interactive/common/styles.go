package common

import (
	"github.com/charmbracelet/lipgloss"
)

var defaultStyle = lipgloss.NewStyle()

func HighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
}

// SelectedStyle returns the style for chosen options (green)
func SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
}

// BadgeStyle returns the style for multi-select value badges
func BadgeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color("237")).Padding(0, 1)
}

// PlaceholderStyle returns the style for an empty control
func PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true)
}

// FocusedCaretStyle returns the style for the caret of a focused control
func FocusedCaretStyle() lipgloss.Style {
	return HighlightStyle()
}
