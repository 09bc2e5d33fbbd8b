package common

import (
	tea "github.com/charmbracelet/bubbletea"
)

// selectOption always proposes the candidate, re-selecting the current
// value included. Single mode never toggles back to none.
func (p SingleSelectProps) selectOption(selectID string, candidate *Option) tea.Cmd {
	return p.emit(selectID, candidate)
}

func (p SingleSelectProps) clearOptions(selectID string) tea.Cmd {
	return p.emit(selectID, nil)
}

// IsOptionSelected reports whether candidate is the current value
func (p SingleSelectProps) IsOptionSelected(candidate *Option) bool {
	return candidate != nil && candidate == p.Value
}

// selectOption removes the candidate if present, otherwise appends it.
// The host's slice is never modified.
func (p MultiSelectProps) selectOption(selectID string, candidate *Option) tea.Cmd {
	var next []*Option
	if p.IsOptionSelected(candidate) {
		next = make([]*Option, 0, len(p.Value)-1)
		for _, o := range p.Value {
			if o != candidate {
				next = append(next, o)
			}
		}
	} else {
		next = make([]*Option, 0, len(p.Value)+1)
		next = append(next, p.Value...)
		next = append(next, candidate)
	}
	return p.emit(selectID, next)
}

func (p MultiSelectProps) clearOptions(selectID string) tea.Cmd {
	return p.emit(selectID, []*Option{})
}

// IsOptionSelected reports whether candidate is one of the selected options
func (p MultiSelectProps) IsOptionSelected(candidate *Option) bool {
	return indexOf(p.Value, candidate) >= 0
}
