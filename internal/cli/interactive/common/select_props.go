package common

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SelectProps configures a Select. The only implementations are
// SingleSelectProps and MultiSelectProps; the mode decides the shape of
// Value and OnChange, so a multi-select with a single value cannot be built.
type SelectProps interface {
	OptionList() []*Option
	IsOptionSelected(candidate *Option) bool
	Multiple() bool

	selectOption(selectID string, candidate *Option) tea.Cmd
	clearOptions(selectID string) tea.Cmd
	present() Presentation
}

// SingleSelectProps holds the host-owned state of a single-choice Select.
// Value may be nil when nothing is selected.
type SingleSelectProps struct {
	Options  []*Option
	Value    *Option
	OnChange func(value *Option) tea.Msg
}

// MultiSelectProps holds the host-owned state of a multi-choice Select.
// Value is kept in selection order.
type MultiSelectProps struct {
	Options  []*Option
	Value    []*Option
	OnChange func(value []*Option) tea.Msg
}

// SingleSelectChangedMsg is sent when a single-choice Select without an
// OnChange callback proposes a new value
type SingleSelectChangedMsg struct {
	SelectID string
	Value    *Option
}

// MultiSelectChangedMsg is sent when a multi-choice Select without an
// OnChange callback proposes a new value
type MultiSelectChangedMsg struct {
	SelectID string
	Value    []*Option
}

var (
	_ SelectProps = SingleSelectProps{}
	_ SelectProps = MultiSelectProps{}
)

func (p SingleSelectProps) OptionList() []*Option { return p.Options }
func (p SingleSelectProps) Multiple() bool        { return false }

func (p MultiSelectProps) OptionList() []*Option { return p.Options }
func (p MultiSelectProps) Multiple() bool        { return true }

func (p SingleSelectProps) emit(selectID string, value *Option) tea.Cmd {
	onChange := p.OnChange
	return func() tea.Msg {
		if onChange != nil {
			return onChange(value)
		}
		return SingleSelectChangedMsg{SelectID: selectID, Value: value}
	}
}

func (p MultiSelectProps) emit(selectID string, value []*Option) tea.Cmd {
	onChange := p.OnChange
	return func() tea.Msg {
		if onChange != nil {
			return onChange(value)
		}
		return MultiSelectChangedMsg{SelectID: selectID, Value: value}
	}
}
