package common

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// optionDelegate renders one panel row. Selected and highlighted are
// independent and may both apply to the same row.
type optionDelegate struct {
	props SelectProps
}

func (d optionDelegate) Height() int                             { return 1 }
func (d optionDelegate) Spacing() int                            { return 0 }
func (d optionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d optionDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	option, ok := listItem.(*Option)
	if !ok {
		return
	}

	cursor := "  "
	highlighted := index == m.Index()
	if highlighted {
		cursor = "> "
	}
	mark := "  "
	selected := d.props != nil && d.props.IsOptionSelected(option)
	if selected {
		mark = "✓ "
	}

	style := defaultStyle
	if selected {
		style = SelectedStyle()
	}
	if highlighted {
		style = style.Inherit(HighlightStyle())
	}
	_, _ = fmt.Fprint(w, style.Render(cursor+mark+option.Label))
}
