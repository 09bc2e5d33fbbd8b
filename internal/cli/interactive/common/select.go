package common

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zamm-dev/zamm-select/internal/logging"
)

const (
	defaultSelectWidth = 30
	clearButton        = " × "
	caret              = "│ ▾"
)

// Select is a dropdown control over host-owned state. The host passes the
// current value in through SetProps and receives proposed values through
// OnChange (or SingleSelectChangedMsg / MultiSelectChangedMsg). The Select
// itself only tracks whether its panel is open and which row is highlighted.
type Select struct {
	id          string
	props       SelectProps
	state       interactionState
	focused     bool
	keys        SelectKeyMap
	list        list.Model
	placeholder string
	width       int
	x, y        int
	log         logrus.FieldLogger
}

// NewSelect creates a new select component
func NewSelect(props SelectProps) *Select {
	l := list.New(nil, optionDelegate{props: props}, defaultSelectWidth, 1)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	s := &Select{
		id:    uuid.New().String(),
		keys:  DefaultSelectKeyMap(),
		list:  l,
		width: defaultSelectWidth,
		log:   logging.Discard(),
	}
	s.SetProps(props)
	return s
}

// ID returns the identifier carried by default change messages
func (s *Select) ID() string { return s.id }

// Props returns the props most recently supplied by the host
func (s *Select) Props() SelectProps { return s.props }

// SetProps replaces the host-owned state. Hosts call this after every
// change they accept.
func (s *Select) SetProps(props SelectProps) {
	s.props = props
	options := s.options()
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = o
	}
	s.list.SetItems(items)
	s.list.SetDelegate(optionDelegate{props: props})
	s.state.clamp(len(options))
	s.resizePanel()
}

// SetLogger sets the logger used to trace interaction
func (s *Select) SetLogger(logger logrus.FieldLogger) {
	if logger == nil {
		return
	}
	s.log = logger.WithField("select", s.id)
}

// SetKeyMap replaces the keyboard bindings
func (s *Select) SetKeyMap(keys SelectKeyMap) { s.keys = keys }

// KeyMap returns the keyboard bindings, for use with bubbles help
func (s *Select) KeyMap() SelectKeyMap { return s.keys }

// SetPlaceholder sets the text shown when nothing is selected
func (s *Select) SetPlaceholder(placeholder string) { s.placeholder = placeholder }

// SetWidth sets the width of the control line and the panel
func (s *Select) SetWidth(width int) {
	minWidth := lipgloss.Width(clearButton) + lipgloss.Width(caret) + 1
	if width < minWidth {
		width = minWidth
	}
	s.width = width
	s.resizePanel()
}

// Width returns the rendered width of the control line
func (s *Select) Width() int { return s.width }

// SetPosition sets the screen cell where the control line is drawn.
// Mouse events are hit-tested relative to it.
func (s *Select) SetPosition(x, y int) {
	s.x = x
	s.y = y
}

// Focus lets the select receive key events
func (s *Select) Focus() {
	s.focused = true
}

// Blur removes focus. Losing focus always closes the panel.
func (s *Select) Blur() {
	s.focused = false
	s.setOpen(false)
}

// Focused reports whether the select receives key events
func (s *Select) Focused() bool { return s.focused }

// IsOpen reports whether the option panel is shown
func (s *Select) IsOpen() bool { return s.state.open }

// HighlightedIndex returns the keyboard cursor position in the option list
func (s *Select) HighlightedIndex() int { return s.state.highlighted }

// IsOptionSelected reports whether candidate is part of the host's value
func (s *Select) IsOptionSelected(candidate *Option) bool {
	return s.props != nil && s.props.IsOptionSelected(candidate)
}

// Init initializes the select
func (s *Select) Init() tea.Cmd {
	return nil
}

// Update handles tea messages and updates the component
func (s *Select) Update(msg tea.Msg) (*Select, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		return s, s.handleKey(msg)
	case tea.MouseMsg:
		return s, s.handleMouse(msg)
	}
	return s, nil
}

func (s *Select) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Commit):
		if !s.state.open {
			s.setOpen(true)
			return nil
		}
		cmd := s.commitHighlighted()
		s.setOpen(false)
		return cmd
	case key.Matches(msg, s.keys.Down), key.Matches(msg, s.keys.Up):
		if !s.state.open {
			s.setOpen(true)
			return nil
		}
		delta := 1
		if key.Matches(msg, s.keys.Up) {
			delta = -1
		}
		if s.state.move(delta, len(s.options())) {
			s.log.WithField("highlighted", s.state.highlighted).Debug("highlight moved")
		}
	case key.Matches(msg, s.keys.Close):
		s.setOpen(false)
	}
	return nil
}

// commitHighlighted selects the highlighted option. With no options
// there is nothing to commit and no change is proposed.
func (s *Select) commitHighlighted() tea.Cmd {
	options := s.options()
	i := s.state.highlightedIndex(len(options))
	if i < 0 {
		s.log.Debug("commit ignored, no option highlighted")
		return nil
	}
	return s.selectOption(options[i])
}

// ClickControl handles a click on the control body: it toggles the panel
func (s *Select) ClickControl() tea.Cmd {
	s.setOpen(!s.state.open)
	return nil
}

// ClickClear handles a click on the clear button. The panel is left as is.
func (s *Select) ClickClear() tea.Cmd {
	if s.props == nil {
		return nil
	}
	s.log.Debug("clear requested")
	return s.props.clearOptions(s.id)
}

// ClickBadge handles a click on a multi-select badge, removing that
// option. The panel is left as is.
func (s *Select) ClickBadge(option *Option) tea.Cmd {
	if option == nil || !s.IsOptionSelected(option) {
		return nil
	}
	return s.selectOption(option)
}

// ClickOption handles a click on panel row i: the option is selected and
// the panel closes, in both modes.
func (s *Select) ClickOption(i int) tea.Cmd {
	options := s.options()
	if i < 0 || i >= len(options) {
		return nil
	}
	cmd := s.selectOption(options[i])
	s.setOpen(false)
	return cmd
}

// HoverOption highlights panel row i
func (s *Select) HoverOption(i int) {
	s.state.hover(i, len(s.options()))
}

func (s *Select) selectOption(option *Option) tea.Cmd {
	if s.props == nil {
		return nil
	}
	s.log.WithField("option", option.String()).Debug("option selected")
	return s.props.selectOption(s.id, option)
}

func (s *Select) setOpen(open bool) {
	if s.state.setOpen(open) {
		s.log.WithField("open", open).Debug("panel toggled")
	}
}

func (s *Select) options() []*Option {
	if s.props == nil {
		return nil
	}
	return s.props.OptionList()
}

func (s *Select) resizePanel() {
	height := len(s.options())
	if height < 1 {
		height = 1
	}
	s.list.SetSize(s.width, height)
}

// View renders the control line, followed by the panel when open
func (s *Select) View() string {
	if !s.state.open {
		return s.ControlView()
	}
	return s.ControlView() + "\n" + s.PanelView()
}

// ControlView renders the control line only
func (s *Select) ControlView() string {
	line, _ := s.layoutControl()
	return line
}

// PanelView renders the option rows, or an empty string when closed
func (s *Select) PanelView() string {
	if !s.state.open {
		return ""
	}
	if i := s.state.highlightedIndex(len(s.options())); i >= 0 {
		s.list.Select(i)
	}
	return s.list.View()
}

// layoutControl renders the control line and records the columns of
// each clickable part of it
func (s *Select) layoutControl() (string, []hitRegion) {
	var (
		sb      strings.Builder
		regions []hitRegion
		col     int
	)

	presentation := Present(s.props)
	switch {
	case presentation.Empty:
		if s.placeholder != "" {
			text := PlaceholderStyle().Render(s.placeholder)
			sb.WriteString(text)
			col += lipgloss.Width(text)
		}
	case len(presentation.Badges) > 0:
		for i, badge := range presentation.Badges {
			if i > 0 {
				sb.WriteString(" ")
				col++
			}
			text := BadgeStyle().Render(badge.Label + " ×")
			w := lipgloss.Width(text)
			regions = append(regions, hitRegion{kind: regionBadge, start: col, end: col + w, option: badge})
			sb.WriteString(text)
			col += w
		}
	default:
		sb.WriteString(presentation.Label)
		col += lipgloss.Width(presentation.Label)
	}

	trailerStart := s.width - lipgloss.Width(clearButton) - lipgloss.Width(caret)
	if col < trailerStart {
		sb.WriteString(strings.Repeat(" ", trailerStart-col))
		col = trailerStart
	}

	regions = append(regions, hitRegion{kind: regionClear, start: col, end: col + lipgloss.Width(clearButton)})
	sb.WriteString(clearButton)
	col += lipgloss.Width(clearButton)

	caretText := caret
	if s.focused {
		caretText = FocusedCaretStyle().Render(caret)
	}
	sb.WriteString(caretText)
	col += lipgloss.Width(caret)

	regions = append(regions, hitRegion{kind: regionControl, start: 0, end: col})
	return sb.String(), regions
}
