package interactive

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/sirupsen/logrus"
	"github.com/zamm-dev/zamm-select/internal/cli/interactive/common"
	"github.com/zamm-dev/zamm-select/internal/logging"
)

const (
	labelWidth = 10
	singleRow  = 2
	multiRow   = 4
)

// DemoConfig configures the demo host
type DemoConfig struct {
	Options     []*common.Option
	Width       int
	Placeholder string
	Logger      logrus.FieldLogger
	Dump        io.Writer // receives a spew dump of every message when set
}

// DemoModel hosts one single-choice and one multi-choice select over the
// same options. It owns both selected values; the selects only propose
// changes.
type DemoModel struct {
	options []*common.Option
	single  *common.Option
	multi   []*common.Option

	singleSelect *common.Select
	multiSelect  *common.Select
	selects      []*common.Select
	focus        int

	keys   demoKeyMap
	help   help.Model
	width  int
	height int
	log    logrus.FieldLogger
	dump   io.Writer
}

type demoKeyMap struct {
	common.SelectKeyMap
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func (k demoKeyMap) ShortHelp() []key.Binding {
	return append(k.SelectKeyMap.ShortHelp(), k.Next, k.Quit)
}

func (k demoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.SelectKeyMap.ShortHelp(), {k.Next, k.Prev, k.Quit}}
}

// NewDemoModel creates the demo host with the first option preselected in
// both selects
func NewDemoModel(config DemoConfig) *DemoModel {
	logger := config.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := &DemoModel{
		options: config.Options,
		multi:   []*common.Option{},
		help:    help.New(),
		log:     logger,
		dump:    config.Dump,
	}
	if len(config.Options) > 0 {
		m.single = config.Options[0]
		m.multi = []*common.Option{config.Options[0]}
	}

	m.singleSelect = common.NewSelect(m.singleProps())
	m.multiSelect = common.NewSelect(m.multiProps())
	m.selects = []*common.Select{m.singleSelect, m.multiSelect}
	for i, s := range m.selects {
		s.SetLogger(logger)
		s.SetPlaceholder(config.Placeholder)
		if config.Width > 0 {
			s.SetWidth(config.Width)
		}
		s.SetPosition(labelWidth, rowOf(i))
	}
	m.singleSelect.Focus()

	m.keys = demoKeyMap{
		SelectKeyMap: m.singleSelect.KeyMap(),
		Next:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next select")),
		Prev:         key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous select")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
	return m
}

func rowOf(i int) int {
	if i == 0 {
		return singleRow
	}
	return multiRow
}

func (m *DemoModel) singleProps() common.SingleSelectProps {
	return common.SingleSelectProps{Options: m.options, Value: m.single}
}

func (m *DemoModel) multiProps() common.MultiSelectProps {
	return common.MultiSelectProps{Options: m.options, Value: m.multi}
}

// SingleValue returns the value owned for the single-choice select
func (m *DemoModel) SingleValue() *common.Option { return m.single }

// MultiValue returns the value owned for the multi-choice select
func (m *DemoModel) MultiValue() []*common.Option { return m.multi }

// Selects returns the single-choice and multi-choice selects
func (m *DemoModel) Selects() (*common.Select, *common.Select) {
	return m.singleSelect, m.multiSelect
}

// Init initializes the demo
func (m *DemoModel) Init() tea.Cmd {
	return nil
}

// Update handles tea messages and updates the demo
func (m *DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case common.SingleSelectChangedMsg:
		if msg.SelectID == m.singleSelect.ID() {
			m.single = msg.Value
			m.singleSelect.SetProps(m.singleProps())
			m.log.WithField("value", m.single.String()).Info("single selection changed")
		}
		return m, nil

	case common.MultiSelectChangedMsg:
		if msg.SelectID == m.multiSelect.ID() {
			m.multi = msg.Value
			m.multiSelect.SetProps(m.multiProps())
			m.log.WithField("value", labels(m.multi)).Info("multiple selection changed")
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.moveFocus(-1)
			return m, nil
		}
		// keys go back to the last focused select after a click on empty space
		m.selects[m.focus].Focus()
		var cmd tea.Cmd
		m.selects[m.focus], cmd = m.selects[m.focus].Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

// handleMouse delivers a pointer event to the one select drawn on top at
// that cell. A left press blurs every other select.
func (m *DemoModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	target := m.mouseTarget(msg.X, msg.Y)
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if press {
		for i, s := range m.selects {
			if i != target {
				s.Blur()
			}
		}
	}
	if target < 0 {
		return nil
	}
	if press {
		m.focus = target
	}
	var cmd tea.Cmd
	m.selects[target], cmd = m.selects[target].Update(msg)
	return cmd
}

// mouseTarget returns the index of the select under the cell, or -1. An
// open panel covers the rows beneath it, so panels win over control lines.
func (m *DemoModel) mouseTarget(x, y int) int {
	for i, s := range m.selects {
		if s.IsOpen() && s.InPanel(x, y) {
			return i
		}
	}
	for i, s := range m.selects {
		if s.OnControl(x, y) {
			return i
		}
	}
	return -1
}

func (m *DemoModel) moveFocus(delta int) {
	m.selects[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.selects)) % len(m.selects)
	m.selects[m.focus].Focus()
}

// View renders the demo. An open panel is drawn over the rows beneath its
// control rather than pushing them down.
func (m *DemoModel) View() string {
	lines := []string{
		HeaderStyle().Render("Select demo"),
		"",
		m.labelled("Single", m.singleSelect),
		"",
		m.labelled("Multiple", m.multiSelect),
		"",
		fmt.Sprintf("single: %s   multiple: %s", m.single.String(), strings.Join(labels(m.multi), ", ")),
		"",
		m.help.View(m.keys),
	}

	for i, s := range m.selects {
		if !s.IsOpen() {
			continue
		}
		panelTop := rowOf(i) + 1
		panel := s.PanelView()
		for len(lines) < panelTop+lipgloss.Height(panel) {
			lines = append(lines, "")
		}
		bg := staticView(strings.Join(lines, "\n"))
		return overlay.New(staticView(panel), bg, overlay.Left, overlay.Top, labelWidth, panelTop).View()
	}
	return strings.Join(lines, "\n")
}

func (m *DemoModel) labelled(label string, s *common.Select) string {
	return lipgloss.NewStyle().Width(labelWidth).Render(label) + s.ControlView()
}

// staticView adapts pre-rendered text to tea.Model for overlay composition
type staticView string

func (v staticView) Init() tea.Cmd                       { return nil }
func (v staticView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v staticView) View() string                        { return string(v) }

func labels(options []*common.Option) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		out = append(out, o.Label)
	}
	return out
}
