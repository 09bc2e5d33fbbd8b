package common

import (
	tea "github.com/charmbracelet/bubbletea"
)

type regionKind int

const (
	regionNone    regionKind = iota
	regionBadge              // remove affordance of one selected option
	regionClear              // clear button
	regionControl            // rest of the control line
	regionOption             // panel row
)

// hitRegion is a column range on the control line
type hitRegion struct {
	kind       regionKind
	start, end int
	option     *Option
}

type hit struct {
	kind   regionKind
	option *Option
	index  int
}

// hitTest maps a cell relative to the control origin to the part of the
// select drawn there. Regions are checked in order, so badges and the
// clear button win over the control body.
func (s *Select) hitTest(x, y int) hit {
	if y == 0 {
		_, regions := s.layoutControl()
		for _, r := range regions {
			if x >= r.start && x < r.end {
				return hit{kind: r.kind, option: r.option, index: -1}
			}
		}
		return hit{kind: regionNone, index: -1}
	}

	if !s.state.open || x < 0 || x >= s.width {
		return hit{kind: regionNone, index: -1}
	}
	row := y - 1
	if row >= 0 && row < len(s.options()) {
		return hit{kind: regionOption, index: row}
	}
	return hit{kind: regionNone, index: -1}
}

func (s *Select) handleMouse(msg tea.MouseMsg) tea.Cmd {
	h := s.hitTest(msg.X-s.x, msg.Y-s.y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if h.kind == regionOption {
			s.HoverOption(h.index)
		}
		return nil
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
	default:
		return nil
	}

	if h.kind == regionNone {
		s.Blur()
		return nil
	}
	s.Focus()

	switch h.kind {
	case regionBadge:
		return s.ClickBadge(h.option)
	case regionClear:
		return s.ClickClear()
	case regionOption:
		return s.ClickOption(h.index)
	default:
		return s.ClickControl()
	}
}

// InPanel reports whether the screen cell lies on a row of the open panel
func (s *Select) InPanel(x, y int) bool {
	return s.hitTest(x-s.x, y-s.y).kind == regionOption
}

// OnControl reports whether the screen cell lies on the control line
func (s *Select) OnControl(x, y int) bool {
	return y == s.y && s.hitTest(x-s.x, 0).kind != regionNone
}
