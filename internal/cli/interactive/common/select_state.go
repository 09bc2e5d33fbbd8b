package common

// interactionState is the only state a Select owns: whether the panel is
// shown and which row is under the keyboard cursor.
type interactionState struct {
	open        bool
	highlighted int
}

// setOpen applies a new open state and reports whether it changed.
// Becoming open resets the highlight to the first row.
func (s *interactionState) setOpen(open bool) bool {
	if s.open == open {
		return false
	}
	s.open = open
	if open {
		s.onOpened()
	}
	return true
}

func (s *interactionState) onOpened() {
	s.highlighted = 0
}

// hover highlights row i if it is a valid row
func (s *interactionState) hover(i, count int) {
	if i >= 0 && i < count {
		s.highlighted = i
	}
}

// move shifts the highlight by delta. A move that would leave
// [0, count-1] leaves the highlight where it is.
func (s *interactionState) move(delta, count int) bool {
	next := s.highlighted + delta
	if next < 0 || next >= count {
		return false
	}
	s.highlighted = next
	return true
}

// clamp pulls the highlight back into range after the option list shrank
func (s *interactionState) clamp(count int) {
	if s.highlighted >= count {
		s.highlighted = count - 1
	}
	if s.highlighted < 0 {
		s.highlighted = 0
	}
}

// highlightedIndex returns the highlighted row, or -1 if there is none
func (s *interactionState) highlightedIndex(count int) int {
	if s.highlighted < 0 || s.highlighted >= count {
		return -1
	}
	return s.highlighted
}
