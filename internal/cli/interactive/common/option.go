package common

import "fmt"

// Option is one selectable item in a Select.
//
// Options are compared by pointer identity, not by Label or Value: two
// distinct *Option values with identical fields are different selections.
// Hosts should build their option list once and pass the same pointers back
// as the selected value.
type Option struct {
	Label string
	Value any // string or number
}

// NewOption creates a new option with the given label and value
func NewOption(label string, value any) *Option {
	return &Option{Label: label, Value: value}
}

// NewNumberedOptions builds "Option 1".."Option n" with values "1".."n"
func NewNumberedOptions(n int) []*Option {
	options := make([]*Option, 0, n)
	for i := 1; i <= n; i++ {
		options = append(options, NewOption(fmt.Sprintf("Option %d", i), fmt.Sprintf("%d", i)))
	}
	return options
}

// FilterValue returns a value for filtering - implements list.Item
func (o *Option) FilterValue() string {
	return o.Label
}

// String renders the option for debug output
func (o *Option) String() string {
	if o == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s (%v)", o.Label, o.Value)
}

func indexOf(options []*Option, candidate *Option) int {
	for i, o := range options {
		if o == candidate {
			return i
		}
	}
	return -1
}
