package common

// Presentation is what the control line shows for the current value.
// Single-choice selects fill Label, multi-choice selects fill Badges.
type Presentation struct {
	Label  string
	Badges []*Option
	Empty  bool
}

func (p SingleSelectProps) present() Presentation {
	if p.Value == nil {
		return Presentation{Empty: true}
	}
	return Presentation{Label: p.Value.Label}
}

func (p MultiSelectProps) present() Presentation {
	if len(p.Value) == 0 {
		return Presentation{Empty: true}
	}
	badges := make([]*Option, len(p.Value))
	copy(badges, p.Value)
	return Presentation{Badges: badges}
}

// Present derives the displayed value from the props
func Present(props SelectProps) Presentation {
	if props == nil {
		return Presentation{Empty: true}
	}
	return props.present()
}
