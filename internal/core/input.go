package core

import "strings"

// Button identifies one key of the handheld pad. Values follow the bit order
// of the console's key input register so a snapshot fits in one Buttons word.
type Button uint16

const (
	ButtonA      Button = 1 << iota // fire
	ButtonB                         // secondary
	ButtonSelect                    // select
	ButtonStart                     // start
	ButtonRight                     // d-pad right
	ButtonLeft                      // d-pad left
	ButtonUp                        // d-pad up
	ButtonDown                      // d-pad down
	ButtonR                         // right shoulder
	ButtonL                         // left shoulder
)

// AllButtons lists every pad button in register order.
var AllButtons = []Button{
	ButtonA, ButtonB, ButtonSelect, ButtonStart,
	ButtonRight, ButtonLeft, ButtonUp, ButtonDown,
	ButtonR, ButtonL,
}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonSelect:
		return "Select"
	case ButtonStart:
		return "Start"
	case ButtonRight:
		return "Right"
	case ButtonLeft:
		return "Left"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonR:
		return "R"
	case ButtonL:
		return "L"
	default:
		return "Unknown"
	}
}

// ParseButton looks up a button by name, ignoring case.
func ParseButton(name string) (Button, bool) {
	for _, b := range AllButtons {
		if strings.EqualFold(b.String(), name) {
			return b, true
		}
	}
	return 0, false
}

// Buttons is a set of held buttons captured at one instant.
// The zero value means nothing is held.
type Buttons uint16

// Has returns true if b is held in this set.
func (s Buttons) Has(b Button) bool {
	return s&Buttons(b) != 0
}

// With returns the set with b held.
func (s Buttons) With(b Button) Buttons {
	return s | Buttons(b)
}

// Without returns the set with b released.
func (s Buttons) Without(b Button) Buttons {
	return s &^ Buttons(b)
}

// String lists the held buttons, e.g. "Left+A".
func (s Buttons) String() string {
	if s == 0 {
		return "-"
	}
	names := make([]string, 0, len(AllButtons))
	for _, b := range AllButtons {
		if s.Has(b) {
			names = append(names, b.String())
		}
	}
	return strings.Join(names, "+")
}
