package ir

// Command is a decoded logical remote-control symbol. The decoder collapses
// "no signal", repeat frames and unrecognized codes to None.
type Command int

const (
	None Command = iota
	Power
	VolumeUp
	VolumeDown
	SpeedUp
	SpeedDown
	NextVariant
	PrevVariant
	AutoRotate
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
)

// Digit reports the numeric value of a digit command.
func (c Command) Digit() (int, bool) {
	if c < Digit0 || c > Digit9 {
		return 0, false
	}
	return int(c - Digit0), true
}

func (c Command) String() string {
	if d, ok := c.Digit(); ok {
		return "digit" + string(rune('0'+d))
	}
	switch c {
	case None:
		return "none"
	case Power:
		return "power"
	case VolumeUp:
		return "vol+"
	case VolumeDown:
		return "vol-"
	case SpeedUp:
		return "speed+"
	case SpeedDown:
		return "speed-"
	case NextVariant:
		return "next"
	case PrevVariant:
		return "prev"
	case AutoRotate:
		return "rotate"
	}
	return "unknown"
}
