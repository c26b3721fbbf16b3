package gamepad

// MaxPads is the number of controller slots polled each tick.
const MaxPads = 4

// AxisThreshold is how far an analog stick must travel before it is
// treated as a digital direction.
const AxisThreshold = 0.5

// Standard-mapping button and axis indices, matching the common
// "standard gamepad" layout.
const (
	ButtonA      = 0
	ButtonB      = 1
	ButtonX      = 2
	ButtonY      = 3
	ButtonSelect = 8
	ButtonStart  = 9
	ButtonUp     = 12
	ButtonDown   = 13
	ButtonLeft   = 14
	ButtonRight  = 15

	AxisLeftX = 0
	AxisLeftY = 1
)

// Button is the level of a single digital button within one tick.
type Button struct {
	Pressed bool
	Value   float64
}

// Pad is the live state of one connected controller. ID is the stable
// identity of the physical device occupying the slot; when a different
// device takes over a slot the ID changes and per-slot edge state is
// discarded.
type Pad struct {
	ID      string
	Buttons []Button
	Axes    []float64
}

// Snapshot holds the state of all slots for one tick. A nil entry is
// an empty slot.
type Snapshot struct {
	Pads [MaxPads]*Pad
}

// Connected reports whether any slot holds a pad.
func (s Snapshot) Connected() bool {
	for _, p := range s.Pads {
		if p != nil {
			return true
		}
	}
	return false
}

// Source is the host controller boundary: a pure per-tick read of all
// slots with no side effects.
type Source interface {
	Poll() Snapshot
}

// NullSource is a Source with no controllers attached.
type NullSource struct{}

func (NullSource) Poll() Snapshot { return Snapshot{} }
