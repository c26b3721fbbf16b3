package gamepad

// PadState retains the levels seen on the immediately preceding tick
// for one slot. The zero value is the seeded baseline: nothing pressed.
type PadState struct {
	ID      string
	Buttons []bool
	Up      bool
	Down    bool
	Left    bool
	Right   bool
}

// PadEdges is the set of "became pressed this tick" events for one
// slot. Buttons holds digital indices in ascending order.
type PadEdges struct {
	Slot    int
	Buttons []int
	Up      bool
	Down    bool
	Left    bool
	Right   bool
}

// Any reports whether the tick produced at least one edge.
func (e PadEdges) Any() bool {
	return len(e.Buttons) > 0 || e.Up || e.Down || e.Left || e.Right
}

// Tracker diffs consecutive snapshots into edge events. Each slot is
// tracked independently; state is keyed by slot and reset whenever the
// slot empties or a different device identity occupies it.
type Tracker struct {
	states [MaxPads]PadState
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Advance compares snap against the previous tick and returns the
// edges that fired, updating retained state in place. A slot seen for
// the first time (or re-seen under a new identity) is baselined to
// "not pressed" before comparison, so a button already held at connect
// time does not fire until it is released and pressed again.
func (t *Tracker) Advance(snap Snapshot) []PadEdges {
	out := make([]PadEdges, 0, MaxPads)
	for slot := 0; slot < MaxPads; slot++ {
		pad := snap.Pads[slot]
		if pad == nil {
			t.states[slot] = PadState{}
			continue
		}
		prev := t.states[slot]
		if prev.ID != pad.ID {
			prev = PadState{ID: pad.ID}
		}
		next, edges := diffPad(prev, pad, slot)
		t.states[slot] = next
		if edges.Any() {
			out = append(out, edges)
		}
	}
	return out
}

// Reset discards all retained levels, re-seeding every slot baseline.
func (t *Tracker) Reset() {
	t.states = [MaxPads]PadState{}
}

func diffPad(prev PadState, pad *Pad, slot int) (PadState, PadEdges) {
	next := PadState{ID: pad.ID, Buttons: make([]bool, len(pad.Buttons))}
	edges := PadEdges{Slot: slot}

	for i, b := range pad.Buttons {
		next.Buttons[i] = b.Pressed
		if b.Pressed && !buttonWas(prev.Buttons, i) {
			edges.Buttons = append(edges.Buttons, i)
		}
	}

	next.Up = directionLevel(pad, ButtonUp, AxisLeftY, -1)
	next.Down = directionLevel(pad, ButtonDown, AxisLeftY, +1)
	next.Left = directionLevel(pad, ButtonLeft, AxisLeftX, -1)
	next.Right = directionLevel(pad, ButtonRight, AxisLeftX, +1)

	edges.Up = next.Up && !prev.Up
	edges.Down = next.Down && !prev.Down
	edges.Left = next.Left && !prev.Left
	edges.Right = next.Right && !prev.Right

	return next, edges
}

// directionLevel ORs the d-pad button with the stick axis so the two
// are interchangeable and holding both stays a single level.
func directionLevel(pad *Pad, button, axis int, sign float64) bool {
	if buttonPressed(pad, button) {
		return true
	}
	if axis < len(pad.Axes) && pad.Axes[axis]*sign > AxisThreshold {
		return true
	}
	return false
}

func buttonPressed(pad *Pad, index int) bool {
	return index < len(pad.Buttons) && pad.Buttons[index].Pressed
}

func buttonWas(levels []bool, index int) bool {
	return index < len(levels) && levels[index]
}
