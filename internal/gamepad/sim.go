package gamepad

import "sync"

// SimSource is a programmable Source. It is the injection point for
// real host drivers and the harness used in tests: callers set per-slot
// state and Poll returns a copy of it.
type SimSource struct {
	mu   sync.Mutex
	pads [MaxPads]*Pad
}

func NewSimSource() *SimSource {
	return &SimSource{}
}

// SetPad places a pad in a slot; a nil pad disconnects the slot.
func (s *SimSource) SetPad(slot int, pad *Pad) {
	if slot < 0 || slot >= MaxPads {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pads[slot] = pad
}

// Disconnect empties a slot.
func (s *SimSource) Disconnect(slot int) {
	s.SetPad(slot, nil)
}

func (s *SimSource) Poll() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var snap Snapshot
	for i, pad := range s.pads {
		if pad == nil {
			continue
		}
		clone := &Pad{
			ID:      pad.ID,
			Buttons: append([]Button(nil), pad.Buttons...),
			Axes:    append([]float64(nil), pad.Axes...),
		}
		snap.Pads[i] = clone
	}
	return snap
}
