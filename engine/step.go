// Package engine implements the deterministic playback core: timed
// input steps grouped into sequences, execution modes that decide how
// a cursor walks a sequence, and a phase plan that chains sequences
// into one long automated procedure. The engine synthesizes exactly
// one pad report per call, in constant time and without allocating,
// so it can sit directly on a poll-driven transport path.
package engine

import "github.com/hatchbot/hatchbot/device/pokken"

// Step is one atomic input event: buttons held together, the left
// stick deflection, and how many poll ticks the event occupies.
//
// A step with Duration d produces d identical reports: the synthesis
// tick plus d-1 echo ticks. Duration 0 behaves like 1 (the report is
// still sent once; there is no way to skip a tick).
type Step struct {
	Buttons  pokken.Button
	LX       uint8
	LY       uint8
	Duration uint16
}

// Sequence is a named, ordered list of steps. Sequences are built
// once at startup and never mutated; the engine only ever reads them.
type Sequence struct {
	Name  string
	Steps []Step
}

// Ticks returns the total number of poll ticks one linear pass over
// the sequence occupies, counting every duration-0 step as one tick.
func (s Sequence) Ticks() int {
	total := 0
	for _, st := range s.Steps {
		d := int(st.Duration)
		if d == 0 {
			d = 1
		}
		total += d
	}
	return total
}

func (s Sequence) validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptySequence
	}
	return nil
}
