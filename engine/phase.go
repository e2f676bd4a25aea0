package engine

import (
	"errors"
	"fmt"
)

// Validation errors returned when a plan is constructed. The tick
// path never checks these conditions again.
var (
	ErrEmptySequence = errors.New("engine: empty sequence")
	ErrBadReps       = errors.New("engine: repetition count must be at least 1")
	ErrBadLoopBounds = errors.New("engine: invalid partial-loop bounds")
	ErrBadMode       = errors.New("engine: invalid execution mode")
	ErrEmptyPlan     = errors.New("engine: plan has no phases")
	ErrBadTransition = errors.New("engine: invalid phase transition")
)

// Phase binds one sequence to one execution mode. Phases are
// identified by their position in the plan's phase list.
type Phase struct {
	Seq  Sequence
	Mode Mode
}

// Transition names the phase that begins once a phase completes.
// BumpSlot marks the repeat edge of the plan: crossing it advances
// the slot counter modulo the plan's slot cycle.
type Transition struct {
	Next     int
	BumpSlot bool
}

// Plan is the complete compiled schedule: an ordered phase list, one
// outgoing transition per phase, and the length of the slot cycle.
// A plan has no terminal state; the transition table must keep every
// phase reachable forever.
type Plan struct {
	Phases      []Phase
	Transitions []Transition

	// SlotCycle is the modulus of the slot counter. Plans that use
	// no slot-driven mode may leave it 0.
	SlotCycle int
}

// Validate checks every construction invariant the tick path relies
// on: non-empty sequences, coherent modes, a transition for every
// phase with an in-range target, and a positive slot cycle whenever
// any phase draws its repetition count from the slot counter.
func (p Plan) Validate() error {
	if len(p.Phases) == 0 {
		return ErrEmptyPlan
	}
	if len(p.Transitions) != len(p.Phases) {
		return fmt.Errorf("%w: %d transitions for %d phases", ErrBadTransition, len(p.Transitions), len(p.Phases))
	}
	usesSlot := false
	for i, ph := range p.Phases {
		if err := ph.Seq.validate(); err != nil {
			return fmt.Errorf("phase %d (%s): %w", i, ph.Seq.Name, err)
		}
		if err := ph.Mode.validate(len(ph.Seq.Steps)); err != nil {
			return fmt.Errorf("phase %d (%s): %w", i, ph.Seq.Name, err)
		}
		if ph.Mode.RepsFromSlot {
			usesSlot = true
		}
	}
	for i, tr := range p.Transitions {
		if tr.Next < 0 || tr.Next >= len(p.Phases) {
			return fmt.Errorf("%w: phase %d -> %d", ErrBadTransition, i, tr.Next)
		}
		if tr.BumpSlot {
			usesSlot = true
		}
	}
	if usesSlot && p.SlotCycle < 1 {
		return fmt.Errorf("%w: slot cycle %d with slot-driven phases", ErrBadReps, p.SlotCycle)
	}
	return nil
}
