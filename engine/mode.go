package engine

import "fmt"

// ModeKind selects the iteration discipline for one phase.
type ModeKind uint8

const (
	// KindOnce traverses the sequence a single time.
	KindOnce ModeKind = iota
	// KindFullLoop traverses the entire sequence Reps times.
	KindFullLoop
	// KindPartialLoop traverses the sequence once but repeats the
	// sub-range [LoopStart, LoopEnd) until it has run Reps times.
	KindPartialLoop
)

func (k ModeKind) String() string {
	switch k {
	case KindOnce:
		return "once"
	case KindFullLoop:
		return "fullLoop"
	case KindPartialLoop:
		return "partialLoop"
	default:
		return "unknown"
	}
}

// Mode is a tagged variant describing how a sequence is consumed.
// Fields beyond Kind are meaningful only for the kinds that use them.
type Mode struct {
	Kind ModeKind

	// Reps is the repetition count for FullLoop and PartialLoop.
	// Ignored when RepsFromSlot is set.
	Reps int

	// LoopStart and LoopEnd bound the repeated sub-range of a
	// PartialLoop, half-open [LoopStart, LoopEnd).
	LoopStart int
	LoopEnd   int

	// RepsFromSlot makes a PartialLoop take its repetition count
	// from the scheduler's slot counter (slot+1) instead of Reps,
	// so each pass of the outer cycle repeats a different amount.
	RepsFromSlot bool
}

// Once traverses the sequence a single time, then completes.
func Once() Mode {
	return Mode{Kind: KindOnce}
}

// FullLoop traverses the entire sequence reps times, then completes.
func FullLoop(reps int) Mode {
	return Mode{Kind: KindFullLoop, Reps: reps}
}

// PartialLoop traverses the sequence once, repeating the sub-range
// [start, end) until it has run reps times in total. reps == 1 is a
// plain linear pass.
func PartialLoop(start, end, reps int) Mode {
	return Mode{Kind: KindPartialLoop, LoopStart: start, LoopEnd: end, Reps: reps}
}

// SlotPartialLoop is PartialLoop with the repetition count supplied
// by the scheduler's slot counter on each pass.
func SlotPartialLoop(start, end int) Mode {
	return Mode{Kind: KindPartialLoop, LoopStart: start, LoopEnd: end, RepsFromSlot: true}
}

// validate checks the mode against the length of the sequence it is
// bound to. The tick path relies on these invariants instead of
// guarding, so a plan must pass validation before it is executed.
func (m Mode) validate(seqLen int) error {
	switch m.Kind {
	case KindOnce:
		return nil
	case KindFullLoop:
		if m.Reps < 1 {
			return fmt.Errorf("%w: fullLoop reps %d", ErrBadReps, m.Reps)
		}
		return nil
	case KindPartialLoop:
		if !m.RepsFromSlot && m.Reps < 1 {
			return fmt.Errorf("%w: partialLoop reps %d", ErrBadReps, m.Reps)
		}
		if m.LoopStart < 0 || m.LoopEnd <= m.LoopStart || m.LoopEnd > seqLen {
			return fmt.Errorf("%w: [%d, %d) over %d steps", ErrBadLoopBounds, m.LoopStart, m.LoopEnd, seqLen)
		}
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrBadMode, m.Kind)
	}
}
