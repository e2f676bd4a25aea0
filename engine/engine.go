package engine

import "github.com/hatchbot/hatchbot/device/pokken"

// state is everything the engine mutates between ticks. There is
// exactly one of these per engine and only NextReport touches it.
type state struct {
	phase int
	step  int
	loop  int
	echo  int
	slot  int
	last  pokken.Report
}

// Engine plays a validated plan one report at a time. It is not safe
// for concurrent use; the transport layer is expected to drive it
// from a single poll loop.
type Engine struct {
	plan Plan
	st   state
}

// New validates the plan and returns an engine positioned at the
// first phase with the slot counter at zero.
func New(plan Plan) (*Engine, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &Engine{plan: plan}, nil
}

// Phase returns the index of the phase the next report comes from.
func (e *Engine) Phase() int { return e.st.phase }

// Slot returns the current value of the slot counter.
func (e *Engine) Slot() int { return e.st.slot }

// Echoing reports whether the next call will replay the cached
// report instead of fetching a new step.
func (e *Engine) Echoing() bool { return e.st.echo > 0 }

// HandleOutput accepts a report received from the host. Playback is
// fully scripted, so the data is discarded.
func (e *Engine) HandleOutput(data []byte) {}

// NextReport synthesizes the report for one poll tick.
//
// While a step's duration has ticks remaining, the previously built
// report is replayed verbatim and no cursor moves. Otherwise the
// current phase's step is overlaid onto a neutral report, the cursor
// advances under the phase's mode, and phase completion runs the
// transition table. The freshly built report is cached so following
// ticks can echo it.
func (e *Engine) NextReport() pokken.Report {
	if e.st.echo > 0 {
		e.st.echo--
		return e.st.last
	}

	r := pokken.Neutral()

	ph := &e.plan.Phases[e.st.phase]
	step := ph.Seq.Steps[e.st.step]
	r.Buttons |= step.Buttons
	r.LX = step.LX
	r.LY = step.LY
	if step.Duration > 0 {
		e.st.echo = int(step.Duration) - 1
	}

	if e.advance(ph.Mode, len(ph.Seq.Steps)) {
		tr := e.plan.Transitions[e.st.phase]
		if tr.BumpSlot {
			e.st.slot = (e.st.slot + 1) % e.plan.SlotCycle
		}
		e.st.phase = tr.Next
	}

	e.st.last = r
	return r
}

// advance moves the step cursor one position under the given mode
// and reports whether the phase completed. On completion the step
// and loop cursors are reset for the next phase.
func (e *Engine) advance(m Mode, seqLen int) bool {
	e.st.step++
	switch m.Kind {
	case KindFullLoop:
		if e.st.step >= seqLen {
			e.st.step = 0
			e.st.loop++
			if e.st.loop >= m.Reps {
				e.st.loop = 0
				return true
			}
		}
	case KindPartialLoop:
		reps := m.Reps
		if m.RepsFromSlot {
			reps = e.st.slot + 1
		}
		if e.st.step == m.LoopEnd && e.st.loop < reps-1 {
			e.st.step = m.LoopStart
			e.st.loop++
		}
		if e.st.step >= seqLen {
			e.st.step = 0
			e.st.loop = 0
			return true
		}
	default: // KindOnce
		if e.st.step >= seqLen {
			e.st.step = 0
			return true
		}
	}
	return false
}
