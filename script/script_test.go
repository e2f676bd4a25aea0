package script_test

import (
	"testing"

	"github.com/hatchbot/hatchbot/engine"
	"github.com/hatchbot/hatchbot/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findSequence(t *testing.T, name string) engine.Sequence {
	t.Helper()
	for _, s := range script.Sequences() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("sequence %q not published", name)
	return engine.Sequence{}
}

func TestPlanValidates(t *testing.T) {
	assert.NoError(t, script.Plan().Validate())
}

func TestPublishedSequencesAreNonEmpty(t *testing.T) {
	seqs := script.Sequences()
	assert.NotEmpty(t, seqs)
	for _, s := range seqs {
		assert.NotEmpty(t, s.Steps, "sequence %q", s.Name)
	}
}

func TestSyncPhaseTiming(t *testing.T) {
	sync := findSequence(t, "syncController")
	require.Len(t, sync.Steps, 8)
	assert.Equal(t, 340, sync.Ticks())

	e, err := engine.New(script.Plan())
	require.NoError(t, err)

	// The sync phase occupies exactly 340 report requests; buttons
	// appear only during the taps (steps 1, 3, 5, 7), i.e. on 40 of
	// the 340 ticks.
	buttonTicks := 0
	for i := 0; i < 340; i++ {
		r := e.NextReport()
		if r.Buttons != 0 {
			buttonTicks++
		}
	}
	assert.Equal(t, 40, buttonTicks)
	assert.Equal(t, 1, e.Phase())
	assert.False(t, e.Echoing())
}

func TestFirstEggPassIsLinear(t *testing.T) {
	// With the slot counter at zero the partial loop requests a
	// single repetition, so the first getEgg pass takes exactly one
	// linear traversal of the table.
	getEgg := findSequence(t, "getEgg")
	require.Len(t, getEgg.Steps, 22)

	e, err := engine.New(script.Plan())
	require.NoError(t, err)

	for i := 0; i < 340; i++ {
		e.NextReport()
	}
	require.Equal(t, 1, e.Phase())

	for i := 0; i < getEgg.Ticks(); i++ {
		e.NextReport()
	}
	assert.Equal(t, 2, e.Phase())
	assert.False(t, e.Echoing())
}

func TestSlotCounterCyclesThroughParty(t *testing.T) {
	e, err := engine.New(script.Plan())
	require.NoError(t, err)

	// Run the plan long enough for six passes of the outer cycle and
	// record every slot change. The counter must walk 1,2,3,4 and
	// wrap back to 0.
	var slots []int
	last := e.Slot()
	const tickBudget = 70_000
	for i := 0; i < tickBudget && len(slots) < 6; i++ {
		e.NextReport()
		if s := e.Slot(); s != last {
			slots = append(slots, s)
			last = s
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 0, 1}, slots)
}

func TestPhaseOrderRepeatsWithoutResync(t *testing.T) {
	e, err := engine.New(script.Plan())
	require.NoError(t, err)

	var order []int
	last := -1
	const tickBudget = 70_000
	for i := 0; i < tickBudget && len(order) < 10; i++ {
		e.NextReport()
		if p := e.Phase(); p != last {
			order = append(order, p)
			last = p
		}
	}
	// Sync runs exactly once; afterwards the cycle is 1,2,3,4 forever.
	assert.Equal(t, []int{0, 1, 2, 3, 4, 1, 2, 3, 4, 1}, order)
}

func TestLaterPassesRepeatTheMenuScroll(t *testing.T) {
	// Pass n+1 of getEgg scrolls one row further than pass n: each
	// extra repetition of the [13, 15) sub-range adds the duration of
	// those two steps on top of the linear traversal.
	getEgg := findSequence(t, "getEgg")
	scroll := int(getEgg.Steps[13].Duration) + int(getEgg.Steps[14].Duration)

	e, err := engine.New(script.Plan())
	require.NoError(t, err)

	// Position at the start of the second getEgg pass (slot 1).
	const tickBudget = 70_000
	ticks := 0
	for e.Slot() != 1 && ticks < tickBudget {
		e.NextReport()
		ticks++
	}
	require.Equal(t, 1, e.Slot())
	// Finish the echo tail of the phase that bumped the slot.
	for e.Echoing() {
		e.NextReport()
	}
	require.Equal(t, 1, e.Phase())

	pass := 0
	for e.Phase() == 1 || e.Echoing() {
		e.NextReport()
		pass++
	}
	assert.Equal(t, getEgg.Ticks()+scroll, pass)
}
