// Package script holds the compiled-in egg-collection procedure: the
// step tables and the phase plan that chains them. The tables are the
// only configuration surface of the whole program and are fixed at
// build time.
package script

import (
	"github.com/hatchbot/hatchbot/device/pokken"
	"github.com/hatchbot/hatchbot/engine"
)

const (
	// buttonDuration is how many ticks a plain button tap is held.
	buttonDuration = 10

	// SlotCycle is the number of party slots cycled through by the
	// outer repeat loop; the nth pass scrolls n rows down the menu.
	SlotCycle = 5
)

// syncController pairs the pad with the console. Without it the
// console never starts reading reports.
var syncController = engine.Sequence{
	Name: "syncController",
	Steps: []engine.Step{
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonL | pokken.ButtonR, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonL | pokken.ButtonR, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonA, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonA, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
	},
}

// recall flies the player back to the front of the nursery. Both
// trips through the cycle use it so the player always starts a pass
// from the same spot.
var recall = engine.Sequence{
	Name: "recall",
	Steps: []engine.Step{
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonX, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonA, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		// Wait for the map to pop.
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 300},
		{Buttons: 0, LX: 170, LY: pokken.StickCenter, Duration: 25},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonA, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonA, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		// Wait for the recall animation to complete.
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 300},
	},
}

// bikeBig rides a long stretch to the right; looped it hatches the
// egg while staying on the bridge.
var bikeBig = engine.Sequence{
	Name: "bikeBig",
	Steps: []engine.Step{
		{Buttons: 0, LX: pokken.StickMax, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonB, LX: pokken.StickMax, LY: pokken.StickCenter, Duration: buttonDuration},
	},
}

// bike is a short plain ride, kept for script variants that hatch on
// a smaller circuit.
var bike = engine.Sequence{
	Name: "bike",
	Steps: []engine.Step{
		{Buttons: 0, LX: pokken.StickMax, LY: pokken.StickCenter, Duration: 100},
	},
}

// breakEgg dismisses the hatch dialogue, kept for script variants.
var breakEgg = engine.Sequence{
	Name: "breakEgg",
	Steps: []engine.Step{
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonB, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
	},
}

// getEgg starts at the front of the nursery on a bike, collects an
// egg from the attendant (or not), and ends back on the bike. The
// A-A-B-A-B answer pattern is deliberate: when no egg is available it
// still ends the conversation cleanly and walks the player away. Do
// not reorder it without re-deriving both dialogue paths.
//
// Steps 13 and 14 scroll one row down the party menu; the partial
// loop over [13, 15) repeats only that scroll, once per slot already
// filled, so the rest of the sequence's one-time dialogue never
// replays.
var getEgg = engine.Sequence{
	Name: "getEgg",
	Steps: []engine.Step{
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 300},
		{Buttons: pokken.ButtonPlus, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickMin, LY: pokken.StickMin, Duration: 300},
		{Buttons: pokken.ButtonA, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonA, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		// The "new egg" jingle plays here. Long wait.
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 600},
		{Buttons: pokken.ButtonB, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 200},
		{Buttons: pokken.ButtonA, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonB, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 300},
		// Menu scroll, repeated by the partial loop.
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickMax, Duration: 25},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 75},
		{Buttons: pokken.ButtonA, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 300},
		{Buttons: pokken.ButtonA, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 200},
		{Buttons: pokken.ButtonA, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
		{Buttons: 0, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: 200},
		// Back on the bike.
		{Buttons: pokken.ButtonPlus, LX: pokken.StickCenter, LY: pokken.StickCenter, Duration: buttonDuration},
	},
}

// getEggLoopStart and getEggLoopEnd bound the menu-scroll sub-range
// of getEgg, half-open.
const (
	getEggLoopStart = 13
	getEggLoopEnd   = 15
)

// Sequences returns every published sequence, scheduled or not, in a
// stable order. Useful for inspection and export.
func Sequences() []engine.Sequence {
	return []engine.Sequence{syncController, getEgg, recall, bikeBig, bike, breakEgg}
}

// Plan returns the default schedule: sync once, then cycle forever
// through collect egg, recall, hatch on the bridge, recall. Each pass
// of the cycle scrolls one row further down the party menu (slot
// counter modulo SlotCycle), so eggs land in successive slots.
func Plan() engine.Plan {
	return engine.Plan{
		Phases: []engine.Phase{
			{Seq: syncController, Mode: engine.Once()},
			{Seq: getEgg, Mode: engine.SlotPartialLoop(getEggLoopStart, getEggLoopEnd)},
			{Seq: recall, Mode: engine.Once()},
			{Seq: bikeBig, Mode: engine.FullLoop(55)},
			{Seq: recall, Mode: engine.Once()},
		},
		Transitions: []engine.Transition{
			{Next: 1},
			{Next: 2},
			{Next: 3},
			{Next: 4},
			{Next: 1, BumpSlot: true},
		},
		SlotCycle: SlotCycle,
	}
}
