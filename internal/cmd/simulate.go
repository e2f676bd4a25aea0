package cmd

import (
	"fmt"
	"log/slog"

	"github.com/hatchbot/hatchbot/engine"
	"github.com/hatchbot/hatchbot/script"
)

type Simulate struct {
	Ticks int `help:"Number of poll ticks to simulate" default:"340" env:"HATCHBOT_TICKS"`
}

// Run plays the script with no hardware attached, logging every newly
// synthesized report and every phase transition. Echo replay ticks
// are counted but not logged; the default tick count covers exactly
// the controller-sync phase.
func (s *Simulate) Run(logger *slog.Logger) error {
	eng, err := engine.New(script.Plan())
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	lastPhase := eng.Phase()
	synthesized := 0
	for tick := 0; tick < s.Ticks; tick++ {
		echoed := eng.Echoing()
		rep := eng.NextReport()
		if echoed {
			continue
		}
		synthesized++
		logger.Info("report",
			"tick", tick,
			"buttons", fmt.Sprintf("%#04x", uint16(rep.Buttons)),
			"lx", rep.LX, "ly", rep.LY)
		if p := eng.Phase(); p != lastPhase {
			logger.Info("phase transition", "phase", p, "slot", eng.Slot())
			lastPhase = p
		}
	}

	logger.Info("simulation finished",
		"ticks", s.Ticks, "steps", synthesized, "phase", eng.Phase(), "slot", eng.Slot())
	return nil
}
