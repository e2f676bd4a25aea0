package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hatchbot/hatchbot/engine"
	"github.com/hatchbot/hatchbot/script"
	"gopkg.in/yaml.v3"
)

type Export struct {
	Out string `help:"Output file (default: stdout)" env:"HATCHBOT_EXPORT_OUT"`
}

// scriptDoc is the YAML shape of the compiled-in script. Export is
// read-only documentation: the tables stay compiled in and nothing
// reads this document back.
type scriptDoc struct {
	SlotCycle int           `yaml:"slotCycle"`
	Sequences []sequenceDoc `yaml:"sequences"`
	Phases    []phaseDoc    `yaml:"phases"`
}

type sequenceDoc struct {
	Name  string    `yaml:"name"`
	Ticks int       `yaml:"ticks"`
	Steps []stepDoc `yaml:"steps"`
}

type stepDoc struct {
	Buttons  uint16 `yaml:"buttons"`
	LX       uint8  `yaml:"lx"`
	LY       uint8  `yaml:"ly"`
	Duration uint16 `yaml:"duration"`
}

type phaseDoc struct {
	Sequence string `yaml:"sequence"`
	Mode     string `yaml:"mode"`
	Reps     int    `yaml:"reps,omitempty"`
	Loop     []int  `yaml:"loop,flow,omitempty"`
	SlotReps bool   `yaml:"slotReps,omitempty"`
	Next     int    `yaml:"next"`
	BumpSlot bool   `yaml:"bumpSlot,omitempty"`
}

// Run writes the built-in script as YAML.
func (e *Export) Run(logger *slog.Logger) error {
	doc := buildDoc(script.Sequences(), script.Plan())

	var w io.Writer = os.Stdout
	if e.Out != "" {
		f, err := os.Create(e.Out)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode script: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if e.Out != "" {
		logger.Info("script exported", "file", e.Out)
	}
	return nil
}

func buildDoc(seqs []engine.Sequence, plan engine.Plan) scriptDoc {
	doc := scriptDoc{SlotCycle: plan.SlotCycle}

	for _, s := range seqs {
		sd := sequenceDoc{Name: s.Name, Ticks: s.Ticks()}
		for _, st := range s.Steps {
			sd.Steps = append(sd.Steps, stepDoc{
				Buttons:  uint16(st.Buttons),
				LX:       st.LX,
				LY:       st.LY,
				Duration: st.Duration,
			})
		}
		doc.Sequences = append(doc.Sequences, sd)
	}

	for i, ph := range plan.Phases {
		pd := phaseDoc{
			Sequence: ph.Seq.Name,
			Mode:     ph.Mode.Kind.String(),
			Next:     plan.Transitions[i].Next,
			BumpSlot: plan.Transitions[i].BumpSlot,
		}
		switch ph.Mode.Kind {
		case engine.KindFullLoop:
			pd.Reps = ph.Mode.Reps
		case engine.KindPartialLoop:
			pd.Loop = []int{ph.Mode.LoopStart, ph.Mode.LoopEnd}
			if ph.Mode.RepsFromSlot {
				pd.SlotReps = true
			} else {
				pd.Reps = ph.Mode.Reps
			}
		}
		doc.Phases = append(doc.Phases, pd)
	}

	return doc
}
