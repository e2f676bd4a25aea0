package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hatchbot/hatchbot/engine"
	"github.com/hatchbot/hatchbot/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildDoc(t *testing.T) {
	plan := script.Plan()
	doc := buildDoc(script.Sequences(), plan)

	assert.Equal(t, script.SlotCycle, doc.SlotCycle)
	require.Len(t, doc.Phases, len(plan.Phases))

	assert.Equal(t, "syncController", doc.Phases[0].Sequence)
	assert.Equal(t, engine.KindOnce.String(), doc.Phases[0].Mode)

	getEgg := doc.Phases[1]
	assert.Equal(t, "getEgg", getEgg.Sequence)
	assert.Equal(t, engine.KindPartialLoop.String(), getEgg.Mode)
	assert.Equal(t, []int{13, 15}, getEgg.Loop)
	assert.True(t, getEgg.SlotReps)

	last := doc.Phases[len(doc.Phases)-1]
	assert.Equal(t, 1, last.Next)
	assert.True(t, last.BumpSlot)
}

func TestExportWritesYAML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "script.yaml")
	e := &Export{Out: out}
	require.NoError(t, e.Run(slog.New(slog.NewTextHandler(io.Discard, nil))))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc scriptDoc
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, script.SlotCycle, doc.SlotCycle)
	assert.Len(t, doc.Sequences, len(script.Sequences()))
}
