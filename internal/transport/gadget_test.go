package transport_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hatchbot/hatchbot/device/pokken"
	"github.com/hatchbot/hatchbot/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGadgetWritesWireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hidg0")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	g, err := transport.OpenGadget(path)
	require.NoError(t, err)

	first := pokken.Neutral()
	second := pokken.Report{
		Buttons: pokken.ButtonL | pokken.ButtonR,
		Hat:     pokken.HatCenter,
		LX:      pokken.StickCenter,
		LY:      pokken.StickCenter,
		RX:      pokken.StickCenter,
		RY:      pokken.StickCenter,
	}
	require.NoError(t, g.WriteReport(first))
	require.NoError(t, g.WriteReport(second))
	require.NoError(t, g.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want := append(first.BuildReport(), second.BuildReport()...)
	assert.Equal(t, want, got)
}

func TestOpenGadgetMissingDevice(t *testing.T) {
	_, err := transport.OpenGadget(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
