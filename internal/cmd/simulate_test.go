package cmd

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulateRunsDefaultTicks(t *testing.T) {
	s := &Simulate{Ticks: 340}
	assert.NoError(t, s.Run(slog.New(slog.NewTextHandler(io.Discard, nil))))
}
