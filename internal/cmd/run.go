package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hatchbot/hatchbot/device/pokken"
	"github.com/hatchbot/hatchbot/engine"
	"github.com/hatchbot/hatchbot/internal/log"
	"github.com/hatchbot/hatchbot/internal/transport"
	"github.com/hatchbot/hatchbot/script"
)

type Run struct {
	Transport string        `help:"Report transport: gadget or serial" enum:"gadget,serial" default:"gadget" env:"HATCHBOT_TRANSPORT"`
	Device    string        `help:"Gadget char device or serial port" default:"/dev/hidg0" env:"HATCHBOT_DEVICE"`
	Baud      int           `help:"Serial baud rate (serial transport only)" default:"1000000" env:"HATCHBOT_BAUD"`
	Interval  time.Duration `help:"Poll interval between reports" default:"8ms" env:"HATCHBOT_INTERVAL"`
}

// Run is called by kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng, err := engine.New(script.Plan())
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	tr, err := r.openTransport()
	if err != nil {
		return err
	}
	defer tr.Close()

	logger.Info("starting playback",
		"transport", r.Transport, "device", r.Device, "interval", r.Interval)

	// Drain host OUT reports so the host side never stalls; the
	// script does not react to them.
	go drainOutput(tr, logger)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	lastPhase := eng.Phase()
	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping playback")
			return nil
		case <-ticker.C:
			rep := eng.NextReport()
			if err := tr.WriteReport(rep); err != nil {
				return fmt.Errorf("transport: %w", err)
			}
			logger.Log(ctx, log.LevelTrace, "report sent",
				"buttons", fmt.Sprintf("%#04x", uint16(rep.Buttons)), "lx", rep.LX, "ly", rep.LY)
			if p := eng.Phase(); p != lastPhase {
				logger.Info("phase transition", "phase", p, "slot", eng.Slot())
				lastPhase = p
			}
		}
	}
}

func (r *Run) openTransport() (transport.Transport, error) {
	switch r.Transport {
	case "serial":
		return transport.OpenSerial(r.Device, r.Baud)
	default:
		return transport.OpenGadget(r.Device)
	}
}

func drainOutput(tr transport.Transport, logger *slog.Logger) {
	buf := make([]byte, pokken.OutputReportSize)
	for {
		n, err := tr.ReadOutput(buf)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
				logger.Debug("output drain stopped", "error", err)
			}
			return
		}
		logger.Debug("host output report", "len", n)
	}
}
