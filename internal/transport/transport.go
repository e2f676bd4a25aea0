// Package transport carries synthesized reports to the host. The
// poll loop owns the tick timing; a Transport only moves bytes.
package transport

import "github.com/hatchbot/hatchbot/device/pokken"

// Transport is a report sink plus a best-effort source of host OUT
// reports. Implementations are used from a single poll loop and a
// single drain goroutine; WriteReport and ReadOutput must not share
// state beyond the underlying descriptor.
type Transport interface {
	// WriteReport sends one marshaled input report to the host side.
	WriteReport(r pokken.Report) error

	// ReadOutput blocks until the host sends an OUT report, filling
	// buf. The engine ignores the payload; draining just keeps the
	// host side from stalling.
	ReadOutput(buf []byte) (int, error)

	Close() error
}
