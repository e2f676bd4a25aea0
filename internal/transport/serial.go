package transport

import (
	"fmt"

	"github.com/hatchbot/hatchbot/device/pokken"
	"github.com/tarm/serial"
)

// Serial streams reports over a UART to a bridge MCU that forwards
// them on its own USB port, one fixed 8-byte frame per tick. The
// bridge firmware resynchronizes on frame size, so no extra framing
// bytes are needed.
type Serial struct {
	port *serial.Port
}

// OpenSerial opens the serial port at the given baud rate.
func OpenSerial(device string, baud int) (*Serial, error) {
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", device, err)
	}
	return &Serial{port: port}, nil
}

func (s *Serial) WriteReport(r pokken.Report) error {
	if _, err := s.port.Write(r.BuildReport()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (s *Serial) ReadOutput(buf []byte) (int, error) {
	return s.port.Read(buf)
}

func (s *Serial) Close() error {
	return s.port.Close()
}
