package transport

import (
	"fmt"
	"os"

	"github.com/hatchbot/hatchbot/device/pokken"
)

// Gadget streams reports through a Linux USB gadget HID function
// character device (/dev/hidgN). Descriptor setup is the kernel
// gadget's job; by the time the device node exists the host already
// sees a Pokken pad and this side only exchanges fixed-size reports.
type Gadget struct {
	f *os.File
}

// OpenGadget opens the hidg character device read-write.
func OpenGadget(path string) (*Gadget, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open gadget device %s: %w", path, err)
	}
	return &Gadget{f: f}, nil
}

func (g *Gadget) WriteReport(r pokken.Report) error {
	if _, err := g.f.Write(r.BuildReport()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (g *Gadget) ReadOutput(buf []byte) (int, error) {
	return g.f.Read(buf)
}

func (g *Gadget) Close() error {
	return g.f.Close()
}
