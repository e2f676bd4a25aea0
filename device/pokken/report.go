package pokken

import (
	"encoding/binary"
	"io"
)

// ReportSize is the fixed length of the IN report sent to the host.
const ReportSize = 8

// OutputReportSize is the fixed length of the OUT report the host may
// send back. The pad accepts it and is free to ignore the contents.
const OutputReportSize = 8

// Report is the input report the pad sends to the host once per poll.
//
// Wire format (device -> host): fixed 8 bytes, little-endian.
//
//	Bytes 0-1: Buttons (uint16 LE bitfield)
//	Byte  2:   Hat (0x00-0x07 directions, 0x08 center)
//	Bytes 3-6: LX, LY, RX, RY (0x00-0xFF, 0x80 center)
//	Byte  7:   vendor spec, always 0x00
type Report struct {
	Buttons Button
	Hat     Hat
	LX      uint8
	LY      uint8
	RX      uint8
	RY      uint8
}

// Neutral returns the report an untouched pad produces: no buttons,
// hat centered, all axes at rest.
func Neutral() Report {
	return Report{
		Hat: HatCenter,
		LX:  StickCenter,
		LY:  StickCenter,
		RX:  StickCenter,
		RY:  StickCenter,
	}
}

// BuildReport encodes the report into the 8-byte wire format.
func (r Report) BuildReport() []byte {
	b := make([]byte, ReportSize)
	binary.LittleEndian.PutUint16(b[0:2], uint16(r.Buttons))
	b[2] = uint8(r.Hat)
	b[3] = r.LX
	b[4] = r.LY
	b[5] = r.RX
	b[6] = r.RY
	b[7] = 0x00
	return b
}

// MarshalBinary encodes the report to the fixed 8-byte wire format.
func (r Report) MarshalBinary() ([]byte, error) {
	return r.BuildReport(), nil
}

// UnmarshalBinary decodes a report from the fixed 8-byte wire format.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) < ReportSize {
		return io.ErrUnexpectedEOF
	}
	r.Buttons = Button(binary.LittleEndian.Uint16(data[0:2]))
	r.Hat = Hat(data[2])
	r.LX = data[3]
	r.LY = data[4]
	r.RX = data[5]
	r.RY = data[6]
	return nil
}

// OutputReport is the raw OUT report received from the host. Nothing
// in the playback engine reacts to it; it exists so the transport can
// drain the OUT endpoint without inventing a second buffer type.
type OutputReport [OutputReportSize]byte

// UnmarshalBinary copies the fixed-size OUT payload.
func (o *OutputReport) UnmarshalBinary(data []byte) error {
	if len(data) < OutputReportSize {
		return io.ErrUnexpectedEOF
	}
	copy(o[:], data[:OutputReportSize])
	return nil
}
