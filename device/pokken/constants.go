package pokken

// Button is the 16-bit button bitfield of the Pokken Tournament Pro Pad.
// Multiple buttons may be set in the same report.
type Button uint16

const (
	ButtonY       Button = 0x0001
	ButtonB       Button = 0x0002
	ButtonA       Button = 0x0004
	ButtonX       Button = 0x0008
	ButtonL       Button = 0x0010
	ButtonR       Button = 0x0020
	ButtonZL      Button = 0x0040
	ButtonZR      Button = 0x0080
	ButtonMinus   Button = 0x0100
	ButtonPlus    Button = 0x0200
	ButtonLClick  Button = 0x0400
	ButtonRClick  Button = 0x0800
	ButtonHome    Button = 0x1000
	ButtonCapture Button = 0x2000
)

// Hat is the directional-pad field. Values 0x00-0x07 are the eight
// directions clockwise from top; HatCenter means released.
type Hat uint8

const (
	HatTop         Hat = 0x00
	HatTopRight    Hat = 0x01
	HatRight       Hat = 0x02
	HatBottomRight Hat = 0x03
	HatBottom      Hat = 0x04
	HatBottomLeft  Hat = 0x05
	HatLeft        Hat = 0x06
	HatTopLeft     Hat = 0x07
	HatCenter      Hat = 0x08
)

// Analog axis range. All four axes are unsigned 8-bit with the stick
// at rest reading StickCenter.
const (
	StickMin    uint8 = 0x00
	StickCenter uint8 = 0x80
	StickMax    uint8 = 0xFF
)
