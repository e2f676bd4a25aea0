package pokken_test

import (
	"testing"

	"github.com/hatchbot/hatchbot/device/pokken"
	"github.com/stretchr/testify/assert"
)

func TestBuildReport(t *testing.T) {
	type testCase struct {
		name           string
		report         pokken.Report
		expectedReport []byte
	}

	cases := []testCase{
		{
			name:           "neutral",
			report:         pokken.Neutral(),
			expectedReport: []byte{0x00, 0x00, 0x08, 0x80, 0x80, 0x80, 0x80, 0x00},
		},
		{
			name: "l+r pressed",
			report: pokken.Report{
				Buttons: pokken.ButtonL | pokken.ButtonR,
				Hat:     pokken.HatCenter,
				LX:      pokken.StickCenter,
				LY:      pokken.StickCenter,
				RX:      pokken.StickCenter,
				RY:      pokken.StickCenter,
			},
			expectedReport: []byte{0x30, 0x00, 0x08, 0x80, 0x80, 0x80, 0x80, 0x00},
		},
		{
			name: "home and capture use the high byte",
			report: pokken.Report{
				Buttons: pokken.ButtonHome | pokken.ButtonCapture,
				Hat:     pokken.HatCenter,
				LX:      pokken.StickCenter,
				LY:      pokken.StickCenter,
				RX:      pokken.StickCenter,
				RY:      pokken.StickCenter,
			},
			expectedReport: []byte{0x00, 0x30, 0x08, 0x80, 0x80, 0x80, 0x80, 0x00},
		},
		{
			name: "left stick full deflection",
			report: pokken.Report{
				Hat: pokken.HatCenter,
				LX:  pokken.StickMax,
				LY:  pokken.StickMin,
				RX:  pokken.StickCenter,
				RY:  pokken.StickCenter,
			},
			expectedReport: []byte{0x00, 0x00, 0x08, 0xFF, 0x00, 0x80, 0x80, 0x00},
		},
		{
			name: "hat direction",
			report: pokken.Report{
				Hat: pokken.HatBottomLeft,
				LX:  pokken.StickCenter,
				LY:  pokken.StickCenter,
				RX:  pokken.StickCenter,
				RY:  pokken.StickCenter,
			},
			expectedReport: []byte{0x00, 0x00, 0x05, 0x80, 0x80, 0x80, 0x80, 0x00},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, tc.expectedReport, pokken.ReportSize)
			assert.Equal(t, tc.expectedReport, tc.report.BuildReport())

			var decoded pokken.Report
			if assert.NoError(t, decoded.UnmarshalBinary(tc.expectedReport)) {
				assert.Equal(t, tc.report, decoded)
			}
		})
	}
}

func TestUnmarshalShortBuffer(t *testing.T) {
	var r pokken.Report
	assert.Error(t, r.UnmarshalBinary([]byte{0x00, 0x00, 0x08}))

	var o pokken.OutputReport
	assert.Error(t, o.UnmarshalBinary([]byte{0x01}))
}
