package qmp6988

import (
	"fmt"

	"envlog/pkg/sensor"
)

// FrameLength is the size of the PRESS_TXD2..TEMP_TXD0 data block:
// a 24-bit pressure channel followed by a 24-bit temperature channel.
const FrameLength = 6

// ParseMeasurementFrame returns the raw pressure and temperature channels
// of a data block. The channels are big-endian 24-bit values; the QMP6988
// publishes no per-channel checksum, so only the length is validated.
func ParseMeasurementFrame(frame []byte) (uint32, uint32, error) {
	if len(frame) != FrameLength {
		return 0, 0, fmt.Errorf("%w: got %d bytes, want %d", sensor.ErrInvalidSize, len(frame), FrameLength)
	}

	rawPressure := uint32(frame[0])<<16 | uint32(frame[1])<<8 | uint32(frame[2])
	rawTemperature := uint32(frame[3])<<16 | uint32(frame[4])<<8 | uint32(frame[5])
	return rawPressure, rawTemperature, nil
}
