package sht30

import (
	"encoding/binary"
	"fmt"

	"envlog/pkg/sensor"
)

// FrameLength is the size of a single-shot measurement frame:
// 2-byte temperature channel, CRC, 2-byte humidity channel, CRC.
const FrameLength = 6

// ParseMeasurementFrame validates a measurement frame and returns the raw
// temperature and humidity channels. Each 16-bit big-endian channel is
// guarded by its own CRC-8 (polynomial 0x31, initial value 0xFF, MSB first,
// no final XOR). A frame with a wrong length or a mismatch on either
// checksum is rejected as a whole.
func ParseMeasurementFrame(frame []byte) (uint16, uint16, error) {
	if len(frame) != FrameLength {
		return 0, 0, fmt.Errorf("%w: got %d bytes, want %d", sensor.ErrInvalidSize, len(frame), FrameLength)
	}

	if c := crc8(frame[0:2]); c != frame[2] {
		return 0, 0, fmt.Errorf("%w: temperature channel: frame 0x%02X, computed 0x%02X", sensor.ErrChecksum, frame[2], c)
	}
	if c := crc8(frame[3:5]); c != frame[5] {
		return 0, 0, fmt.Errorf("%w: humidity channel: frame 0x%02X, computed 0x%02X", sensor.ErrChecksum, frame[5], c)
	}

	return binary.BigEndian.Uint16(frame[0:2]), binary.BigEndian.Uint16(frame[3:5]), nil
}

// crc8 is the Sensirion frame checksum.
func crc8(data []byte) uint8 {
	crc := uint8(0xFF)
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x31
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
