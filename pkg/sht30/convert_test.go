package sht30

import (
	"math"
	"testing"
)

func TestRawToCelsius(t *testing.T) {
	tests := []struct {
		raw  uint16
		want float64
	}{
		{0, -45.0},
		{65535, 130.0},
		{0x61A8, -45 + 175*float64(0x61A8)/65535}, // 21.758...
	}

	for _, tt := range tests {
		if got := RawToCelsius(tt.raw); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RawToCelsius(%d) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestRawToHumidity(t *testing.T) {
	tests := []struct {
		raw  uint16
		want float64
	}{
		{0, 0.0},
		{65535, 100.0},
		{0x7CB4, 100 * float64(0x7CB4) / 65535}, // 48.712...
	}

	for _, tt := range tests {
		if got := RawToHumidity(tt.raw); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RawToHumidity(%d) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
