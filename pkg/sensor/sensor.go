// Package sensor holds the capability contracts and error kinds shared by
// all measuring devices, so callers stay independent of the concrete driver.
package sensor

import "errors"

var (
	// ErrTransport indicates the underlying I2C transfer failed
	// (device absent, NACK, bus contention). The original cause is attached.
	ErrTransport = errors.New("i2c transport failed")
	// ErrInvalidSize indicates a measurement frame of unexpected length.
	ErrInvalidSize = errors.New("invalid frame size")
	// ErrChecksum indicates a frame channel whose CRC does not match.
	ErrChecksum = errors.New("crc mismatch")
)

// Sensor identifies an attached measuring device.
type Sensor interface {
	// BusNumber is the I2C bus the device is attached to.
	// Simulated backends report -1.
	BusNumber() int
	// Address is the 7-bit device address.
	Address() uint8
}

// TemperatureHumidity is implemented by temperature/humidity sensors.
// Every accessor runs one full measurement cycle, so each call reflects
// a fresh measurement.
type TemperatureHumidity interface {
	Sensor
	// Read returns temperature (°C) and relative humidity (%RH).
	Read() (temperature, humidity float64, err error)
	ReadTemperature() (float64, error)
	ReadHumidity() (float64, error)
}

// PressureTemperature is implemented by barometric sensors.
type PressureTemperature interface {
	Sensor
	// Read returns pressure (Pa) and temperature (°C).
	Read() (pressure, temperature float64, err error)
	ReadPressure() (float64, error)
	ReadTemperature() (float64, error)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
