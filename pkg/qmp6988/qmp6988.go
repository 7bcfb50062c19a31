// Package qmp6988 reads the QST QMP6988 barometric pressure sensor of the
// ENV-III unit in forced mode over I2C.
//
// The measurement cycle mirrors the SHT30 driver: trigger a one-shot
// conversion, wait out the conversion time, read the 6-byte data frame and
// convert. Every accessor call runs a full cycle.
package qmp6988

import (
	"fmt"
	"time"

	"envlog/pkg/i2c"
	"envlog/pkg/sensor"
)

const (
	// DefaultAddress is the 7-bit address of the QMP6988 on the ENV-III unit.
	DefaultAddress = 0x70

	// DefaultDelay covers a 1x/1x oversampled forced conversion.
	DefaultDelay = 10 * time.Millisecond

	// CTRL_MEAS: pressure 1x, temperature 1x, forced mode
	regCtrlMeas    = 0xF4
	ctrlMeasForced = 0x25

	// PRESS_TXD2, start of the pressure/temperature data block
	regData = 0xF7

	// physical operating range
	pressureMin    = 30000.0
	pressureMax    = 110000.0
	temperatureMin = -40.0
	temperatureMax = 85.0
)

// Config describes one sensor instance. Immutable after New.
type Config struct {
	// Bus is the I2C bus number.
	Bus int
	// Address is the 7-bit device address, DefaultAddress if zero.
	Address uint8
	// Delay is the conversion wait time, DefaultDelay if zero.
	Delay time.Duration
	// Factory yields the bus transport, i2c.Open if nil.
	Factory i2c.Factory
}

// Device is a single QMP6988 sensor.
type Device struct {
	config Config
}

var _ sensor.PressureTemperature = (*Device)(nil)

// New returns a Device for the given configuration.
func New(config Config) *Device {
	if config.Address == 0 {
		config.Address = DefaultAddress
	}
	if config.Delay <= 0 {
		config.Delay = DefaultDelay
	}
	if config.Factory == nil {
		config.Factory = i2c.Open
	}
	return &Device{config: config}
}

// BusNumber is the I2C bus the device is attached to.
func (d *Device) BusNumber() int {
	return d.config.Bus
}

// Address is the 7-bit device address.
func (d *Device) Address() uint8 {
	return d.config.Address
}

// Read returns pressure (Pa) and temperature (°C).
func (d *Device) Read() (float64, float64, error) {
	rawPressure, rawTemperature, err := d.measureRaw()
	if err != nil {
		return 0, 0, err
	}
	return RawToPascal(rawPressure, rawTemperature), RawToCelsius(rawTemperature), nil
}

// ReadPressure returns the pressure in Pa.
func (d *Device) ReadPressure() (float64, error) {
	rawPressure, rawTemperature, err := d.measureRaw()
	if err != nil {
		return 0, err
	}
	return RawToPascal(rawPressure, rawTemperature), nil
}

// ReadTemperature returns the temperature in °C.
func (d *Device) ReadTemperature() (float64, error) {
	_, rawTemperature, err := d.measureRaw()
	if err != nil {
		return 0, err
	}
	return RawToCelsius(rawTemperature), nil
}

// measureRaw runs one forced conversion. The transport handle spans trigger
// and read and is released on every exit path.
func (d *Device) measureRaw() (uint32, uint32, error) {
	bus, err := d.config.Factory(d.config.Bus)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: open bus %d: %v", sensor.ErrTransport, d.config.Bus, err)
	}
	defer func() { _ = bus.Close() }()

	if err = bus.WriteBlock(d.config.Address, regCtrlMeas, []byte{ctrlMeasForced}); err != nil {
		return 0, 0, fmt.Errorf("%w: trigger conversion: %v", sensor.ErrTransport, err)
	}

	time.Sleep(d.config.Delay)

	frame := make([]byte, FrameLength)
	if err = bus.ReadBlock(d.config.Address, regData, frame); err != nil {
		return 0, 0, fmt.Errorf("%w: read frame: %v", sensor.ErrTransport, err)
	}

	return ParseMeasurementFrame(frame)
}
