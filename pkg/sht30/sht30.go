// Package sht30 reads the Sensirion SHT30 temperature and humidity sensor
// in single-shot mode over I2C.
//
// One call to Read, ReadTemperature or ReadHumidity performs one complete
// measurement cycle: trigger command, settle delay, 6-byte frame read, CRC
// validation and conversion. There is no caching, every call reflects a
// fresh measurement.
package sht30

import (
	"fmt"
	"time"

	"envlog/pkg/i2c"
	"envlog/pkg/sensor"
)

const (
	// DefaultAddress is the 7-bit address of the SHT30 on the ENV-III unit.
	DefaultAddress = 0x44

	// DefaultDelay is the single-shot high repeatability conversion time
	// recommended by the datasheet, with headroom.
	DefaultDelay = 20 * time.Millisecond

	// single-shot measurement, high repeatability, no clock stretching
	cmdSingleShotHigh    = 0x24
	cmdSingleShotHighArg = 0x00

	regMeasurement = 0x00

	// physical operating range
	temperatureMin = -40.0
	temperatureMax = 125.0
	humidityMin    = 0.0
	humidityMax    = 100.0
)

// Config describes one sensor instance. Immutable after New.
type Config struct {
	// Bus is the I2C bus number (Raspberry Pi typically 1).
	Bus int
	// Address is the 7-bit device address, DefaultAddress if zero.
	Address uint8
	// Delay is the measurement settle time, DefaultDelay if zero.
	Delay time.Duration
	// Factory yields the bus transport, i2c.Open if nil.
	Factory i2c.Factory
}

// Device is a single SHT30 sensor.
type Device struct {
	config Config
}

var _ sensor.TemperatureHumidity = (*Device)(nil)

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

// Read returns temperature (°C) and relative humidity (%RH).
func (d *Device) Read() (float64, float64, error) {
	rawTemperature, rawHumidity, err := d.measureRaw()
	if err != nil {
		return 0, 0, err
	}
	return RawToCelsius(rawTemperature), RawToHumidity(rawHumidity), nil
}

// ReadTemperature returns the temperature in °C.
func (d *Device) ReadTemperature() (float64, error) {
	rawTemperature, _, err := d.measureRaw()
	if err != nil {
		return 0, err
	}
	return RawToCelsius(rawTemperature), nil
}

// ReadHumidity returns the relative humidity in %RH.
func (d *Device) ReadHumidity() (float64, error) {
	_, rawHumidity, err := d.measureRaw()
	if err != nil {
		return 0, err
	}
	return RawToHumidity(rawHumidity), nil
}

// measureRaw runs one measurement cycle and returns the raw channels.
// The transport handle spans trigger and read, so no other caller can
// interleave commands on the bus during the cycle, and is released on
// every exit path.
func (d *Device) measureRaw() (uint16, uint16, error) {
	bus, err := d.config.Factory(d.config.Bus)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: open bus %d: %v", sensor.ErrTransport, d.config.Bus, err)
	}
	defer func() { _ = bus.Close() }()

	if err = bus.WriteBlock(d.config.Address, cmdSingleShotHigh, []byte{cmdSingleShotHighArg}); err != nil {
		return 0, 0, fmt.Errorf("%w: trigger measurement: %v", sensor.ErrTransport, err)
	}

	// The sensor returns stale registers if read before the conversion
	// completes, the delay must fully elapse.
	time.Sleep(d.config.Delay)

	frame := make([]byte, FrameLength)
	if err = bus.ReadBlock(d.config.Address, regMeasurement, frame); err != nil {
		return 0, 0, fmt.Errorf("%w: read frame: %v", sensor.ErrTransport, err)
	}

	return ParseMeasurementFrame(frame)
}
