package sht30

import (
	"math/rand"
	"time"

	"envlog/pkg/sensor"
)

// FakeConfig describes the simulated distribution of a Fake.
// Zero fields get the defaults below; a zero Seed seeds from the clock.
type FakeConfig struct {
	Temperature      float64 // mean °C, default 25.0
	TemperatureSigma float64 // default 0.2
	Humidity         float64 // mean %RH, default 50.0
	HumiditySigma    float64 // default 1.0
	Seed             int64
}

// Fake is a statistically simulated SHT30 for use without hardware.
// Each accessor draws one independent Gaussian sample per channel and
// clamps it to the sensor's physical range. It never fails.
//
// Fake is not safe for concurrent use, matching the real driver's
// single-cycle-at-a-time model.
type Fake struct {
	config FakeConfig
	rng    *rand.Rand
}

var _ sensor.TemperatureHumidity = (*Fake)(nil)

// NewFake returns a simulated sensor for the given distribution.
func NewFake(config FakeConfig) *Fake {
	if config.Temperature == 0 {
		config.Temperature = 25.0
	}
	if config.TemperatureSigma == 0 {
		config.TemperatureSigma = 0.2
	}
	if config.Humidity == 0 {
		config.Humidity = 50.0
	}
	if config.HumiditySigma == 0 {
		config.HumiditySigma = 1.0
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	return &Fake{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// BusNumber is -1, the simulated sensor is not on a physical bus.
func (f *Fake) BusNumber() int {
	return -1
}

// Address is the family default address.
func (f *Fake) Address() uint8 {
	return DefaultAddress
}

func (f *Fake) Read() (float64, float64, error) {
	return f.randTemperature(), f.randHumidity(), nil
}

func (f *Fake) ReadTemperature() (float64, error) {
	return f.randTemperature(), nil
}

func (f *Fake) ReadHumidity() (float64, error) {
	return f.randHumidity(), nil
}

func (f *Fake) randTemperature() float64 {
	t := f.rng.NormFloat64()*f.config.TemperatureSigma + f.config.Temperature
	return sensor.Clamp(t, temperatureMin, temperatureMax)
}

func (f *Fake) randHumidity() float64 {
	h := f.rng.NormFloat64()*f.config.HumiditySigma + f.config.Humidity
	return sensor.Clamp(h, humidityMin, humidityMax)
}
