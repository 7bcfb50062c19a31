package qmp6988

import (
	"math/rand"
	"time"

	"envlog/pkg/sensor"
)

// FakeConfig describes the simulated distribution of a Fake.
// Zero fields get the defaults below; a zero Seed seeds from the clock.
type FakeConfig struct {
	Pressure         float64 // mean Pa, default 101325.0
	PressureSigma    float64 // default 50.0
	Temperature      float64 // mean °C, default 25.0
	TemperatureSigma float64 // default 0.2
	Seed             int64
}

// Fake is a statistically simulated QMP6988 for use without hardware.
// Each accessor draws one independent Gaussian sample per channel and
// clamps it to the sensor's physical range. It never fails.
//
// Fake is not safe for concurrent use, matching the real driver's
// single-cycle-at-a-time model.
type Fake struct {
	config FakeConfig
	rng    *rand.Rand
}

var _ sensor.PressureTemperature = (*Fake)(nil)

// NewFake returns a simulated sensor for the given distribution.
func NewFake(config FakeConfig) *Fake {
	if config.Pressure == 0 {
		config.Pressure = 101325.0
	}
	if config.PressureSigma == 0 {
		config.PressureSigma = 50.0
	}
	if config.Temperature == 0 {
		config.Temperature = 25.0
	}
	if config.TemperatureSigma == 0 {
		config.TemperatureSigma = 0.2
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
	return f.randPressure(), f.randTemperature(), nil
}

func (f *Fake) ReadPressure() (float64, error) {
	return f.randPressure(), nil
}

func (f *Fake) ReadTemperature() (float64, error) {
	return f.randTemperature(), nil
}

func (f *Fake) randPressure() float64 {
	p := f.rng.NormFloat64()*f.config.PressureSigma + f.config.Pressure
	return sensor.Clamp(p, pressureMin, pressureMax)
}

func (f *Fake) randTemperature() float64 {
	t := f.rng.NormFloat64()*f.config.TemperatureSigma + f.config.Temperature
	return sensor.Clamp(t, temperatureMin, temperatureMax)
}
