package sht30

import (
	"math"
	"testing"
)

func TestFakeDistribution(t *testing.T) {
	fake := NewFake(FakeConfig{Temperature: 25.0, TemperatureSigma: 0.2, Seed: 1})

	const n = 10000
	var sum float64
	for i := 0; i < n; i++ {
		v, err := fake.ReadTemperature()
		if err != nil {
			t.Fatalf("ReadTemperature() unexpected error: %v", err)
		}
		if v < temperatureMin || v > temperatureMax {
			t.Fatalf("ReadTemperature() = %v, outside [%v, %v]", v, temperatureMin, temperatureMax)
		}
		sum += v
	}

	if mean := sum / n; math.Abs(mean-25.0) > 0.02 {
		t.Errorf("sample mean = %v, want 25.0 ± 0.02", mean)
	}
}

func TestFakeClamp(t *testing.T) {
	// a distribution far outside the operating range must still be clamped
	fake := NewFake(FakeConfig{Temperature: 500, TemperatureSigma: 100, Humidity: 200, HumiditySigma: 100, Seed: 1})

	for i := 0; i < 1000; i++ {
		temperature, humidity, err := fake.Read()
		if err != nil {
			t.Fatalf("Read() unexpected error: %v", err)
		}
		if temperature < temperatureMin || temperature > temperatureMax {
			t.Fatalf("temperature %v outside [%v, %v]", temperature, temperatureMin, temperatureMax)
		}
		if humidity < humidityMin || humidity > humidityMax {
			t.Fatalf("humidity %v outside [%v, %v]", humidity, humidityMin, humidityMax)
		}
	}
}

func TestFakeReproducible(t *testing.T) {
	a := NewFake(FakeConfig{Seed: 42})
	b := NewFake(FakeConfig{Seed: 42})

	for i := 0; i < 100; i++ {
		ta, ha, _ := a.Read()
		tb, hb, _ := b.Read()
		if ta != tb || ha != hb {
			t.Fatalf("draw %d differs between equally seeded fakes: (%v, %v) != (%v, %v)", i, ta, ha, tb, hb)
		}
	}
}

func TestFakeIdentity(t *testing.T) {
	fake := NewFake(FakeConfig{Seed: 1})

	if fake.BusNumber() != -1 {
		t.Errorf("BusNumber() = %d, want -1", fake.BusNumber())
	}
	if fake.Address() != DefaultAddress {
		t.Errorf("Address() = 0x%02X, want 0x%02X", fake.Address(), DefaultAddress)
	}
}
