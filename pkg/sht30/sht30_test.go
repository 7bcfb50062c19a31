package sht30

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"envlog/pkg/i2c"
	"envlog/pkg/sensor"
)

// Compile-time check.
var _ i2c.Transport = (*scriptedTransport)(nil)

// scriptedTransport records the operations of one measurement cycle and
// answers reads with a canned frame.
type scriptedTransport struct {
	frame    []byte
	writeErr error
	readErr  error

	ops    []string
	closed int
}

func (s *scriptedTransport) WriteBlock(addr, reg uint8, data []byte) error {
	s.ops = append(s.ops, fmt.Sprintf("write %02X %02X % X", addr, reg, data))
	return s.writeErr
}

func (s *scriptedTransport) ReadBlock(addr, reg uint8, buf []byte) error {
	s.ops = append(s.ops, fmt.Sprintf("read %02X %02X %d", addr, reg, len(buf)))
	if s.readErr != nil {
		return s.readErr
	}
	copy(buf, s.frame)
	return nil
}

func (s *scriptedTransport) Close() error {
	s.closed++
	return nil
}

func factoryFor(s *scriptedTransport) i2c.Factory {
	return func(bus int) (i2c.Transport, error) {
		return s, nil
	}
}

func TestRead(t *testing.T) {
	transport := &scriptedTransport{frame: []byte{0x61, 0xA8, 0x65, 0x7C, 0xB4, 0x75}}
	dev := New(Config{Bus: 1, Delay: 1, Factory: factoryFor(transport)})

	temperature, humidity, err := dev.Read()
	if err != nil {
		t.Fatalf("Read() unexpected error: %v", err)
	}

	wantTemperature := -45 + 175*float64(0x61A8)/65535
	wantHumidity := 100 * float64(0x7CB4) / 65535
	if math.Abs(temperature-wantTemperature) > 1e-9 || math.Abs(humidity-wantHumidity) > 1e-9 {
		t.Errorf("Read() = (%v, %v), want (%v, %v)", temperature, humidity, wantTemperature, wantHumidity)
	}

	// trigger write then frame read, exactly once each, then release
	wantOps := []string{"write 44 24 00", "read 44 00 6"}
	if len(transport.ops) != len(wantOps) {
		t.Fatalf("transport ops = %v, want %v", transport.ops, wantOps)
	}
	for i, op := range wantOps {
		if transport.ops[i] != op {
			t.Errorf("transport op %d = %q, want %q", i, transport.ops[i], op)
		}
	}
	if transport.closed != 1 {
		t.Errorf("transport closed %d times, want 1", transport.closed)
	}
}

func TestReadSingleChannels(t *testing.T) {
	transport := &scriptedTransport{frame: []byte{0x61, 0xA8, 0x65, 0x7C, 0xB4, 0x75}}
	dev := New(Config{Bus: 1, Delay: 1, Factory: factoryFor(transport)})

	temperature, err := dev.ReadTemperature()
	if err != nil {
		t.Fatalf("ReadTemperature() unexpected error: %v", err)
	}
	if want := -45 + 175*float64(0x61A8)/65535; math.Abs(temperature-want) > 1e-9 {
		t.Errorf("ReadTemperature() = %v, want %v", temperature, want)
	}

	humidity, err := dev.ReadHumidity()
	if err != nil {
		t.Fatalf("ReadHumidity() unexpected error: %v", err)
	}
	if want := 100 * float64(0x7CB4) / 65535; math.Abs(humidity-want) > 1e-9 {
		t.Errorf("ReadHumidity() = %v, want %v", humidity, want)
	}

	// each accessor runs a full cycle of its own
	if got := len(transport.ops); got != 4 {
		t.Errorf("transport saw %d ops, want 4 (two full cycles): %v", got, transport.ops)
	}
	if transport.closed != 2 {
		t.Errorf("transport closed %d times, want 2", transport.closed)
	}
}

func TestReadTriggerFailure(t *testing.T) {
	transport := &scriptedTransport{writeErr: errors.New("remote I/O error")}
	dev := New(Config{Bus: 1, Delay: 1, Factory: factoryFor(transport)})

	_, _, err := dev.Read()
	if !errors.Is(err, sensor.ErrTransport) {
		t.Fatalf("Read() error = %v, want %v", err, sensor.ErrTransport)
	}

	// the failed trigger must not be followed by a frame read
	if len(transport.ops) != 1 {
		t.Errorf("transport ops = %v, want the trigger write only", transport.ops)
	}
	if transport.closed != 1 {
		t.Errorf("transport closed %d times, want 1", transport.closed)
	}
}

func TestReadFrameFailure(t *testing.T) {
	transport := &scriptedTransport{readErr: errors.New("remote I/O error")}
	dev := New(Config{Bus: 1, Delay: 1, Factory: factoryFor(transport)})

	if _, _, err := dev.Read(); !errors.Is(err, sensor.ErrTransport) {
		t.Fatalf("Read() error = %v, want %v", err, sensor.ErrTransport)
	}
	if transport.closed != 1 {
		t.Errorf("transport closed %d times, want 1", transport.closed)
	}
}

func TestReadChecksumFailureReleasesTransport(t *testing.T) {
	transport := &scriptedTransport{frame: []byte{0x61, 0xA8, 0x00, 0x7C, 0xB4, 0x75}}
	dev := New(Config{Bus: 1, Delay: 1, Factory: factoryFor(transport)})

	if _, _, err := dev.Read(); !errors.Is(err, sensor.ErrChecksum) {
		t.Fatalf("Read() error = %v, want %v", err, sensor.ErrChecksum)
	}
	if transport.closed != 1 {
		t.Errorf("transport closed %d times, want 1", transport.closed)
	}
}

func TestReadFactoryFailure(t *testing.T) {
	dev := New(Config{Bus: 1, Delay: 1, Factory: func(bus int) (i2c.Transport, error) {
		return nil, errors.New("no such file or directory")
	}})

	if _, _, err := dev.Read(); !errors.Is(err, sensor.ErrTransport) {
		t.Fatalf("Read() error = %v, want %v", err, sensor.ErrTransport)
	}
}

func TestNewDefaults(t *testing.T) {
	dev := New(Config{Bus: 1})

	if dev.Address() != DefaultAddress {
		t.Errorf("Address() = 0x%02X, want 0x%02X", dev.Address(), DefaultAddress)
	}
	if dev.BusNumber() != 1 {
		t.Errorf("BusNumber() = %d, want 1", dev.BusNumber())
	}
	if dev.config.Delay != DefaultDelay {
		t.Errorf("delay = %v, want %v", dev.config.Delay, DefaultDelay)
	}
}
