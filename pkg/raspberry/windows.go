//go:build !linux

package raspberry

import (
	"fmt"
	"time"

	"envlog/pkg/port"
)

// emuChip stands in for the GPIO character device on systems without one.
type emuChip struct {
	pins map[int]*emuPin
}

type emuPin struct {
	gpio   int
	events chan port.Event
}

// Open returns an emulated chip whose lines never fire.
func Open() (GPIO, error) {
	return &emuChip{pins: map[int]*emuPin{}}, nil
}

func (c *emuChip) NewPin(gpio int, terminator string, debounce time.Duration) (Pin, error) {
	switch terminator {
	case "pullup", "pulldown", "none":
	default:
		return nil, ErrInvalidParam
	}

	if _, ok := c.pins[gpio]; ok {
		return nil, fmt.Errorf("pin %v already used", gpio)
	}

	p := &emuPin{gpio: gpio, events: make(chan port.Event)}
	c.pins[gpio] = p
	return p, nil
}

func (c *emuChip) Close() error {
	return nil
}

func (p *emuPin) Events() <-chan port.Event {
	return p.events
}

// EmuEdge injects an edge, for exercising watchers without hardware.
func (p *emuPin) EmuEdge(t port.EventType) {
	p.events <- port.Event{Type: t, Timestamp: time.Duration(time.Now().UnixNano())}
}

func (p *emuPin) Close() error {
	close(p.events)
	return nil
}
