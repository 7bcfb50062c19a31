//go:build linux

package raspberry

import (
	"time"

	"github.com/warthog618/gpiod"

	"envlog/pkg/port"
)

// Chip represents a single GPIO chip that controls a set of lines.
type Chip struct {
	gpiodChip *gpiod.Chip
}

// Line represents a single requested line.
type Line struct {
	gpiodLine *gpiod.Line
	lastEdge  time.Duration
	debounce  time.Duration
	events    chan port.Event
}

// Open opens the GPIO character device.
func Open() (GPIO, error) {
	c, err := gpiod.NewChip("gpiochip0")
	if err != nil {
		return nil, err
	}
	return &Chip{gpiodChip: c}, nil
}

// NewPin requests control of a single line on the chip and watches it for
// edge changes. If granted, control is maintained until the Line is closed.
func (c *Chip) NewPin(gpio int, terminator string, debounce time.Duration) (Pin, error) {
	line := &Line{
		debounce: debounce,
		events:   make(chan port.Event),
	}

	handler := func(evt gpiod.LineEvent) {
		// edges within the bounce window are contact noise
		if line.debounce > 0 && evt.Timestamp-line.lastEdge < line.debounce {
			return
		}
		line.lastEdge = evt.Timestamp

		switch evt.Type {
		case gpiod.LineEventFallingEdge:
			line.events <- port.Event{Type: port.FallingEdge, Timestamp: evt.Timestamp}
		case gpiod.LineEventRisingEdge:
			line.events <- port.Event{Type: port.RisingEdge, Timestamp: evt.Timestamp}
		}
	}

	options := []gpiod.LineReqOption{gpiod.WithEventHandler(handler), gpiod.WithBothEdges, gpiod.AsInput}
	switch terminator {
	case "pullup":
		options = append(options, gpiod.WithPullUp)
	case "pulldown":
		options = append(options, gpiod.WithPullDown)
	case "none":
	default:
		return nil, ErrInvalidParam
	}

	l, err := c.gpiodChip.RequestLine(gpio, options...)
	if err != nil {
		return nil, err
	}

	line.gpiodLine = l
	return line, nil
}

// Close releases the Chip. It does not release any lines which may be
// requested - they must be closed independently.
func (c *Chip) Close() error {
	return c.gpiodChip.Close()
}

// Events delivers the debounced edge changes of the line.
func (l *Line) Events() <-chan port.Event {
	return l.events
}

// Close releases all resources held by the requested line. This includes
// waiting for a running event handler to return, so Close must be called
// from a different goroutine than the handler.
func (l *Line) Close() error {
	if err := l.gpiodLine.Close(); err != nil {
		return err
	}
	close(l.events)
	return nil
}
