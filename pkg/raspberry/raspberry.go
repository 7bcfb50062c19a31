// Package raspberry watches GPIO lines for edge changes. envlog uses it to
// observe the alert pin of the SHT30, which the sensor drives when a
// configured temperature or humidity limit is crossed.
package raspberry

import (
	"errors"
	"time"

	"envlog/pkg/port"
)

var ErrInvalidParam = errors.New("invalid parameters")

// GPIO is a handle on the GPIO character device.
type GPIO interface {
	// NewPin requests control of a single line and watches it for edge
	// changes. terminator selects the pull resistor: "pullup", "pulldown"
	// or "none". Edges arriving within debounce of each other are dropped.
	// There can only be one watcher on a pin at a time.
	NewPin(gpio int, terminator string, debounce time.Duration) (Pin, error)
	// Close releases the chip. Requested pins must be closed independently.
	Close() error
}

// Pin is a single requested line.
type Pin interface {
	// Events delivers the debounced edge changes of the line.
	Events() <-chan port.Event
	// Close releases the line and closes the event channel. It must not be
	// called from the event handler context.
	Close() error
}
