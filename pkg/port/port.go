// Package port holds the event types of a watched physical line.
package port

import "time"

// EventType indicates the type of change to the line active state.
type EventType int

const (
	_ EventType = iota
	// RisingEdge indicates an inactive to active event (low to high).
	RisingEdge
	// FallingEdge indicates an active to inactive event (high to low).
	FallingEdge
)

// Event is one observed edge on a watched line.
type Event struct {
	// Timestamp indicates the time the event was detected,
	// relative to an arbitrary kernel reference.
	Timestamp time.Duration
	// Type is the kind of state change this event represents.
	Type EventType
}
