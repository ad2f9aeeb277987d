// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events.
package pointer

import (
	"time"

	"boxen.org/f32"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Time is when the event was received. The timestamp is relative
	// to an undefined base.
	Time time.Duration
	// Position is the coordinates of the event in viewport
	// coordinates.
	Position f32.Point
}

// Kind of an Event.
type Kind uint8

const (
	// Move of a pointer.
	Move Kind = iota
	// Press of a pointer button.
	Press
	// Release of a pointer button.
	Release
)

func (Event) ImplementsEvent() {}

func (k Kind) String() string {
	switch k {
	case Move:
		return "Move"
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("unreachable")
	}
}
