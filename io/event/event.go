// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the types for input events delivered to an
// application between frames.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
