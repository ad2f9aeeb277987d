// SPDX-License-Identifier: Unlicense OR MIT

// Package input folds raw input events into per-frame state the
// application can query from its tick.
package input

import (
	"boxen.org/f32"
	"boxen.org/io/event"
	"boxen.org/io/key"
	"boxen.org/io/pointer"
)

// Router tracks the pointer position and the set of held keys from a
// stream of events. The zero value is ready to use. Events are queued
// between frames by the driver; layout never sees them.
//
// Router is not safe for concurrent use; the frame loop owns it.
type Router struct {
	position f32.Point
	pressed  map[key.Name]bool
}

// Queue folds events into the state, in order.
func (r *Router) Queue(events ...event.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case key.Event:
			if r.pressed == nil {
				r.pressed = make(map[key.Name]bool)
			}
			switch e.State {
			case key.Press:
				r.pressed[e.Name] = true
			case key.Release:
				delete(r.pressed, e.Name)
			}
		case pointer.Event:
			if e.Kind == pointer.Move {
				r.position = e.Position
			}
		}
	}
}

// Pressed reports whether the key n is held down.
func (r *Router) Pressed(n key.Name) bool {
	return r.pressed[n]
}

// Position returns the last known pointer position.
func (r *Router) Position() f32.Point {
	return r.position
}
