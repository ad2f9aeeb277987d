// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements keyboard events.
package key

// Event is generated when a key is pressed or released.
type Event struct {
	// Name of the key.
	Name Name
	// State is the state of the key when the event was fired.
	State State
}

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Name is the identifier for a keyboard key.
//
// For letters, the upper case form is used, via unicode.ToUpper.
type Name string

const (
	// Names for special keys.
	NameLeftArrow  Name = "←"
	NameRightArrow Name = "→"
	NameUpArrow    Name = "↑"
	NameDownArrow  Name = "↓"
	NameSpace      Name = "Space"
	NameShift      Name = "Shift"
	NameEscape     Name = "⎋"
	NameReturn     Name = "⏎"
)

func (Event) ImplementsEvent() {}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("unreachable")
	}
}
