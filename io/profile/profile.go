// SPDX-License-Identifier: Unlicense OR MIT

// Package profile provides access to frame timings.
package profile

import (
	"fmt"
	"time"
)

// Event contains profile data from a single rendered frame. Exceeding
// the frame budget is a performance signal surfaced through these
// events, never a functional error.
type Event struct {
	// Tick is the time spent building the widget tree.
	Tick time.Duration
	// Layout is the time spent resolving the box tree.
	Layout time.Duration
	// Paint is the time spent emitting primitives.
	Paint time.Duration
	// Frame is the total frame time.
	Frame time.Duration
}

// Timings returns a compact human readable summary.
func (e Event) Timings() string {
	return fmt.Sprintf("tick:%v layout:%v paint:%v frame:%v", e.Tick, e.Layout, e.Paint, e.Frame)
}

func (e Event) ImplementsEvent() {}
