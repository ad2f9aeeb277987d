// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app drives the per-frame pipeline: application tick to widget
tree, widget tree to box tree, box tree to paint primitives.

The pipeline is single-threaded and synchronous; a frame's widget
tree, box tree and primitives are owned by that frame's call stack
and never shared across frames. The only retained state is whatever
the application itself keeps.
*/
package app

import (
	"time"

	"boxen.org/layout"
)

// App is the application contract: produce the current widget tree
// given the elapsed time since the loop started. Tick is invoked once
// per frame and must return within the frame budget. The returned
// tree must not reference a previous frame's widget or box trees.
type App interface {
	Tick(elapsed time.Duration) layout.Widget
}

// AppFunc adapts a function to the App interface.
type AppFunc func(elapsed time.Duration) layout.Widget

// Tick implements App.
func (f AppFunc) Tick(elapsed time.Duration) layout.Widget {
	return f(elapsed)
}
