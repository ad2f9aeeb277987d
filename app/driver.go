// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"log/slog"
	"time"

	"boxen.org/f32"
	"boxen.org/io/event"
	"boxen.org/io/input"
	"boxen.org/io/profile"
	"boxen.org/layout"
	"boxen.org/paint"
)

// Driver ties an App to the layout and paint pipeline. It owns the
// viewport size and the input router, and nothing else persists
// between frames.
type Driver struct {
	app      App
	router   input.Router
	viewport f32.Point
	budget   time.Duration
	profile  func(profile.Event)
}

// Option configures a Driver.
type Option func(*Driver)

// WithViewport sets the drawable size, in the same unit as widget
// sizes.
func WithViewport(size f32.Point) Option {
	return func(d *Driver) {
		d.viewport = size
	}
}

// WithFrameBudget sets the duration a frame may take before the
// driver reports it as over budget.
func WithFrameBudget(budget time.Duration) Option {
	return func(d *Driver) {
		d.budget = budget
	}
}

// WithProfile registers a listener for per-frame timing events.
func WithProfile(fn func(profile.Event)) Option {
	return func(d *Driver) {
		d.profile = fn
	}
}

// WithConfig applies the viewport and frame budget from cfg.
func WithConfig(cfg Config) Option {
	return func(d *Driver) {
		d.viewport = cfg.Viewport()
		d.budget = cfg.FrameInterval()
	}
}

// NewDriver returns a Driver for a with the default configuration
// applied, then opts in order.
func NewDriver(a App, opts ...Option) *Driver {
	d := &Driver{app: a}
	WithConfig(DefaultConfig())(d)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Router returns the input state for the application to query during
// its tick.
func (d *Driver) Router() *input.Router {
	return &d.router
}

// Queue delivers input events to the application state. Call it
// between frames only; a frame in flight never observes new input.
func (d *Driver) Queue(events ...event.Event) {
	d.router.Queue(events...)
}

// Resize updates the viewport, which becomes the root constraints of
// the next frame.
func (d *Driver) Resize(size f32.Point) {
	d.viewport = size
}

// Frame runs one frame: tick the application, lay the returned tree
// out against the viewport and emit its primitives, back to front. A
// layout error aborts the frame; no primitives are produced and the
// error is returned for the host to handle. Exceeding the frame
// budget is logged and reported to the profile listener, never an
// error.
func (d *Driver) Frame(elapsed time.Duration) ([]paint.Primitive, error) {
	start := time.Now()
	root := d.app.Tick(elapsed)
	ticked := time.Now()

	box, err := layout.Layout(root, layout.Constraints{Max: d.viewport})
	if err != nil {
		return nil, fmt.Errorf("app: frame aborted: %w", err)
	}
	laidOut := time.Now()

	prims := paint.Collect(box)
	done := time.Now()

	ev := profile.Event{
		Tick:   ticked.Sub(start),
		Layout: laidOut.Sub(ticked),
		Paint:  done.Sub(laidOut),
		Frame:  done.Sub(start),
	}
	if d.budget > 0 && ev.Frame > d.budget {
		logger().Warn("app: frame over budget",
			slog.Duration("budget", d.budget),
			slog.String("timings", ev.Timings()))
	}
	if d.profile != nil {
		d.profile(ev)
	}
	return prims, nil
}
