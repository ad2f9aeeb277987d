// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"fmt"
	"time"

	"boxen.org/io/event"
	"boxen.org/paint"
)

// Loop runs a Driver at a fixed interval on the calling goroutine,
// draining externally queued input events between frames. Other
// goroutines may queue events at any time; the loop delivers them to
// the driver before the next frame.
type Loop struct {
	driver   *Driver
	interval time.Duration
	events   chan event.Event
}

// NewLoop returns a Loop driving d once per interval.
func NewLoop(d *Driver, interval time.Duration) *Loop {
	return &Loop{
		driver:   d,
		interval: interval,
		events:   make(chan event.Event, 64),
	}
}

// Queue hands an input event to the loop. It never blocks; when the
// loop has fallen behind and the queue is full the event is dropped.
func (l *Loop) Queue(e event.Event) {
	select {
	case l.events <- e:
	default:
		logger().Debug("app: event queue full, dropping event")
	}
}

// Run drives frames until ctx is done, invoking render with each
// frame's primitives. A layout error or a render error stops the loop
// and is returned.
func (l *Loop) Run(ctx context.Context, render func([]paint.Primitive) error) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		// Input is delivered strictly between frames.
	drain:
		for {
			select {
			case e := <-l.events:
				l.driver.Queue(e)
			default:
				break drain
			}
		}
		prims, err := l.driver.Frame(time.Since(start))
		if err != nil {
			return err
		}
		if err := render(prims); err != nil {
			return fmt.Errorf("app: render: %w", err)
		}
	}
}
