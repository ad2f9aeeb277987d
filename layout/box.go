// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"

	"boxen.org/f32"
)

// A Box is a resolved, positioned, sized node produced by Layout.
// Box trees are created fresh each frame, consumed by the paint
// emitter and then discarded; they are never diffed against the
// previous frame. Children are stored by value so a frame's tree
// lives in a handful of allocations.
type Box struct {
	// Pos is relative to the parent's origin.
	Pos f32.Point
	// Size is finite, non-negative and within the constraints that
	// produced it.
	Size f32.Point
	// Color is the fill. The zero value is transparent: a pure layout
	// box that paints nothing itself.
	Color color.NRGBA
	// Children in paint order, back to front.
	Children []Box
}

// Bounds returns the box rectangle in the parent's coordinate space.
func (b Box) Bounds() f32.Rectangle {
	return f32.Rectangle{Min: b.Pos, Max: b.Pos.Add(b.Size)}
}
