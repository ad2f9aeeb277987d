// SPDX-License-Identifier: Unlicense OR MIT

// Package paint flattens a laid out Box tree into the ordered draw
// primitives consumed by a rasterizer.
package paint

import (
	"image/color"
	"iter"

	"boxen.org/f32"
	"boxen.org/layout"
)

// A Primitive is one draw instruction: a filled rectangle in viewport
// coordinates. Primitives carry no reference back to the widgets that
// produced them.
type Primitive struct {
	Bounds f32.Rectangle
	Color  color.NRGBA
}

// Emit returns the primitives for the tree rooted at root, in
// depth-first pre-order: each box before its children, giving natural
// back-to-front painter's ordering for overlapping content. Positions
// are absolute, accumulated from the parent offsets during the walk.
//
// The sequence is lazy and restartable; ranging over it twice yields
// identical primitives. Boxes with a fully transparent color
// contribute nothing themselves but their children still paint.
func Emit(root layout.Box) iter.Seq[Primitive] {
	return func(yield func(Primitive) bool) {
		walk(&root, f32.Point{}, yield)
	}
}

func walk(b *layout.Box, offset f32.Point, yield func(Primitive) bool) bool {
	pos := offset.Add(b.Pos)
	if b.Color.A > 0 {
		p := Primitive{
			Bounds: f32.Rectangle{Min: pos, Max: pos.Add(b.Size)},
			Color:  b.Color,
		}
		if !yield(p) {
			return false
		}
	}
	for i := range b.Children {
		if !walk(&b.Children[i], pos, yield) {
			return false
		}
	}
	return true
}

// Collect gathers the primitives for root into a slice.
func Collect(root layout.Box) []Primitive {
	var prims []Primitive
	for p := range Emit(root) {
		prims = append(prims, p)
	}
	return prims
}
