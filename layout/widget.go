// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"
	"strconv"
)

// Widget is an immutable, declarative description of one piece of
// interface, rebuilt by the application every frame and discarded
// after layout consumes it.
//
// The set of widget kinds is closed: Container, Flex, Inset and
// Stack. The layout engine matches every kind exhaustively, so a new
// kind means updating every consumer rather than relying on dynamic
// dispatch.
type Widget interface {
	implementsWidget()
}

// A Dim is an optional explicit dimension for one Container axis.
// The zero value is the unspecified state, meaning the container
// takes all available space on that axis.
type Dim struct {
	v  float32
	ok bool
}

// Px returns the explicit dimension v.
func Px(v float32) Dim {
	return Dim{v: v, ok: true}
}

// Get returns the explicit value, if any.
func (d Dim) Get() (float32, bool) {
	return d.v, d.ok
}

// Specified reports whether d carries an explicit value.
func (d Dim) Specified() bool {
	return d.ok
}

func (d Dim) String() string {
	if !d.ok {
		return "unspecified"
	}
	return strconv.FormatFloat(float64(d.v), 'f', -1, 32)
}

// Container is a box with an optional fixed size, a fill color and at
// most one child. An unspecified dimension takes all available space
// on that axis. The zero Color is transparent: the container occupies
// space but paints nothing.
type Container struct {
	Width, Height Dim
	Color         color.NRGBA
	// Child may be nil.
	Child Widget
}

// Inset adds space around a widget. Insets must be finite and
// non-negative.
type Inset struct {
	Top, Right, Bottom, Left float32
	Child                    Widget
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32, child Widget) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v, Child: child}
}

// Stack lays out child widgets on top of each other, sized to the
// largest child. Children paint in order; earlier children end up
// behind later ones.
type Stack struct {
	Children []Widget
}

func (Container) implementsWidget() {}
func (Flex) implementsWidget()      {}
func (Inset) implementsWidget()     {}
func (Stack) implementsWidget()     {}
