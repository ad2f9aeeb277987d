// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout turns a declarative widget tree into a tree of
positioned, sized boxes.

The application describes its interface each frame as a tree of
widgets and hands the root to Layout together with the viewport
constraints. Layout walks the tree once, top-down passing available
space and bottom-up returning resolved sizes, and produces a parallel
Box tree for the paint emitter. Nothing is retained between calls;
every frame is laid out from scratch.
*/
package layout

import (
	"errors"
	"fmt"
	"math"

	"boxen.org/f32"
)

// Constraints represent the acceptable range for a widget's width and
// height. Min must be finite and non-negative; Max may be unbounded
// (+Inf), as for an outer viewport axis that scrolls.
type Constraints struct {
	Min, Max f32.Point
}

// Exact returns the constraints that can only be satisfied by size.
func Exact(size f32.Point) Constraints {
	return Constraints{Min: size, Max: size}
}

// Constrain a size to the range [Min; Max].
func (c Constraints) Constrain(size f32.Point) f32.Point {
	return f32.Point{
		X: clamp(size.X, c.Min.X, c.Max.X),
		Y: clamp(size.Y, c.Min.Y, c.Max.Y),
	}
}

// validate rejects constraints outside the caller contract. They are
// reported, not silently repaired.
func (c Constraints) validate() error {
	for _, v := range [...]float32{c.Min.X, c.Min.Y} {
		if float32IsNaN(v) || float32IsInf(v) || v < 0 {
			return fmt.Errorf("%w: min %v not finite and non-negative", ErrConstraints, c.Min)
		}
	}
	for _, v := range [...]float32{c.Max.X, c.Max.Y} {
		if float32IsNaN(v) {
			return fmt.Errorf("%w: max %v is NaN", ErrConstraints, c.Max)
		}
	}
	if c.Max.X < c.Min.X || c.Max.Y < c.Min.Y {
		return fmt.Errorf("%w: min %v exceeds max %v", ErrConstraints, c.Min, c.Max)
	}
	return nil
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Alignment is the cross axis alignment of a list of widgets.
type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
	// Stretch forces children to the full cross axis extent.
	Stretch
)

var (
	// ErrConstraints reports constraints that violate the caller
	// contract: a negative or non-finite minimum, a maximum below the
	// minimum, or NaN anywhere.
	ErrConstraints = errors.New("layout: invalid constraints")

	// ErrWidget reports a widget description that violates the caller
	// contract, such as a negative explicit size, a negative flex
	// weight or a nil flex child.
	ErrWidget = errors.New("layout: invalid widget")

	// ErrOverflow reports an accumulated size beyond the representable
	// range.
	ErrOverflow = errors.New("layout: size overflow")
)

// Layout resolves the widget tree rooted at w against cs and returns
// the positioned Box tree. It is a pure function of its inputs: no
// state is shared across calls, and laying out structurally equal
// trees against equal constraints yields structurally equal results.
//
// Layout never panics on valid input. Malformed constraints and
// malformed widgets are reported through ErrConstraints and
// ErrWidget; sizes that leave the representable range through
// ErrOverflow.
func Layout(w Widget, cs Constraints) (Box, error) {
	if err := cs.validate(); err != nil {
		return Box{}, err
	}
	if w == nil {
		return Box{}, fmt.Errorf("%w: nil root", ErrWidget)
	}
	return lay(w, cs)
}

// lay dispatches over the closed set of widget kinds. New kinds must
// be added here and nowhere else.
func lay(w Widget, cs Constraints) (Box, error) {
	switch w := w.(type) {
	case Container:
		return layContainer(w, cs)
	case Flex:
		return layFlex(w, cs)
	case Inset:
		return layInset(w, cs)
	case Stack:
		return layStack(w, cs)
	default:
		return Box{}, fmt.Errorf("%w: unknown widget kind %T", ErrWidget, w)
	}
}

func layContainer(c Container, cs Constraints) (Box, error) {
	w, wTight, err := resolveDim(c.Width, cs.Min.X, cs.Max.X)
	if err != nil {
		return Box{}, err
	}
	h, hTight, err := resolveDim(c.Height, cs.Min.Y, cs.Max.Y)
	if err != nil {
		return Box{}, err
	}
	if c.Child == nil {
		// A childless container with an unbounded, unspecified axis
		// collapses to the minimum on that axis.
		size := f32.Point{X: w, Y: h}
		if !wTight {
			size.X = cs.Min.X
		}
		if !hTight {
			size.Y = cs.Min.Y
		}
		return Box{Size: size, Color: c.Color}, nil
	}
	// The child is measured against the container's resolved size,
	// tight on every resolved axis. An unbounded, unspecified axis
	// wraps the child instead.
	ccs := Constraints{Max: f32.Point{X: inf, Y: inf}}
	if wTight {
		ccs.Min.X, ccs.Max.X = w, w
	}
	if hTight {
		ccs.Min.Y, ccs.Max.Y = h, h
	}
	child, err := lay(c.Child, ccs)
	if err != nil {
		return Box{}, err
	}
	size := f32.Point{X: w, Y: h}
	if !wTight {
		size.X = clamp(child.Size.X, cs.Min.X, cs.Max.X)
	}
	if !hTight {
		size.Y = clamp(child.Size.Y, cs.Min.Y, cs.Max.Y)
	}
	// The container's resolved size is final; the child is positioned
	// at the content origin and cannot grow the parent.
	return Box{Size: size, Color: c.Color, Children: []Box{child}}, nil
}

// resolveDim resolves one container axis. An explicit dimension is
// clamped into the incoming range, incoming minimum included. An
// unspecified axis fills the incoming maximum when it is bounded;
// otherwise the axis is left loose for the caller to resolve.
func resolveDim(d Dim, min, max float32) (v float32, tight bool, err error) {
	if val, ok := d.Get(); ok {
		if float32IsNaN(val) || float32IsInf(val) || val < 0 {
			return 0, false, fmt.Errorf("%w: explicit size %v not finite and non-negative", ErrWidget, val)
		}
		return clamp(val, min, max), true, nil
	}
	if !float32IsInf(max) {
		return max, true, nil
	}
	return 0, false, nil
}

func layInset(in Inset, cs Constraints) (Box, error) {
	for _, v := range [...]float32{in.Top, in.Right, in.Bottom, in.Left} {
		if float32IsNaN(v) || float32IsInf(v) || v < 0 {
			return Box{}, fmt.Errorf("%w: inset %v not finite and non-negative", ErrWidget, v)
		}
	}
	hor := in.Left + in.Right
	ver := in.Top + in.Bottom
	if in.Child == nil {
		return Box{Size: cs.Constrain(f32.Point{X: hor, Y: ver})}, nil
	}
	mcs := cs
	mcs.Max.X -= hor
	if mcs.Max.X < 0 {
		mcs.Max.X = 0
	}
	mcs.Max.Y -= ver
	if mcs.Max.Y < 0 {
		mcs.Max.Y = 0
	}
	mcs.Min.X = clamp(mcs.Min.X-hor, 0, mcs.Max.X)
	mcs.Min.Y = clamp(mcs.Min.Y-ver, 0, mcs.Max.Y)
	child, err := lay(in.Child, mcs)
	if err != nil {
		return Box{}, err
	}
	child.Pos = f32.Point{X: in.Left, Y: in.Top}
	size := cs.Constrain(child.Size.Add(f32.Point{X: hor, Y: ver}))
	if err := checkSize(size); err != nil {
		return Box{}, err
	}
	return Box{Size: size, Children: []Box{child}}, nil
}

// clamp constrains v to the range [min; max].
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

var inf = float32(math.Inf(1))

func float32IsNaN(v float32) bool {
	return v != v
}

func float32IsInf(v float32) bool {
	return v > math.MaxFloat32 || v < -math.MaxFloat32
}

// checkSize reports accumulated sizes that left the representable
// range, which valid inputs can reach by summing near-MaxFloat32
// extents.
func checkSize(size f32.Point) error {
	for _, v := range [...]float32{size.X, size.Y} {
		if float32IsNaN(v) || float32IsInf(v) {
			return fmt.Errorf("%w: size %v", ErrOverflow, size)
		}
	}
	return nil
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	case Stretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
