// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"boxen.org/f32"
)

// Flex lays out child elements along an axis, according to alignment
// and weights. A row is Flex{Axis: Horizontal}, a column Flex{Axis:
// Vertical}.
type Flex struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Spacing controls the distribution of space left after layout
	// along the main axis.
	Spacing Spacing
	// Alignment is the alignment in the cross axis.
	Alignment Alignment
	// Children in order. Rigid children are measured before Flexed
	// ones regardless of position.
	Children []FlexChild
}

// FlexChild is the descriptor for a Flex child.
type FlexChild struct {
	flex   bool
	weight float32

	widget Widget
}

// Spacing determine the spacing mode for a Flex.
type Spacing uint8

const (
	// SpaceEnd leaves space at the end; children pack at the start.
	SpaceEnd Spacing = iota
	// SpaceStart leaves space at the start; children pack at the end.
	SpaceStart
	// SpaceSides shares space between the start and end, centering
	// the packed children.
	SpaceSides
	// SpaceAround distributes space evenly between children, with
	// half as much space at the start and end.
	SpaceAround
	// SpaceBetween distributes space evenly between children, leaving
	// no space at the start and end.
	SpaceBetween
	// SpaceEvenly distributes space evenly between children and at
	// the start and end.
	SpaceEvenly
)

// Rigid returns a Flex child sized by its own intrinsic or explicit
// size.
func Rigid(widget Widget) FlexChild {
	return FlexChild{
		widget: widget,
	}
}

// Flexed returns a Flex child forced to take up a share of the space
// remaining after Rigid children, proportional to weight among its
// flexed siblings. The weight must be non-negative.
func Flexed(weight float32, widget Widget) FlexChild {
	return FlexChild{
		flex:   true,
		weight: weight,
		widget: widget,
	}
}

// layFlex is the flex distribution algorithm. Two measuring passes:
// rigid children first against an unbounded main axis, then flexed
// children against a tight share of the leftover space. A third pass
// assigns positions from the spacing and alignment modes.
func layFlex(f Flex, cs Constraints) (Box, error) {
	mainMin, mainMax := axisMainConstraint(f.Axis, cs)
	crossMin, crossMax := axisCrossConstraint(f.Axis, cs)
	childCrossMin, childCrossMax := f.childCrossConstraint(crossMax)

	children := make([]Box, len(f.Children))
	var used float32
	var totalWeight float32
	for i, ch := range f.Children {
		if ch.widget == nil {
			return Box{}, fmt.Errorf("%w: nil flex child", ErrWidget)
		}
		if ch.flex {
			if ch.weight < 0 || float32IsNaN(ch.weight) || float32IsInf(ch.weight) {
				return Box{}, fmt.Errorf("%w: flex weight %v not finite and non-negative", ErrWidget, ch.weight)
			}
			totalWeight += ch.weight
			continue
		}
		ccs := axisConstraints(f.Axis, 0, inf, childCrossMin, childCrossMax)
		b, err := lay(ch.widget, ccs)
		if err != nil {
			return Box{}, err
		}
		children[i] = b
		used += axisMain(f.Axis, b.Size)
	}

	if float32IsInf(used) {
		return Box{}, fmt.Errorf("%w: rigid children main extent", ErrOverflow)
	}

	// Leftover space for flexed children, floored at zero. A zero
	// total weight or an unbounded main axis degenerates to zero-size
	// flexed children; there is no division in either case.
	var leftover float32
	if !float32IsInf(mainMax) && mainMax > used {
		leftover = mainMax - used
	}
	total := used
	for i, ch := range f.Children {
		if !ch.flex {
			continue
		}
		var share float32
		if totalWeight > 0 {
			share = leftover * ch.weight / totalWeight
		}
		ccs := axisConstraints(f.Axis, share, share, childCrossMin, childCrossMax)
		b, err := lay(ch.widget, ccs)
		if err != nil {
			return Box{}, err
		}
		children[i] = b
		total += axisMain(f.Axis, b.Size)
	}

	var maxCross float32
	for i := range children {
		if c := axisCross(f.Axis, children[i].Size); c > maxCross {
			maxCross = c
		}
	}
	crossSize := clamp(maxCross, crossMin, crossMax)

	// Packed spacing modes shrink to the content; the Space* modes
	// claim the full incoming main extent. An unbounded Space* main
	// axis has no extent to distribute and packs like SpaceEnd.
	var mainSize float32
	switch f.Spacing {
	case SpaceEnd, SpaceStart, SpaceSides:
		mainSize = clamp(total, mainMin, mainMax)
	case SpaceAround, SpaceBetween, SpaceEvenly:
		mainSize = mainMax
		if float32IsInf(mainMax) {
			mainSize = clamp(total, mainMin, mainMax)
		}
	default:
		panic("unreachable")
	}
	space := mainSize - total
	if space < 0 {
		space = 0
	}

	main, gap := f.Spacing.distribute(space, len(children))
	for i := range children {
		var cross float32
		switch f.Alignment {
		case End:
			cross = crossSize - axisCross(f.Axis, children[i].Size)
		case Middle:
			cross = (crossSize - axisCross(f.Axis, children[i].Size)) / 2
		}
		children[i].Pos = axisPoint(f.Axis, main, cross)
		main += axisMain(f.Axis, children[i].Size) + gap
	}

	size := axisPoint(f.Axis, mainSize, crossSize)
	if err := checkSize(size); err != nil {
		return Box{}, err
	}
	return Box{Size: size, Children: children}, nil
}

// childCrossConstraint is the cross axis constraint for measuring
// children. Stretch makes it tight at the full cross extent; an
// unbounded cross axis cannot stretch and stays loose.
func (f Flex) childCrossConstraint(crossMax float32) (min, max float32) {
	if f.Alignment == Stretch && !float32IsInf(crossMax) {
		return crossMax, crossMax
	}
	return 0, crossMax
}

// distribute splits the leftover space into a leading offset and a
// per-gap amount. The offset, child extents and gaps always sum back
// to the resolved main size.
func (s Spacing) distribute(space float32, n int) (lead, gap float32) {
	if n == 0 || space <= 0 {
		return 0, 0
	}
	switch s {
	case SpaceEnd:
		return 0, 0
	case SpaceStart:
		return space, 0
	case SpaceSides:
		return space / 2, 0
	case SpaceAround:
		gap = space / float32(n)
		return gap / 2, gap
	case SpaceBetween:
		if n < 2 {
			return 0, 0
		}
		return 0, space / float32(n-1)
	case SpaceEvenly:
		gap = space / float32(n+1)
		return gap, gap
	default:
		panic("unreachable")
	}
}

func axisPoint(a Axis, main, cross float32) f32.Point {
	if a == Horizontal {
		return f32.Point{X: main, Y: cross}
	} else {
		return f32.Point{X: cross, Y: main}
	}
}

func axisMain(a Axis, sz f32.Point) float32 {
	if a == Horizontal {
		return sz.X
	} else {
		return sz.Y
	}
}

func axisCross(a Axis, sz f32.Point) float32 {
	if a == Horizontal {
		return sz.Y
	} else {
		return sz.X
	}
}

func axisMainConstraint(a Axis, cs Constraints) (float32, float32) {
	if a == Horizontal {
		return cs.Min.X, cs.Max.X
	} else {
		return cs.Min.Y, cs.Max.Y
	}
}

func axisCrossConstraint(a Axis, cs Constraints) (float32, float32) {
	if a == Horizontal {
		return cs.Min.Y, cs.Max.Y
	} else {
		return cs.Min.X, cs.Max.X
	}
}

func axisConstraints(a Axis, mainMin, mainMax, crossMin, crossMax float32) Constraints {
	if a == Horizontal {
		return Constraints{Min: f32.Pt(mainMin, crossMin), Max: f32.Pt(mainMax, crossMax)}
	} else {
		return Constraints{Min: f32.Pt(crossMin, mainMin), Max: f32.Pt(crossMax, mainMax)}
	}
}

func (s Spacing) String() string {
	switch s {
	case SpaceEnd:
		return "SpaceEnd"
	case SpaceStart:
		return "SpaceStart"
	case SpaceSides:
		return "SpaceSides"
	case SpaceAround:
		return "SpaceAround"
	case SpaceBetween:
		return "SpaceBetween"
	case SpaceEvenly:
		return "SpaceEvenly"
	default:
		panic("unreachable")
	}
}
