// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxen.org/f32"
	"boxen.org/layout"
)

func rigidBox(w, h float32) layout.FlexChild {
	return layout.Rigid(layout.Container{Width: layout.Px(w), Height: layout.Px(h), Color: red})
}

func TestFlexSpaceEvenlyRow(t *testing.T) {
	box, err := layout.Layout(layout.Flex{
		Axis:    layout.Horizontal,
		Spacing: layout.SpaceEvenly,
		Children: []layout.FlexChild{
			rigidBox(100, 50), rigidBox(100, 50), rigidBox(100, 50),
		},
	}, viewport(800, 600))
	require.NoError(t, err)
	assert.Equal(t, f32.Pt(800, 50), box.Size)
	require.Len(t, box.Children, 3)
	for i, want := range []float32{125, 350, 575} {
		assert.InDelta(t, want, box.Children[i].Pos.X, 1e-3)
		assert.Equal(t, float32(0), box.Children[i].Pos.Y)
	}
}

func TestFlexedTakesLeftoverSpace(t *testing.T) {
	box, err := layout.Layout(layout.Flex{
		Axis: layout.Horizontal,
		Children: []layout.FlexChild{
			rigidBox(100, 50),
			layout.Flexed(1, layout.Container{Color: blue}),
		},
	}, viewport(500, 500))
	require.NoError(t, err)
	require.Len(t, box.Children, 2)
	assert.Equal(t, float32(100), box.Children[0].Size.X)
	assert.Equal(t, float32(400), box.Children[1].Size.X)
	assert.Equal(t, float32(100), box.Children[1].Pos.X)
	assert.Equal(t, float32(500), box.Size.X)
}

func TestFlexedSharesByWeight(t *testing.T) {
	box, err := layout.Layout(layout.Flex{
		Axis: layout.Horizontal,
		Children: []layout.FlexChild{
			layout.Flexed(1, layout.Container{Height: layout.Px(10)}),
			layout.Flexed(3, layout.Container{Height: layout.Px(10)}),
		},
	}, viewport(400, 100))
	require.NoError(t, err)
	assert.Equal(t, float32(100), box.Children[0].Size.X)
	assert.Equal(t, float32(300), box.Children[1].Size.X)
}

func TestColumnMiddleAlignment(t *testing.T) {
	box, err := layout.Layout(layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Middle,
		Children: []layout.FlexChild{
			rigidBox(100, 40),
			rigidBox(300, 40),
		},
	}, viewport(800, 600))
	require.NoError(t, err)
	assert.Equal(t, float32(300), box.Size.X)
	assert.Equal(t, float32(100), box.Children[0].Pos.X)
	assert.Equal(t, float32(0), box.Children[1].Pos.X)
	assert.Equal(t, float32(40), box.Children[1].Pos.Y)
}

func TestEndAlignment(t *testing.T) {
	box, err := layout.Layout(layout.Flex{
		Axis:      layout.Horizontal,
		Alignment: layout.End,
		Children: []layout.FlexChild{
			rigidBox(50, 50),
			rigidBox(50, 100),
		},
	}, viewport(800, 600))
	require.NoError(t, err)
	assert.Equal(t, float32(50), box.Children[0].Pos.Y)
	assert.Equal(t, float32(0), box.Children[1].Pos.Y)
}

func TestStretchAlignment(t *testing.T) {
	box, err := layout.Layout(layout.Flex{
		Axis:      layout.Horizontal,
		Alignment: layout.Stretch,
		Children: []layout.FlexChild{
			layout.Rigid(layout.Container{Width: layout.Px(50)}),
		},
	}, viewport(800, 600))
	require.NoError(t, err)
	assert.Equal(t, float32(600), box.Children[0].Size.Y)
	assert.Equal(t, float32(600), box.Size.Y)
}

func TestSpacingModes(t *testing.T) {
	for _, tc := range []struct {
		spacing layout.Spacing
		xs      []float32
	}{
		{layout.SpaceEnd, []float32{0, 100}},
		{layout.SpaceSides, []float32{100, 200}},
		{layout.SpaceAround, []float32{50, 250}},
		{layout.SpaceBetween, []float32{0, 300}},
		{layout.SpaceEvenly, []float32{66.667, 233.333}},
	} {
		t.Run(tc.spacing.String(), func(t *testing.T) {
			box, err := layout.Layout(layout.Flex{
				Axis:    layout.Horizontal,
				Spacing: tc.spacing,
				Children: []layout.FlexChild{
					rigidBox(100, 10), rigidBox(100, 10),
				},
			}, layout.Constraints{Min: f32.Pt(400, 0), Max: f32.Pt(400, 100)})
			require.NoError(t, err)
			assert.Equal(t, float32(400), box.Size.X)
			for i, want := range tc.xs {
				assert.InDelta(t, want, box.Children[i].Pos.X, 1e-2)
			}
		})
	}
}

func TestSpaceStartPacksAtEnd(t *testing.T) {
	box, err := layout.Layout(layout.Flex{
		Axis:    layout.Horizontal,
		Spacing: layout.SpaceStart,
		Children: []layout.FlexChild{
			rigidBox(100, 10), rigidBox(100, 10),
		},
	}, layout.Constraints{Min: f32.Pt(400, 0), Max: f32.Pt(400, 100)})
	require.NoError(t, err)
	assert.Equal(t, float32(200), box.Children[0].Pos.X)
	assert.Equal(t, float32(300), box.Children[1].Pos.X)
}

// The leading offset, child extents, inter-child gaps and trailing
// space always sum back to the resolved main size, for every spacing
// mode.
func TestSpacingConservation(t *testing.T) {
	modes := []layout.Spacing{
		layout.SpaceEnd, layout.SpaceStart, layout.SpaceSides,
		layout.SpaceAround, layout.SpaceBetween, layout.SpaceEvenly,
	}
	for _, m := range modes {
		t.Run(m.String(), func(t *testing.T) {
			box, err := layout.Layout(layout.Flex{
				Axis:    layout.Horizontal,
				Spacing: m,
				Children: []layout.FlexChild{
					rigidBox(100, 10), rigidBox(60, 10), rigidBox(40, 10),
				},
			}, layout.Constraints{Min: f32.Pt(500, 0), Max: f32.Pt(500, 100)})
			require.NoError(t, err)
			occupied := box.Children[0].Pos.X
			prev := box.Children[0].Pos.X
			for _, c := range box.Children {
				assert.GreaterOrEqual(t, c.Pos.X, prev-1e-3, "children out of order")
				occupied += c.Pos.X - prev
				occupied += c.Size.X
				prev = c.Pos.X + c.Size.X
			}
			trail := box.Size.X - prev
			assert.GreaterOrEqual(t, trail, float32(-1e-3))
			assert.InDelta(t, box.Size.X, occupied+trail, 1e-3)
		})
	}
}

func TestZeroWeightIsSafe(t *testing.T) {
	box, err := layout.Layout(layout.Flex{
		Axis: layout.Horizontal,
		Children: []layout.FlexChild{
			layout.Flexed(0, layout.Container{Height: layout.Px(50)}),
			layout.Flexed(0, layout.Container{Height: layout.Px(50)}),
		},
	}, viewport(500, 100))
	require.NoError(t, err)
	assert.Equal(t, float32(0), box.Children[0].Size.X)
	assert.Equal(t, float32(0), box.Children[1].Size.X)
}

func TestFlexedOnUnboundedMainAxis(t *testing.T) {
	cs := layout.Constraints{Max: f32.Pt(float32(math.Inf(1)), 100)}
	box, err := layout.Layout(layout.Flex{
		Axis: layout.Horizontal,
		Children: []layout.FlexChild{
			rigidBox(100, 10),
			layout.Flexed(1, layout.Container{Height: layout.Px(10)}),
		},
	}, cs)
	require.NoError(t, err)
	assert.Equal(t, float32(0), box.Children[1].Size.X)
	assert.Equal(t, float32(100), box.Size.X)
}

func TestRigidOverflowReported(t *testing.T) {
	// Two children at the float32 limit sum to +Inf on an unbounded
	// main axis; the accumulated extent must be reported, not clamped.
	cs := layout.Constraints{Max: f32.Pt(float32(math.Inf(1)), 100)}
	_, err := layout.Layout(layout.Flex{
		Axis: layout.Horizontal,
		Children: []layout.FlexChild{
			rigidBox(math.MaxFloat32, 10),
			rigidBox(math.MaxFloat32, 10),
		},
	}, cs)
	assert.ErrorIs(t, err, layout.ErrOverflow)
}

func TestRigidOverflowClampsToMax(t *testing.T) {
	box, err := layout.Layout(layout.Flex{
		Axis: layout.Horizontal,
		Children: []layout.FlexChild{
			rigidBox(100, 10), rigidBox(100, 10),
		},
	}, viewport(100, 100))
	require.NoError(t, err)
	// Children overflow to the right; the flex itself stays within the
	// incoming maximum.
	assert.Equal(t, float32(100), box.Size.X)
	assert.Equal(t, float32(0), box.Children[0].Pos.X)
	assert.Equal(t, float32(100), box.Children[1].Pos.X)
}

func TestSpaceBetweenSingleChild(t *testing.T) {
	box, err := layout.Layout(layout.Flex{
		Axis:     layout.Horizontal,
		Spacing:  layout.SpaceBetween,
		Children: []layout.FlexChild{rigidBox(100, 10)},
	}, viewport(500, 100))
	require.NoError(t, err)
	assert.Equal(t, float32(0), box.Children[0].Pos.X)
	assert.Equal(t, float32(500), box.Size.X)
}

func TestEmptyFlex(t *testing.T) {
	box, err := layout.Layout(layout.Flex{Axis: layout.Vertical}, viewport(500, 500))
	require.NoError(t, err)
	assert.Equal(t, f32.Point{}, box.Size)
	assert.Empty(t, box.Children)
}

func TestFlexRejectsMalformedChildren(t *testing.T) {
	_, err := layout.Layout(layout.Flex{
		Children: []layout.FlexChild{layout.Rigid(nil)},
	}, viewport(100, 100))
	assert.ErrorIs(t, err, layout.ErrWidget)

	_, err = layout.Layout(layout.Flex{
		Children: []layout.FlexChild{layout.Flexed(-1, layout.Container{})},
	}, viewport(100, 100))
	assert.ErrorIs(t, err, layout.ErrWidget)

	_, err = layout.Layout(layout.Flex{
		Children: []layout.FlexChild{layout.Flexed(float32(math.NaN()), layout.Container{})},
	}, viewport(100, 100))
	assert.ErrorIs(t, err, layout.ErrWidget)
}

func TestNestedFlex(t *testing.T) {
	inner := layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Stretch,
		Children: []layout.FlexChild{
			layout.Rigid(layout.Container{Height: layout.Px(30), Color: red}),
			layout.Flexed(1, layout.Container{Color: blue}),
		},
	}
	box, err := layout.Layout(layout.Flex{
		Axis: layout.Horizontal,
		Children: []layout.FlexChild{
			rigidBox(150, 400),
			layout.Flexed(1, inner),
		},
	}, viewport(800, 400))
	require.NoError(t, err)
	require.Len(t, box.Children, 2)
	content := box.Children[1]
	assert.Equal(t, float32(650), content.Size.X)
	require.Len(t, content.Children, 2)
	assert.Equal(t, float32(30), content.Children[0].Size.Y)
	assert.Equal(t, float32(370), content.Children[1].Size.Y)
	assert.Equal(t, float32(650), content.Children[1].Size.X)
}

func BenchmarkFlexLayout(b *testing.B) {
	children := make([]layout.FlexChild, 0, 20)
	for i := 0; i < 10; i++ {
		children = append(children,
			layout.Rigid(layout.UniformInset(2, layout.Container{Width: layout.Px(20), Height: layout.Px(20)})),
			layout.Flexed(1, layout.Container{}),
		)
	}
	root := layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween, Children: children}
	cs := viewport(1920, 1080)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := layout.Layout(root, cs); err != nil {
			b.Fatal(err)
		}
	}
}
