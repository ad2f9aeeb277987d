// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"boxen.org/f32"
)

// layStack measures every child against the loose incoming
// constraints and sizes the stack to the largest, clamped into the
// incoming range. Children share the origin and paint in order.
func layStack(s Stack, cs Constraints) (Box, error) {
	children := make([]Box, len(s.Children))
	var maxSZ f32.Point
	for i, ch := range s.Children {
		if ch == nil {
			return Box{}, fmt.Errorf("%w: nil stack child", ErrWidget)
		}
		b, err := lay(ch, Constraints{Max: cs.Max})
		if err != nil {
			return Box{}, err
		}
		children[i] = b
		if b.Size.X > maxSZ.X {
			maxSZ.X = b.Size.X
		}
		if b.Size.Y > maxSZ.Y {
			maxSZ.Y = b.Size.Y
		}
	}
	return Box{Size: cs.Constrain(maxSZ), Children: children}, nil
}
