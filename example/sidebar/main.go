// SPDX-License-Identifier: Unlicense OR MIT

// Command sidebar lays out an editor-like sidebar scene once and
// prints the emitted primitives.
package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"golang.org/x/image/colornames"

	"boxen.org/app"
	"boxen.org/layout"
)

func main() {
	driver := app.NewDriver(app.AppFunc(sidebar))
	prims, err := driver.Frame(0)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, p := range prims {
		fmt.Printf("%v #%02x%02x%02x%02x\n", p.Bounds, p.Color.R, p.Color.G, p.Color.B, p.Color.A)
	}
}

// sidebar is an icon rail, a navigation pane, the main content area
// taking the remaining space, and a fixed detail panel.
func sidebar(_ time.Duration) layout.Widget {
	rail := layout.Container{
		Width: layout.Px(40),
		Color: nrgba(colornames.Darkslategray),
		Child: layout.UniformInset(5, layout.Flex{
			Axis:      layout.Vertical,
			Alignment: layout.Middle,
			Children: []layout.FlexChild{
				layout.Rigid(icon()),
				layout.Rigid(icon()),
				layout.Rigid(icon()),
			},
		}),
	}
	nav := layout.Container{
		Width: layout.Px(150),
		Color: nrgba(colornames.Dimgray),
		Child: layout.Flex{
			Axis:      layout.Vertical,
			Alignment: layout.Stretch,
			Children: []layout.FlexChild{
				layout.Rigid(layout.Container{
					Height: layout.Px(25),
					Color:  nrgba(colornames.Gray),
				}),
			},
		},
	}
	content := layout.Container{
		Color: nrgba(colornames.Black),
	}
	detail := layout.Container{
		Width: layout.Px(175),
		Color: nrgba(colornames.Dimgray),
		Child: layout.Flex{
			Axis:      layout.Vertical,
			Alignment: layout.Stretch,
			Children: []layout.FlexChild{
				layout.Rigid(layout.Container{
					Height: layout.Px(100),
					Color:  nrgba(colornames.Gray),
				}),
			},
		},
	}
	return layout.Flex{
		Axis:      layout.Horizontal,
		Alignment: layout.Stretch,
		Children: []layout.FlexChild{
			layout.Rigid(rail),
			layout.Rigid(nav),
			layout.Flexed(1, content),
			layout.Rigid(detail),
		},
	}
}

func icon() layout.Widget {
	return layout.Inset{
		Bottom: 5,
		Child: layout.Container{
			Width:  layout.Px(30),
			Height: layout.Px(30),
			Color:  nrgba(colornames.Slategray),
		},
	}
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
