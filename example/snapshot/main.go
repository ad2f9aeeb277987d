// SPDX-License-Identifier: Unlicense OR MIT

// Command snapshot runs the frame loop for a second of animation,
// rasterizes every frame through gg and saves the last one as a PNG.
// The scene follows the pointer, which a second goroutine moves while
// the loop runs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
	"golang.org/x/sync/errgroup"

	"boxen.org/app"
	"boxen.org/f32"
	"boxen.org/io/input"
	"boxen.org/io/pointer"
	"boxen.org/layout"
	"boxen.org/paint"
)

func main() {
	configPath := flag.String("config", "", "TOML config `file`")
	out := flag.String("o", "snapshot.png", "output `file`")
	flag.Parse()

	cfg := app.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = app.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if err := run(cfg, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg app.Config, out string) error {
	var router *input.Router
	scene := func(elapsed time.Duration) layout.Widget {
		return cursorScene(router, elapsed)
	}
	driver := app.NewDriver(app.AppFunc(scene), app.WithConfig(cfg))
	router = driver.Router()
	loop := app.NewLoop(driver, cfg.FrameInterval())

	dc := gg.NewContext(int(cfg.Width), int(cfg.Height))
	defer dc.Close()

	frames := cfg.FPS // one second of animation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n := 0
		return loop.Run(ctx, func(prims []paint.Primitive) error {
			if err := render(dc, prims); err != nil {
				return err
			}
			if n++; n >= frames {
				cancel()
			}
			return nil
		})
	})
	g.Go(func() error {
		// Sweep the pointer across the viewport diagonal.
		ticker := time.NewTicker(cfg.FrameInterval())
		defer ticker.Stop()
		pos := f32.Point{}
		step := f32.Pt(cfg.Width, cfg.Height).Mul(1 / float32(frames))
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				pos = pos.Add(step)
				loop.Queue(pointer.Event{Kind: pointer.Move, Position: pos})
			}
		}
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return dc.SavePNG(out)
}

// cursorScene is a centered column of bars over a dark backdrop, plus
// a small box tracking the pointer.
func cursorScene(router *input.Router, elapsed time.Duration) layout.Widget {
	pulse := 50 * float32(math.Sin(2*elapsed.Seconds()))
	bar := func(w float32, c color.RGBA) layout.FlexChild {
		return layout.Rigid(layout.Container{
			Width:  layout.Px(w),
			Height: layout.Px(40),
			Color:  nrgba(c),
		})
	}
	backdrop := layout.Container{
		Color: nrgba(colornames.Midnightblue),
		Child: layout.Flex{
			Axis:      layout.Vertical,
			Spacing:   layout.SpaceEvenly,
			Alignment: layout.Middle,
			Children: []layout.FlexChild{
				bar(200+pulse, colornames.Steelblue),
				bar(150+pulse, colornames.Skyblue),
				bar(100+pulse, colornames.Aliceblue),
			},
		},
	}
	cursor := layout.Inset{
		Top:  router.Position().Y,
		Left: router.Position().X,
		Child: layout.Container{
			Width:  layout.Px(10),
			Height: layout.Px(10),
			Color:  nrgba(colornames.Orangered),
		},
	}
	return layout.Stack{Children: []layout.Widget{backdrop, cursor}}
}

func render(dc *gg.Context, prims []paint.Primitive) error {
	dc.Clear()
	for _, p := range prims {
		dc.SetColor(p.Color)
		dc.DrawRectangle(
			float64(p.Bounds.Min.X), float64(p.Bounds.Min.Y),
			float64(p.Bounds.Dx()), float64(p.Bounds.Dy()))
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
