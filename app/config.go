// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"boxen.org/f32"
)

// Config holds the host-facing driver settings. It maps directly to a
// TOML document so hosts can keep window settings next to the binary.
type Config struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Title  string  `toml:"title"`
	// FPS is the target frame rate. The frame interval derived from
	// it doubles as the frame budget.
	FPS int `toml:"fps"`
}

// DefaultConfig returns the default driver configuration: an 800x600
// viewport at 60 Hz.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		FPS:    60,
	}
}

// LoadConfig reads a TOML config from path on top of the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("app: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("app: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports a config the driver cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("app: config: viewport %gx%g not positive", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("app: config: fps %d not positive", c.FPS)
	}
	return nil
}

// Viewport returns the drawable size.
func (c Config) Viewport() f32.Point {
	return f32.Point{X: c.Width, Y: c.Height}
}

// FrameInterval returns the duration of one frame at the target rate.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
