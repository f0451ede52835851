package playground

import (
	"errors"
	"fmt"
)

// Physics constants. These are fixed and not part of Config.
const (
	Gravity      = 0.5  // units per tick², added to velocity.y every tick
	ScreenHeight = 1000 // window height; also the ground plane
	Ground       = ScreenHeight
)

// Presentation constants.
const (
	WindowTitle   = "Physics Playground"
	CornerRadius  = 15
	ButtonWidth   = 200
	ButtonHeight  = 50
	ButtonY       = 100
	ButtonLabel   = "Reset Hand"
	Instructions  = "Click and Drag the cards!"
	InstructionsY = 50
	LabelSize     = 30

	DefaultTickRate = 60
)

var (
	ButtonColor          = Color{0, 255, 0}
	ButtonHighlightColor = Color{0, 200, 0}
	BackgroundColor      = ColorWhite
	TextColor            = ColorBlack
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Layout describes where the hand is dealt and how big each card is.
type Layout struct {
	OriginX, OriginY      float64
	HandSize              int
	Spacing               float64
	CardWidth, CardHeight float64
}

// DefaultLayout returns the five-card layout the playground starts with.
func DefaultLayout() Layout {
	return Layout{
		OriginX:    25,
		OriginY:    300,
		HandSize:   5,
		Spacing:    25,
		CardWidth:  200,
		CardHeight: 280, // int(200 * 1.4)
	}
}

// Validate rejects non-positive sizes and negative spacing. Nothing is clamped.
func (l Layout) Validate() error {
	if l.HandSize <= 0 {
		return fmt.Errorf("%w: hand size %d must be positive", ErrInvalidConfig, l.HandSize)
	}
	if l.CardWidth <= 0 {
		return fmt.Errorf("%w: card width %v must be positive", ErrInvalidConfig, l.CardWidth)
	}
	if l.CardHeight <= 0 {
		return fmt.Errorf("%w: card height %v must be positive", ErrInvalidConfig, l.CardHeight)
	}
	if l.Spacing < 0 {
		return fmt.Errorf("%w: spacing %v must not be negative", ErrInvalidConfig, l.Spacing)
	}
	if l.CardHeight > Ground {
		return fmt.Errorf("%w: card height %v exceeds ground %d", ErrInvalidConfig, l.CardHeight, Ground)
	}
	return nil
}

// WindowSize returns the window dimensions derived from the layout:
// one spacing gap on each side of every card.
func (l Layout) WindowSize() (width, height int) {
	n := float64(l.HandSize)
	return int(l.CardWidth*n + l.Spacing*(n+1)), ScreenHeight
}

// ResetBounds returns the reset control rectangle, anchored at the horizontal
// middle of the window.
func (l Layout) ResetBounds() Rect {
	w, _ := l.WindowSize()
	return Rect{X: float64(w / 2), Y: ButtonY, Width: ButtonWidth, Height: ButtonHeight}
}

// Config holds everything needed to start a playground.
type Config struct {
	Layout Layout

	// TickRate is the target number of ticks per second.
	TickRate int

	// Seed drives card color generation. Zero picks a random seed.
	Seed uint64

	// Debug enables per-second tick statistics on the log writer.
	Debug bool

	// ShowFPS draws the FPS/TPS overlay in the window backend.
	ShowFPS bool

	// ScreenshotDir is where PNG screenshots are written.
	ScreenshotDir string
}

// DefaultConfig returns the stock playground configuration.
func DefaultConfig() Config {
	return Config{
		Layout:        DefaultLayout(),
		TickRate:      DefaultTickRate,
		ScreenshotDir: "screenshots",
	}
}

// Validate checks the layout and tick rate.
func (c Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidConfig, c.TickRate)
	}
	return nil
}
