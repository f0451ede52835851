package playground

import "image/color"

// Color is an RGB triple with 8-bit channels. Cards are always opaque.
type Color struct {
	R, G, B uint8
}

// RGBA converts c to an opaque color.RGBA for drawing backends.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Lerp blends c toward other by t in [0, 1]. Values outside the range are clamped.
func (c Color) Lerp(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color{R: mix(c.R, other.R), G: mix(c.G, other.G), B: mix(c.B, other.B)}
}

var (
	ColorWhite = Color{255, 255, 255}
	ColorBlack = Color{0, 0, 0}
	ColorGray  = Color{128, 128, 128}
)

// Vec2 is a 2D vector used for positions, offsets and velocities.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle. The left and top
// edges are inside, the right and bottom edges are not, so two rectangles that
// share an edge never both contain the same point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// TopLeft returns the rectangle's origin corner.
func (r Rect) TopLeft() Vec2 { return Vec2{r.X, r.Y} }

// Center returns the rectangle's midpoint.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// Bottom returns the Y coordinate of the lower edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventQuit         EventType = iota // window closed or quit requested
	EventPointerDown                   // primary button pressed at (X, Y)
	EventPointerUp                     // primary button released
	EventPointerMoved                  // pointer moved to (X, Y)
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventPointerMoved:
		return "pointer-moved"
	default:
		return "unknown"
	}
}

// Event is a single input event drained from an InputSource. X and Y are only
// meaningful for EventPointerDown and EventPointerMoved.
type Event struct {
	Type EventType
	X, Y float64
}

// Pos returns the event's pointer position.
func (e Event) Pos() Vec2 { return Vec2{e.X, e.Y} }
