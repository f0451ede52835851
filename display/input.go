package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/playground"
)

// Input polls Ebitengine once per Drain and converts what changed since the
// previous tick into playground events. The left mouse button and the first
// active touch both act as the pointer.
type Input struct {
	pointer playground.Vec2
	moved   bool
	touch   ebiten.TouchID
	touched bool
	events  []playground.Event
	tids    []ebiten.TouchID

	// OnScreenshot is called when F12 is pressed.
	OnScreenshot func(label string)
}

// Drain returns this tick's events. Must be called from ebiten.Game.Update.
func (in *Input) Drain() []playground.Event {
	in.events = in.events[:0]

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return append(in.events, playground.Event{Type: playground.EventQuit})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) && in.OnScreenshot != nil {
		in.OnScreenshot("manual")
	}

	in.pollMouse()
	in.pollTouch()
	return in.events
}

// Pointer returns the last polled pointer position.
func (in *Input) Pointer() playground.Vec2 {
	return in.pointer
}

func (in *Input) pollMouse() {
	mx, my := ebiten.CursorPosition()
	in.move(float64(mx), float64(my))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.press()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.release()
	}
}

func (in *Input) pollTouch() {
	if in.touched {
		if inpututil.IsTouchJustReleased(in.touch) {
			in.touched = false
			in.release()
			return
		}
		tx, ty := ebiten.TouchPosition(in.touch)
		in.move(float64(tx), float64(ty))
		return
	}
	in.tids = inpututil.AppendJustPressedTouchIDs(in.tids[:0])
	if len(in.tids) == 0 {
		return
	}
	in.touch = in.tids[0]
	in.touched = true
	tx, ty := ebiten.TouchPosition(in.touch)
	in.move(float64(tx), float64(ty))
	in.press()
}

func (in *Input) move(x, y float64) {
	p := playground.Vec2{X: x, Y: y}
	if p == in.pointer && in.moved {
		return
	}
	in.pointer = p
	in.moved = true
	in.events = append(in.events, playground.Event{Type: playground.EventPointerMoved, X: x, Y: y})
}

func (in *Input) press() {
	in.events = append(in.events, playground.Event{
		Type: playground.EventPointerDown, X: in.pointer.X, Y: in.pointer.Y,
	})
}

func (in *Input) release() {
	in.events = append(in.events, playground.Event{Type: playground.EventPointerUp})
}
