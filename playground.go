package playground

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Renderer is the drawing surface the playground paints onto each tick.
type Renderer interface {
	Clear(c Color)
	DrawRect(bounds Rect, c Color, cornerRadius float64)
	DrawText(text string, c Color, anchor Vec2)
	Present()
}

// State owns the hand, the starting snapshot, the selection and the reset
// control. All mutation happens inside Tick.
type State struct {
	layout   Layout
	hand     Hand
	start    Hand
	sel      Selection
	pointer  Vec2
	reset    *ResetControl
	tickRate int
	tick     uint64
	width    int
	height   int

	sink   EventSink
	logOut io.Writer
	debug  bool
	stats  tickStats

	landedBuf []uint32
}

// NewState validates cfg, deals the starting hand and snapshots it for reset.
func NewState(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	hand, err := GenerateHand(cfg.Layout, NewRand(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("generate hand: %w", err)
	}
	w, h := cfg.Layout.WindowSize()
	return &State{
		layout:   cfg.Layout,
		hand:     hand,
		start:    hand.Clone(),
		sel:      noSelection,
		reset:    NewResetControl(cfg.Layout.ResetBounds()),
		tickRate: cfg.TickRate,
		width:    w,
		height:   h,
		logOut:   os.Stderr,
		debug:    cfg.Debug,
	}, nil
}

// Hand returns the current hand in paint order. The returned slice MUST NOT
// be retained across ticks.
func (s *State) Hand() Hand {
	return s.hand
}

// StartingHand returns a copy of the snapshot used by Reset.
func (s *State) StartingHand() Hand {
	return s.start.Clone()
}

// Selection returns the current selection state.
func (s *State) Selection() Selection {
	return s.sel
}

// Selected returns the selected card, or nil.
func (s *State) Selected() *Card {
	if s.sel.Index < 0 || s.sel.Index >= len(s.hand) {
		return nil
	}
	return &s.hand[s.sel.Index]
}

// Pointer returns the last known pointer position.
func (s *State) Pointer() Vec2 {
	return s.pointer
}

// ResetControl returns the reset button.
func (s *State) ResetControl() *ResetControl {
	return s.reset
}

// Ticks returns the number of completed ticks.
func (s *State) Ticks() uint64 {
	return s.tick
}

// Size returns the window size derived from the layout.
func (s *State) Size() (width, height int) {
	return s.width, s.height
}

// SetEventSink sets the optional card event observer.
func (s *State) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetLogOutput redirects diagnostics. Defaults to os.Stderr.
func (s *State) SetLogOutput(w io.Writer) {
	s.logOut = w
}

// SetDebugMode enables or disables per-second tick statistics.
func (s *State) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Logf writes a prefixed diagnostic line.
func (s *State) Logf(format string, args ...any) {
	if s.logOut == nil {
		return
	}
	_, _ = fmt.Fprintf(s.logOut, "[playground] "+format+"\n", args...)
}

// Tick runs one frame of simulation: every event is resolved in order, then
// the dragged card follows the pointer, then every other card falls. pointer
// is the current pointer position as reported by the input source. Tick
// reports true when a quit event was seen; the remaining events and the
// simulation step are skipped in that case.
func (s *State) Tick(events []Event, pointer Vec2) (quit bool) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	for _, e := range events {
		if s.handleEvent(e) {
			return true
		}
	}
	s.pointer = pointer
	s.trackDrag()

	if s.debug {
		s.stats.inputTime += time.Since(t0)
		t0 = time.Now()
	}

	skip := -1
	if s.sel.Dragging {
		skip = s.sel.Index
	}
	s.landedBuf = Integrate(s.hand, skip, Ground, s.landedBuf[:0])
	for _, id := range s.landedBuf {
		if i := s.hand.IndexOf(id); i >= 0 {
			s.emit(CardLanded, id, s.hand[i].Bounds.X, s.hand[i].Bounds.Y)
		}
	}
	s.reset.update(1 / float32(s.tickRate))

	if s.debug {
		s.stats.integrateTime += time.Since(t0)
		s.stats.events += len(events)
	}
	s.tick++
	if s.debug && s.tick%uint64(s.tickRate) == 0 {
		s.debugLog()
	}
	return false
}

// Draw paints the frame: background, cards back to front, the reset control,
// the instruction label, then presents.
func (s *State) Draw(r Renderer) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	r.Clear(BackgroundColor)
	for i := range s.hand {
		r.DrawRect(s.hand[i].Bounds, s.hand[i].Color, CornerRadius)
	}
	b := s.reset
	r.DrawRect(b.Bounds, b.FillColor(), CornerRadius)
	r.DrawText(b.Label, TextColor, b.Bounds.Center())
	r.DrawText(Instructions, TextColor, Vec2{X: float64(s.width / 2), Y: InstructionsY})
	r.Present()

	if s.debug {
		s.stats.drawTime += time.Since(t0)
	}
}

func (s *State) emit(t CardEventType, id uint32, x, y float64) {
	if s.debug {
		s.stats.cardEvents++
	}
	if s.sink == nil {
		return
	}
	s.sink.EmitCardEvent(CardEvent{Type: t, Tick: s.tick, CardID: id, X: x, Y: y})
}
