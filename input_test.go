package playground

import (
	"io"
	"testing"
)

// newTestState builds the stock five-card playground with a fixed seed.
func newTestState(t *testing.T) *State {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	s, err := NewState(cfg)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	s.SetLogOutput(io.Discard)
	return s
}

func down(x, y float64) Event  { return Event{Type: EventPointerDown, X: x, Y: y} }
func moved(x, y float64) Event { return Event{Type: EventPointerMoved, X: x, Y: y} }
func up() Event                { return Event{Type: EventPointerUp} }

// --- Pick-up ---

func TestPointerDownSelectsCardAndPromotes(t *testing.T) {
	s := newTestState(t)
	// Card index 2 spans x in [475, 675), y in [300, 580).
	target := s.Hand()[2].ID
	s.Tick([]Event{down(500, 350)}, Vec2{500, 350})

	sel := s.Selection()
	if !sel.Dragging || sel.Index != 4 || sel.CardID != target {
		t.Fatalf("selection = %+v, want dragging index 4 card %d", sel, target)
	}
	if sel.GrabOffset != (Vec2{25, 50}) {
		t.Errorf("GrabOffset = %v, want (25, 50)", sel.GrabOffset)
	}
	if got := ids(s.Hand()); !equalIDs(got, []uint32{1, 2, 4, 5, 3}) {
		t.Errorf("order = %v, want [1 2 4 5 3]", got)
	}
	if c := s.Selected(); c == nil || c.Bounds.X != 475 || c.Bounds.Y != 300 {
		t.Errorf("selected card = %+v, want at (475, 300)", c)
	}
}

func TestPointerDownPicksFrontmostOverlap(t *testing.T) {
	s := newTestState(t)
	// Drag card 1 (index 0) so that it covers part of card 2.
	s.Tick([]Event{down(30, 310)}, Vec2{30, 310})
	s.Tick([]Event{moved(240, 310)}, Vec2{240, 310})
	s.Tick([]Event{up()}, Vec2{240, 310})

	// Card 1 is now frontmost and spans x in [235, 435); card 2 spans [250, 450).
	front := s.Hand()[4]
	if front.ID != 1 {
		t.Fatalf("frontmost card = %d, want 1", front.ID)
	}
	p := Vec2{300, front.Bounds.Y + 10}
	s.Tick([]Event{down(p.X, p.Y)}, p)
	if got := s.Selected(); got == nil || got.ID != 1 {
		t.Fatalf("selected %+v, want card 1", got)
	}
	s.Tick([]Event{up()}, p)

	// Promote card 2 by clicking where only it is visible, then the shared
	// region resolves to card 2.
	q := Vec2{440, s.Hand()[s.Hand().IndexOf(2)].Bounds.Y + 10}
	s.Tick([]Event{down(q.X, q.Y)}, q)
	if got := s.Selected(); got == nil || got.ID != 2 {
		t.Fatalf("selected %+v, want card 2", got)
	}
	s.Tick([]Event{up()}, q)
	if i := s.Hand().TopmostAt(Vec2{300, s.Hand()[4].Bounds.Y + 10}); s.Hand()[i].ID != 2 {
		t.Errorf("overlap resolves to card %d, want 2", s.Hand()[i].ID)
	}
}

func TestPointerDownOnEmptySpaceChangesNothing(t *testing.T) {
	s := newTestState(t)
	before := append(Hand(nil), s.Hand()...)
	s.handleEvent(down(5, 5))
	if s.Selection().Active() {
		t.Error("selection should stay empty")
	}
	for i := range before {
		if s.Hand()[i] != before[i] {
			t.Errorf("card %d changed: %+v -> %+v", i, before[i], s.Hand()[i])
		}
	}
}

// --- Dragging ---

func TestDraggedCardTracksPointer(t *testing.T) {
	s := newTestState(t)
	s.Tick([]Event{down(500, 350)}, Vec2{500, 350})

	path := []Vec2{{520, 340}, {600, 200}, {100, 900}, {1100, 990}}
	for _, p := range path {
		s.Tick([]Event{moved(p.X, p.Y)}, p)
		c := s.Selected()
		if c == nil {
			t.Fatal("selection lost while dragging")
		}
		want := p.Sub(Vec2{25, 50})
		if c.Bounds.TopLeft() != want {
			t.Errorf("pointer %v: card at %v, want %v", p, c.Bounds.TopLeft(), want)
		}
		if c.Velocity != (Vec2{}) {
			t.Errorf("pointer %v: velocity %v, want zero", p, c.Velocity)
		}
	}
}

func TestDraggedCardHeldStillDoesNotFall(t *testing.T) {
	s := newTestState(t)
	s.Tick([]Event{down(500, 350)}, Vec2{500, 350})
	for i := 0; i < 30; i++ {
		s.Tick(nil, Vec2{500, 350})
	}
	if c := s.Selected(); c.Bounds.Y != 300 || c.Velocity.Y != 0 {
		t.Errorf("held card y=%v vy=%v, want 300, 0", c.Bounds.Y, c.Velocity.Y)
	}
}

func TestReleaseClearsSelectionAndDropsFromRest(t *testing.T) {
	s := newTestState(t)
	s.Tick([]Event{down(500, 350)}, Vec2{500, 350})
	s.Tick([]Event{moved(500, 150)}, Vec2{500, 150})
	id := s.Selected().ID

	s.Tick([]Event{up()}, Vec2{500, 150})
	if s.Selection().Active() || s.Selection().Dragging {
		t.Fatalf("selection = %+v, want cleared", s.Selection())
	}
	c := s.Hand()[s.Hand().IndexOf(id)]
	// Released at y=100 and integrated once on the release tick.
	if c.Bounds.Y != 100.5 || c.Velocity.Y != Gravity {
		t.Errorf("after release y=%v vy=%v, want 100.5, %v", c.Bounds.Y, c.Velocity.Y, Gravity)
	}

	for i := 0; i < 200; i++ {
		s.Tick(nil, Vec2{500, 150})
	}
	c = s.Hand()[s.Hand().IndexOf(id)]
	if c.Bounds.Y != 720 || c.Velocity.Y != 0 {
		t.Errorf("released card y=%v vy=%v, want 720, 0", c.Bounds.Y, c.Velocity.Y)
	}
}

func TestPointerUpWithoutDragIsHarmless(t *testing.T) {
	s := newTestState(t)
	s.handleEvent(up())
	if s.Selection().Active() {
		t.Error("selection should stay empty")
	}
}

// --- Reset control ---

func TestResetControlRestoresSnapshot(t *testing.T) {
	s := newTestState(t)
	start := s.StartingHand()

	// Scramble: drag a card, let everything fall for a while.
	s.Tick([]Event{down(500, 350)}, Vec2{500, 350})
	s.Tick([]Event{moved(900, 700)}, Vec2{900, 700})
	s.Tick([]Event{up()}, Vec2{900, 700})
	for i := 0; i < 20; i++ {
		s.Tick(nil, Vec2{900, 700})
	}

	// The reset control spans [575, 775) x [100, 150); no card is up there.
	s.handleEvent(down(600, 120))

	if s.Selection().Active() {
		t.Error("reset should clear the selection")
	}
	got := s.Hand()
	if len(got) != len(start) {
		t.Fatalf("hand size %d, want %d", len(got), len(start))
	}
	for i := range start {
		if got[i].ID != start[i].ID || got[i].Bounds != start[i].Bounds || got[i].Color != start[i].Color {
			t.Errorf("card %d = %+v, want %+v", i, got[i], start[i])
		}
		if got[i].Velocity != (Vec2{}) {
			t.Errorf("card %d velocity %v, want zero", i, got[i].Velocity)
		}
	}
}

func TestResetControlCoveredByCardPicksCard(t *testing.T) {
	s := newTestState(t)
	// Drag card 3 up over the reset control.
	s.Tick([]Event{down(500, 350)}, Vec2{500, 350})
	s.Tick([]Event{moved(625, 170)}, Vec2{625, 170})
	s.Tick([]Event{up()}, Vec2{625, 170})
	before := s.Hand()[4].Bounds

	s.Tick([]Event{down(610, 130)}, Vec2{610, 130})
	if c := s.Selected(); c == nil || c.ID != 3 {
		t.Fatalf("selected %+v, want card 3 covering the control", c)
	}
	if s.Hand()[4].Bounds.X != before.X {
		t.Error("hand was reset instead of picking the covering card")
	}
}

func TestResetDuringDragClearsSelection(t *testing.T) {
	s := newTestState(t)
	s.Tick([]Event{down(500, 350)}, Vec2{500, 350})
	s.Reset()
	if s.Selection().Active() {
		t.Fatal("Reset should clear the selection")
	}
	s.Tick(nil, Vec2{700, 700})
	if got := s.Hand()[2]; got.ID != 3 || got.Bounds.X != 475 {
		t.Errorf("card at index 2 = %+v, want card 3 at x=475", got)
	}
}

func TestDragReResolvesIndexAfterReorder(t *testing.T) {
	s := newTestState(t)
	s.Tick([]Event{down(500, 350)}, Vec2{500, 350})
	// Move the dragged card (ID 3, index 4) to the back behind the resolver's back.
	s.hand[0], s.hand[4] = s.hand[4], s.hand[0]

	s.Tick([]Event{moved(800, 800)}, Vec2{800, 800})
	if s.Selection().Index != 0 {
		t.Fatalf("selection index = %d, want 0", s.Selection().Index)
	}
	if c := s.Hand()[0]; c.ID != 3 || c.Bounds.TopLeft() != (Vec2{775, 750}) {
		t.Errorf("dragged card = %+v, want card 3 at (775, 750)", c)
	}
}

// --- Quit ---

func TestQuitStopsTickBeforeLaterEvents(t *testing.T) {
	s := newTestState(t)
	quit := s.Tick([]Event{{Type: EventQuit}, down(500, 350)}, Vec2{500, 350})
	if !quit {
		t.Fatal("Tick should report quit")
	}
	if s.Selection().Active() {
		t.Error("events after quit must not be processed")
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d, want 0", s.Ticks())
	}
	if s.Hand()[0].Bounds.Y != 300 {
		t.Error("cards must not be integrated on the quit tick")
	}
}
