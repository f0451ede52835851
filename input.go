package playground

// Selection is the open drag session, if any. Index points into the current
// hand and is re-resolved whenever the hand is reordered or replaced.
type Selection struct {
	Index      int // -1 when nothing is selected
	CardID     uint32
	Dragging   bool
	GrabOffset Vec2
}

// noSelection is the cleared selection state.
var noSelection = Selection{Index: -1}

// Active reports whether a card is currently selected.
func (s Selection) Active() bool {
	return s.Index >= 0
}

// --- Event handling ---

// handleEvent runs one input event through the resolver. It reports whether
// the event asked the loop to stop.
func (s *State) handleEvent(e Event) (quit bool) {
	switch e.Type {
	case EventQuit:
		return true
	case EventPointerDown:
		s.pointer = e.Pos()
		s.reset.setHover(s.pointer)
		s.pointerDown(s.pointer)
	case EventPointerUp:
		s.pointerUp()
	case EventPointerMoved:
		s.pointer = e.Pos()
		s.reset.setHover(s.pointer)
	}
	return false
}

// pointerDown picks the frontmost card under p, or resets the hand when p is
// on the reset control and no card covers it. Anywhere else it does nothing.
func (s *State) pointerDown(p Vec2) {
	if i := s.hand.TopmostAt(p); i >= 0 {
		c := s.hand[i]
		idx := s.hand.MoveToFront(i)
		s.sel = Selection{
			Index:      idx,
			CardID:     c.ID,
			Dragging:   true,
			GrabOffset: p.Sub(c.Bounds.TopLeft()),
		}
		s.emit(CardPicked, c.ID, c.Bounds.X, c.Bounds.Y)
		return
	}
	if s.reset.Bounds.ContainsPoint(p) {
		s.Reset()
	}
}

// pointerUp ends the drag session. The card keeps its position and starts
// falling from rest on the next integration step.
func (s *State) pointerUp() {
	if !s.sel.Dragging {
		s.sel = noSelection
		return
	}
	if c := s.Selected(); c != nil {
		s.emit(CardDropped, c.ID, c.Bounds.X, c.Bounds.Y)
	}
	s.sel = noSelection
}

// trackDrag snaps the dragged card to the pointer and keeps it at rest, so no
// momentum survives the release.
func (s *State) trackDrag() {
	if !s.sel.Dragging {
		return
	}
	// Re-resolve in case the hand changed since the selection was made.
	if s.sel.Index >= len(s.hand) || s.hand[s.sel.Index].ID != s.sel.CardID {
		s.sel.Index = s.hand.IndexOf(s.sel.CardID)
		if s.sel.Index < 0 {
			s.sel = noSelection
			return
		}
	}
	c := &s.hand[s.sel.Index]
	tl := s.pointer.Sub(s.sel.GrabOffset)
	c.Bounds.X, c.Bounds.Y = tl.X, tl.Y
	c.Velocity = Vec2{}
}

// Reset replaces the hand with a fresh copy of the starting snapshot and
// clears any selection.
func (s *State) Reset() {
	s.hand = s.start.Clone()
	s.sel = noSelection
	s.emit(HandReset, 0, 0, 0)
}
