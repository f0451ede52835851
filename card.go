package playground

// Card is a single draggable rectangle. Width and height never change after
// generation.
type Card struct {
	ID       uint32
	Bounds   Rect
	Color    Color
	Velocity Vec2
}

// Hand is an ordered collection of cards. Order is paint order: the last card
// is drawn last and is therefore frontmost for hit testing.
type Hand []Card

// Clone returns an independent copy of h with every velocity zeroed.
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	for i := range out {
		out[i].Velocity = Vec2{}
	}
	return out
}

// IndexOf returns the position of the card with the given ID, or -1.
func (h Hand) IndexOf(id uint32) int {
	for i := range h {
		if h[i].ID == id {
			return i
		}
	}
	return -1
}

// TopmostAt returns the index of the frontmost card containing p, or -1.
func (h Hand) TopmostAt(p Vec2) int {
	// Iterate backward (reverse paint order): frontmost card first.
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].Bounds.ContainsPoint(p) {
			return i
		}
	}
	return -1
}

// MoveToFront moves the card at index i to the end of the hand, keeping the
// relative order of the others, and returns its new index.
func (h Hand) MoveToFront(i int) int {
	last := len(h) - 1
	if i < 0 || i >= last {
		return i
	}
	c := h[i]
	copy(h[i:], h[i+1:])
	h[last] = c
	return last
}
