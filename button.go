package playground

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// highlightDuration is how long, in seconds, the hover highlight takes to fade
// in or out.
const highlightDuration = 0.15

// ResetControl is the clickable button that restores the starting hand. Its
// fill fades toward Highlight while the pointer hovers over it.
type ResetControl struct {
	Bounds    Rect
	Label     string
	Color     Color
	Highlight Color

	hovered bool
	mix     float64
	tween   *gween.Tween
}

// NewResetControl creates a reset control with the stock colors and label.
func NewResetControl(bounds Rect) *ResetControl {
	return &ResetControl{
		Bounds:    bounds,
		Label:     ButtonLabel,
		Color:     ButtonColor,
		Highlight: ButtonHighlightColor,
	}
}

// Hovered reports whether the pointer was over the control at the last hover
// update.
func (b *ResetControl) Hovered() bool {
	return b.hovered
}

// setHover starts a fade when the hover state flips.
func (b *ResetControl) setHover(p Vec2) {
	over := b.Bounds.ContainsPoint(p)
	if over == b.hovered {
		return
	}
	b.hovered = over
	target := float32(0)
	if over {
		target = 1
	}
	b.tween = gween.New(float32(b.mix), target, highlightDuration, ease.OutQuad)
}

// update advances the highlight fade by dt seconds.
func (b *ResetControl) update(dt float32) {
	if b.tween == nil {
		return
	}
	v, done := b.tween.Update(dt)
	b.mix = float64(v)
	if done {
		b.tween = nil
	}
}

// FillColor returns the color the control should be drawn with this frame.
func (b *ResetControl) FillColor() Color {
	return b.Color.Lerp(b.Highlight, b.mix)
}
