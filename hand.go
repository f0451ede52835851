package playground

import (
	"math/rand/v2"
	"time"
)

// NewRand returns the generator used for card colors. A zero seed is replaced
// with one derived from the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GenerateHand deals layout.HandSize cards in a horizontal row starting at
// the layout origin, each with a random color and zero velocity. Card IDs run
// from 1 to HandSize in deal order.
func GenerateHand(layout Layout, rng *rand.Rand) (Hand, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	hand := make(Hand, layout.HandSize)
	for i := range hand {
		hand[i] = Card{
			ID: uint32(i + 1),
			Bounds: Rect{
				X:      layout.OriginX + float64(i)*(layout.CardWidth+layout.Spacing),
				Y:      layout.OriginY,
				Width:  layout.CardWidth,
				Height: layout.CardHeight,
			},
			Color: randomColor(rng),
		}
	}
	return hand, nil
}

// randomColor picks each channel uniformly from [0, 255).
func randomColor(rng *rand.Rand) Color {
	return Color{
		R: uint8(rng.IntN(255)),
		G: uint8(rng.IntN(255)),
		B: uint8(rng.IntN(255)),
	}
}
