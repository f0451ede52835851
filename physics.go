package playground

// step advances one card by a single tick of semi-implicit Euler integration
// and clamps it to the ground. It reports whether the clamp stopped a card
// that was falling before the step.
func step(c *Card, ground float64) (landed bool) {
	falling := c.Velocity.Y > 0
	c.Velocity.Y += Gravity
	c.Bounds.Y += c.Velocity.Y

	if c.Bounds.Bottom() >= ground {
		c.Bounds.Y = ground - c.Bounds.Height
		c.Velocity.Y = 0
		return falling
	}
	return false
}

// Integrate applies gravity to every card except the one at skip (pass -1 to
// integrate all of them). It returns the IDs of cards that came to rest on the
// ground this tick, appended to landed.
func Integrate(hand Hand, skip int, ground float64, landed []uint32) []uint32 {
	for i := range hand {
		if i == skip {
			continue
		}
		if step(&hand[i], ground) {
			landed = append(landed, hand[i].ID)
		}
	}
	return landed
}
