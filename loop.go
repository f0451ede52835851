package playground

import (
	"errors"
	"time"
)

// Clock paces the loop. Tick blocks until the next frame boundary for the
// given rate in ticks per second.
type Clock interface {
	Tick(rate int)
}

// TickerClock paces ticks against wall time. The first call starts the
// ticker; changing the rate restarts it.
type TickerClock struct {
	ticker *time.Ticker
	rate   int
}

// Tick waits for the next boundary.
func (c *TickerClock) Tick(rate int) {
	if rate <= 0 {
		return
	}
	if c.ticker == nil || c.rate != rate {
		if c.ticker != nil {
			c.ticker.Stop()
		}
		c.ticker = time.NewTicker(time.Second / time.Duration(rate))
		c.rate = rate
	}
	<-c.ticker.C
}

// Stop releases the underlying ticker.
func (c *TickerClock) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// NopClock never waits. Scripted headless runs use it to simulate as fast as
// possible.
type NopClock struct{}

// Tick returns immediately.
func (NopClock) Tick(int) {}

// Loop drives a State with the given collaborators. Each iteration drains
// input, ticks the simulation, draws and then waits for the clock, strictly
// in that order.
type Loop struct {
	State    *State
	Input    InputSource
	Renderer Renderer
	Clock    Clock
}

// Run loops until the input source delivers a quit event. Nothing is drawn on
// the tick that quits.
func (l *Loop) Run() error {
	if l.State == nil || l.Input == nil || l.Renderer == nil {
		return errors.New("loop: state, input and renderer are required")
	}
	clock := l.Clock
	if clock == nil {
		clock = NopClock{}
	}
	for {
		if l.State.Tick(l.Input.Drain(), l.Input.Pointer()) {
			return nil
		}
		l.State.Draw(l.Renderer)
		clock.Tick(l.State.tickRate)
	}
}
