package playground

import (
	"fmt"
	"time"
)

// tickStats accumulates timings between debug reports. Only populated when
// debug mode is on.
type tickStats struct {
	inputTime     time.Duration
	integrateTime time.Duration
	drawTime      time.Duration
	events        int
	cardEvents    int
}

// debugLog prints the accumulated stats for the last second of ticks and
// starts a new window.
func (s *State) debugLog() {
	st := s.stats
	n := time.Duration(s.tickRate)
	s.Logf("tick %d | input: %v | integrate: %v | draw: %v (avg per tick)",
		s.tick, st.inputTime/n, st.integrateTime/n, st.drawTime/n)
	sel := "none"
	if c := s.Selected(); c != nil {
		sel = cardLabel(c.ID)
	}
	s.Logf("events: %d | card events: %d | selected: %s | hand: %d cards",
		st.events, st.cardEvents, sel, len(s.hand))
	s.stats = tickStats{}
}

func cardLabel(id uint32) string {
	return fmt.Sprintf("card#%d", id)
}
