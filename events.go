package playground

// CardEventType identifies a change in the hand worth telling observers about.
type CardEventType uint8

const (
	CardPicked  CardEventType = iota // a card was grabbed and promoted to the front
	CardDropped                      // the pointer was released, ending a drag
	CardLanded                       // a falling card hit the ground and stopped
	HandReset                        // the hand was restored from the starting snapshot
)

func (t CardEventType) String() string {
	switch t {
	case CardPicked:
		return "picked"
	case CardDropped:
		return "dropped"
	case CardLanded:
		return "landed"
	case HandReset:
		return "reset"
	default:
		return "unknown"
	}
}

// CardEvent carries one hand change. CardID is zero for HandReset.
type CardEvent struct {
	Type   CardEventType
	Tick   uint64
	CardID uint32
	X, Y   float64 // card top-left after the change
}

// EventSink is the optional observer of card events. When set on a State,
// every CardEvent is forwarded to it during Tick.
type EventSink interface {
	EmitCardEvent(event CardEvent)
}
