package ecs

import (
	"github.com/phanxgames/playground"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CardEventType is the Donburi event type for playground card events.
var CardEventType = events.NewEventType[playground.CardEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Card events
// are published to CardEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) playground.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCardEvent(event playground.CardEvent) {
	CardEventType.Publish(s.world, event)
}

type immediateSink struct {
	world donburi.World
}

// NewImmediateSink is like NewDonburiSink but delivers each event to the
// world's CardEventType subscribers as soon as it is published.
func NewImmediateSink(world donburi.World) playground.EventSink {
	return &immediateSink{world: world}
}

func (s *immediateSink) EmitCardEvent(event playground.CardEvent) {
	CardEventType.Publish(s.world, event)
	CardEventType.ProcessEvents(s.world)
}

// Tally counts card events by type. Subscribe it to a world with Attach.
type Tally struct {
	Counts [4]int
	Last   playground.CardEvent
}

// Attach subscribes the tally to CardEventType in world.
func (t *Tally) Attach(world donburi.World) {
	CardEventType.Subscribe(world, t.record)
}

func (t *Tally) record(_ donburi.World, e playground.CardEvent) {
	if int(e.Type) < len(t.Counts) {
		t.Counts[e.Type]++
	}
	t.Last = e
}

// Count returns how many events of type typ have been delivered.
func (t *Tally) Count(typ playground.CardEventType) int {
	if int(typ) >= len(t.Counts) {
		return 0
	}
	return t.Counts[typ]
}
