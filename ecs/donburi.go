// Package ecs provides ECS adapters for touchline.
package ecs

import (
	"github.com/pitchsidegames/touchline"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EngineEventType is the Donburi event type for touchline engine events.
// Subscribe to this in your ECS systems to receive list pickups, reorders,
// and board placements.
var EngineEventType = events.NewEventType[touchline.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Engine
// events are published to EngineEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) touchline.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Record(event touchline.Event) {
	EngineEventType.Publish(s.world, event)
}
