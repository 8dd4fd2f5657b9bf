// Package ecs provides ECS adapters for touchline's engine event stream.
//
// The primary adapter is [NewDonburiSink], which bridges touchline engine
// events (pickups, reorders, taps, chip placements) into a [Donburi] world
// as typed events. Subscribe to [EngineEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	list.SetEventSink(sink)
//	board.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
