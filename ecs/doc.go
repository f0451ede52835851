// Package ecs provides ECS adapters for playground card events.
//
// The primary adapter is [NewDonburiSink], which publishes card events
// (picked, dropped, landed, reset) into a [Donburi] world as typed events.
// Subscribe to [CardEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	state.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
