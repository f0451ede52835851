// Package playground is a small 2D physics toy built on [Ebitengine]: a hand
// of coloured cards that can be picked up and dragged with the mouse and
// that fall under gravity until they rest on the bottom of the window.
//
// # Simulation
//
// [State] owns the hand, the starting snapshot used by the reset button, and
// the current drag selection. Each call to [State.Tick] resolves the tick's
// input events in order, snaps the dragged card to the pointer, and then
// integrates every other card:
//
//	vy += Gravity
//	y  += vy
//	if y+height >= Ground { y = Ground - height; vy = 0 }
//
// Clicking a card promotes it to the front of the hand. Clicking the reset
// control, when no card covers the click, restores the starting layout and
// colors. Releasing a card drops it from rest; drag motion is never turned
// into momentum.
//
// # Drivers
//
// The simulation never touches a window directly. [State.Draw] paints onto a
// [Renderer] and [Loop] pulls events from an [InputSource]. The display
// package provides Ebitengine implementations of both; [Recorder], [Queue]
// and [Script] provide headless ones:
//
//	state, _ := playground.NewState(playground.DefaultConfig())
//	q := &playground.Queue{}
//	q.InjectDrag(560, 400, 300, 100, 20)
//	q.InjectWait(120)
//	q.InjectQuit()
//	loop := playground.Loop{State: state, Input: q, Renderer: &playground.Recorder{}}
//	_ = loop.Run()
//
// Card events (pick, drop, land, reset) can be observed through an
// [EventSink]; the ecs subpackage forwards them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package playground
