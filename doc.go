// Package touchline is a pointer-driven drag-and-drop toolkit for
// [Ebitengine], built for sports lineup and tactics screens.
//
// Touchline provides two engines. [ListDrag] turns long-press gestures into
// list reordering: a press ripens into a drag after a short hold or a few
// pixels of travel, a ghost row follows the pointer, resting rows shift out
// of the way, and releasing commits the new order. [ChipBoard] places player
// chips freely on a tactical board in resize-proof percent coordinates, with
// double-tap detection and edge clamping.
//
// Both engines are renderer-agnostic: callers describe row and container
// geometry with callbacks, pump input once per tick, and read drag state
// back out each frame to draw however they like.
//
// # Quick start
//
// Implement [ebiten.Game], sample input through an [Input], and hand each
// frame to the engines:
//
//	type Game struct {
//		input *touchline.Input
//		list  *touchline.ListDrag
//	}
//
//	func (g *Game) Update() error {
//		frame := g.input.ReadFrame()
//		g.list.Update(frame, 1.0/float64(ebiten.TPS()))
//		return nil
//	}
//
// Feed the list its items and geometry once at startup:
//
//	list := touchline.NewListDrag(touchline.ActivationConfig{})
//	list.SetItems(items)
//	list.SetRowProvider(func() []touchline.RowRect { return measureRows() })
//	list.SetContainerProvider(func() touchline.Rect { return listBounds })
//	list.OnReorder = func(items []touchline.ListItem) { saveOrder(items) }
//
// While a drag is live, draw from the engine's point of view: skip the
// dragged row in place, offset its neighbors by [ListDrag.ItemShift], and
// paint the ghost at [ListDrag.GhostPosition].
//
// # Key features
//
// Touchline includes a tactical chip board with YAML layouts and formation
// presets, synthetic input injection and JSON-scripted runs for automated
// interaction tests, PNG board export, tweens (via [gween]), and ECS
// integration (via [Donburi] adapter in touchline/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package touchline
