package touchline

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxPointers is the pointer slot count: slot 0 is the mouse, slots 1-9
// serve concurrent touches.
const maxPointers = 10

// pointerRecord tracks the last sampled state of one pointer slot so device
// polling can be turned into down/move/up edges.
type pointerRecord struct {
	down   bool
	x, y   float64
	button MouseButton
}

// Input samples the mouse, touches, and the Escape key once per tick and
// turns them into a Frame of pointer events for the engines. Create one per
// game, call ReadFrame from Update, and hand the frame to every engine that
// should see it.
//
// Synthetic events queued through the Inject methods take precedence: while
// any are pending, exactly one is consumed per frame and the real devices
// are not polled, so scripted input behaves the same at any tick rate.
type Input struct {
	pointers     [maxPointers]pointerRecord
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	runner      *TestRunner
	injectQueue []syntheticEvent
	eventBuf    []PointerEvent
}

// NewInput returns an input sampler with empty state.
func NewInput() *Input {
	return &Input{}
}

// SetTestRunner attaches a scripted input driver. The runner is advanced at
// the start of every ReadFrame, ahead of device polling.
func (in *Input) SetTestRunner(runner *TestRunner) {
	in.runner = runner
}

// ReadFrame samples input for one tick. The returned frame's Events slice is
// reused on the next call and must not be retained.
func (in *Input) ReadFrame() Frame {
	in.eventBuf = in.eventBuf[:0]

	if in.runner != nil {
		in.runner.step(in)
	}
	if len(in.injectQueue) > 0 {
		return in.popSynthetic()
	}

	var frame Frame
	frame.Escape = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.sampleMouse()
	in.sampleTouches()
	frame.Events = in.eventBuf
	return frame
}

// sampleMouse feeds pointer 0 from the mouse. If several buttons are held
// the leftmost wins; the button recorded at press time sticks for the whole
// hold.
func (in *Input) sampleMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	in.feedPointer(0, x, y, pressed, button)
}

// sampleTouches feeds pointers 1-9 from the touch screen. Slots stay bound
// to their ebiten.TouchID for the lifetime of the touch; a vanished touch
// synthesizes a release at its last known position.
func (in *Input) sampleTouches() {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		in.feedPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			r := &in.pointers[i]
			if r.down {
				in.feedPointer(i, r.x, r.y, false, MouseButtonLeft)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *Input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// feedPointer turns one pointer's sampled state into events by comparing it
// with the previous sample.
func (in *Input) feedPointer(slot int, x, y float64, pressed bool, button MouseButton) {
	r := &in.pointers[slot]

	switch {
	case pressed && !r.down:
		r.down = true
		r.button = button
		r.x, r.y = x, y
		in.eventBuf = append(in.eventBuf, PointerEvent{
			Pointer: slot, Phase: PhaseDown, Button: button, X: x, Y: y,
		})
	case !pressed && r.down:
		// Just released — use button from press start.
		in.eventBuf = append(in.eventBuf, PointerEvent{
			Pointer: slot, Phase: PhaseUp, Button: r.button, X: x, Y: y,
		})
		r.down = false
		r.x, r.y = x, y
	case pressed && r.down:
		// Held down, possibly moved — use button from press start.
		if x != r.x || y != r.y {
			in.eventBuf = append(in.eventBuf, PointerEvent{
				Pointer: slot, Phase: PhaseMove, Button: r.button, X: x, Y: y,
			})
			r.x, r.y = x, y
		}
	default:
		// Hover move.
		if x != r.x || y != r.y {
			in.eventBuf = append(in.eventBuf, PointerEvent{
				Pointer: slot, Phase: PhaseMove, Button: button, X: x, Y: y,
			})
			r.x, r.y = x, y
		}
	}
}
