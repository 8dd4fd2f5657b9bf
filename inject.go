package touchline

// syntheticKind distinguishes the kinds of injectable input.
type syntheticKind uint8

const (
	synthPointer syntheticKind = iota // pointer sample (position + pressed state)
	synthCancel                       // platform-style pointer cancel
	synthEscape                       // Escape key press
)

// syntheticEvent represents a single injected input event. Screen
// coordinates are used, identical to real mouse input. All synthetic
// pointer events target pointer 0.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	pressed bool
	button  MouseButton
}

// InjectPress queues a pointer press event at the given screen coordinates
// (left button). The event is consumed on the next ReadFrame call.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{
		kind: synthPointer,
		x:    x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectMove queues a pointer move event at the given screen coordinates
// with the button held down. Use this between InjectPress and InjectRelease
// to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{
		kind: synthPointer,
		x:    x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given screen
// coordinates.
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{
		kind: synthPointer,
		x:    x, y: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectCancel queues a pointer cancel, as if the platform took the pointer
// away mid-gesture.
func (in *Input) InjectCancel() {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: synthCancel})
}

// InjectEscape queues an Escape key press.
func (in *Input) InjectEscape() {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: synthEscape})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*float64(i)/float64(steps+1)
		y := fromY + (toY-fromY)*float64(i)/float64(steps+1)
		in.InjectMove(x, y)
	}
	in.InjectRelease(toX, toY)
}

// popSynthetic consumes the head of the inject queue and converts it into a
// frame, running the same edge detection as real mouse input.
func (in *Input) popSynthetic() Frame {
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	switch evt.kind {
	case synthEscape:
		return Frame{Escape: true, Events: in.eventBuf}
	case synthCancel:
		r := &in.pointers[0]
		if r.down {
			in.eventBuf = append(in.eventBuf, PointerEvent{
				Pointer: 0, Phase: PhaseCancel, Button: r.button, X: r.x, Y: r.y,
			})
			r.down = false
		}
		return Frame{Events: in.eventBuf}
	default:
		in.feedPointer(0, evt.x, evt.y, evt.pressed, evt.button)
		return Frame{Events: in.eventBuf}
	}
}
