package touchline

import (
	"math"
	"time"
)

// Default gesture tuning. A press ripens into a drag after DefaultHoldDelay
// of stillness or DefaultDragDistance of movement, whichever comes first.
const (
	DefaultHoldDelay           = 300 * time.Millisecond
	DefaultDragDistance        = 10.0 // pixels
	DefaultPulseDelay          = 150 * time.Millisecond
	DefaultPulseDuration       = 180 * time.Millisecond
	DefaultSuppressClickWindow = 200 * time.Millisecond
)

// ActivationConfig tunes how a press on a list row ripens into a drag.
// Zero fields fall back to the package defaults.
type ActivationConfig struct {
	// HoldDelay is the press duration that activates a drag on its own.
	HoldDelay time.Duration

	// DragDistance is the movement in pixels that activates a drag on its
	// own, before HoldDelay elapses.
	DragDistance float64

	// PulseDelay is the press duration before the pre-drag pulse begins.
	PulseDelay time.Duration

	// PulseDuration is how long the pulse lasts before resetting on its own.
	PulseDuration time.Duration

	// SuppressClickWindow is how long taps on a row stay swallowed after a
	// drag of that row completes.
	SuppressClickWindow time.Duration
}

func (c ActivationConfig) withDefaults() ActivationConfig {
	if c.HoldDelay == 0 {
		c.HoldDelay = DefaultHoldDelay
	}
	if c.DragDistance == 0 {
		c.DragDistance = DefaultDragDistance
	}
	if c.PulseDelay == 0 {
		c.PulseDelay = DefaultPulseDelay
	}
	if c.PulseDuration == 0 {
		c.PulseDuration = DefaultPulseDuration
	}
	if c.SuppressClickWindow == 0 {
		c.SuppressClickWindow = DefaultSuppressClickWindow
	}
	return c
}

// gestureState identifies where a press is in its activation lifecycle.
type gestureState uint8

const (
	gestureIdle    gestureState = iota
	gesturePending              // pressed, not yet a drag
	gestureActive               // drag in progress
)

// activation tracks one press ripening into a drag. The owning engine drives
// it: begin on pointer down, observe on every move of the same pointer, tick
// once per frame. Activation fires at most once per press, on whichever
// threshold trips first.
type activation struct {
	cfg ActivationConfig
	now func() time.Time

	state     gestureState
	pointer   int
	startX    float64
	startY    float64
	pressedAt time.Time
}

// begin starts tracking a press. Only valid from idle; the engine decides
// what a second pointer down means before calling this.
func (a *activation) begin(pointer int, x, y float64) {
	a.state = gesturePending
	a.pointer = pointer
	a.startX = x
	a.startY = y
	a.pressedAt = a.now()
}

// observe feeds a pointer move. Reports true when the move crossed the
// distance threshold and activated the drag.
func (a *activation) observe(x, y float64) bool {
	if a.state != gesturePending {
		return false
	}
	dx := x - a.startX
	dy := y - a.startY
	if math.Sqrt(dx*dx+dy*dy) > a.cfg.DragDistance {
		a.state = gestureActive
		return true
	}
	return false
}

// tick advances the hold timer. Reports true when the hold threshold elapsed
// and activated the drag.
func (a *activation) tick() bool {
	if a.state != gesturePending {
		return false
	}
	if a.now().Sub(a.pressedAt) >= a.cfg.HoldDelay {
		a.state = gestureActive
		return true
	}
	return false
}

// pulsing reports whether the press is inside the cosmetic pre-drag pulse
// window. Always false once the drag activates or the press ends.
func (a *activation) pulsing() bool {
	if a.state != gesturePending {
		return false
	}
	elapsed := a.now().Sub(a.pressedAt)
	return elapsed >= a.cfg.PulseDelay && elapsed < a.cfg.PulseDelay+a.cfg.PulseDuration
}

// reset returns the tracker to idle.
func (a *activation) reset() {
	a.state = gestureIdle
	a.pointer = 0
	a.startX = 0
	a.startY = 0
	a.pressedAt = time.Time{}
}
