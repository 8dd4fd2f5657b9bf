package touchline

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Default board tuning. Chips grab instantly; the double-tap window matches
// what feels right for both mouse and touch.
const (
	DefaultChipRadius        = 16.0 // pixels
	DefaultDoubleTapWindow   = 500 * time.Millisecond
	DefaultDoubleTapDistance = 5.0 // pixels
	DefaultRevertDuration    = 120 * time.Millisecond
)

// ChipKind distinguishes what a board chip represents.
type ChipKind uint8

const (
	ChipPlayer ChipKind = iota
	ChipBall
)

// String returns the stable name used in saved layouts.
func (k ChipKind) String() string {
	switch k {
	case ChipPlayer:
		return "player"
	case ChipBall:
		return "ball"
	default:
		return "unknown"
	}
}

// Chip is one token on the tactical board. X and Y hold the chip's center in
// board-percent coordinates, so positions survive container resizes. Label
// is free text rendered on the chip, typically a shirt number.
type Chip struct {
	ID    string
	Kind  ChipKind
	X     float64
	Y     float64
	Color Color
	Label string
}

// BoardConfig tunes the tactical board engine. Zero fields fall back to the
// package defaults.
type BoardConfig struct {
	// Margin is the percent inset chips keep from every board edge.
	Margin float64

	// ChipRadius is the hit-test radius around a chip's center, in pixels.
	ChipRadius float64

	// DoubleTapWindow is the longest gap between two presses that still
	// counts as a double tap.
	DoubleTapWindow time.Duration

	// DoubleTapDistance is how far apart two presses may land, in pixels,
	// and still count as a double tap.
	DoubleTapDistance float64

	// RevertDuration is how long a cancelled chip takes to glide back to
	// its pickup position.
	RevertDuration time.Duration
}

func (c BoardConfig) withDefaults() BoardConfig {
	if c.Margin == 0 {
		c.Margin = DefaultBoardMargin
	}
	if c.ChipRadius == 0 {
		c.ChipRadius = DefaultChipRadius
	}
	if c.DoubleTapWindow == 0 {
		c.DoubleTapWindow = DefaultDoubleTapWindow
	}
	if c.DoubleTapDistance == 0 {
		c.DoubleTapDistance = DefaultDoubleTapDistance
	}
	if c.RevertDuration == 0 {
		c.RevertDuration = DefaultRevertDuration
	}
	return c
}

// ChipBoard turns pointer input into free chip placement on a tactical
// board. Unlike list rows, chips grab instantly on pointer down with no hold
// delay, and releasing anywhere commits: positions are clamped to the board
// margins, never cancelled for leaving them. Escape or a platform pointer
// cancel mid-placement glides the chip back to where it was picked up.
//
// Placement owns one pointer at a time; other pointers are ignored until it
// ends. A second press on the same chip inside the double-tap window is a
// distinct gesture reported through OnDoubleTap instead of starting a new
// placement.
type ChipBoard struct {
	// OnPlaceStart fires when a chip is grabbed.
	OnPlaceStart func(id string)

	// OnPlaceEnd fires when a placement commits, with the chip at its final
	// clamped position.
	OnPlaceEnd func(chip Chip)

	// OnPlaceCancel fires when a placement is abandoned. The chip is
	// already gliding back to its pickup position when it runs.
	OnPlaceCancel func(id string, reason CancelReason)

	// OnDoubleTap fires on the second press of a double tap on a chip.
	OnDoubleTap func(id string)

	cfg       BoardConfig
	now       func() time.Time
	transform *BoardTransform
	chips     []Chip
	sink      EventSink
	detached  bool

	placing *placement
	revert  *TweenGroup

	lastTapAt time.Time
	lastTapID string
	lastTapX  float64
	lastTapY  float64
}

// placement holds the state of one grab-to-release cycle.
type placement struct {
	pointer int
	chipID  string
	grabDX  float64 // pointer minus chip screen center at grab
	grabDY  float64
	originX float64 // board-percent pickup position, for revert
	originY float64
	downX   float64
	downY   float64
	lastX   float64
	lastY   float64
	moved   bool
}

// NewChipBoard returns a board engine with no chips. The bounds function
// supplies the live container rectangle in screen pixels; it may be nil, in
// which case conversions degrade to neutral values. Zero config fields fall
// back to the package defaults.
func NewChipBoard(cfg BoardConfig, bounds func() Rect) *ChipBoard {
	cfg = cfg.withDefaults()
	return &ChipBoard{
		cfg:       cfg,
		now:       time.Now,
		transform: &BoardTransform{BoundsFunc: bounds, Margin: cfg.Margin},
	}
}

// Transform returns the board's coordinate transform, for callers that need
// to place chips on screen or convert pointer positions themselves.
func (b *ChipBoard) Transform() *BoardTransform {
	return b.transform
}

// SetChips replaces the board contents. The slice is copied. An in-progress
// placement survives if its chip is still present; a pending revert glide is
// dropped.
func (b *ChipBoard) SetChips(chips []Chip) {
	b.chips = make([]Chip, len(chips))
	copy(b.chips, chips)
	debugCheckChips(b.chips)
	b.revert = nil

	if p := b.placing; p != nil && b.indexOf(p.chipID) < 0 {
		debugf("chipboard: placed chip %q removed by SetChips, discarding placement", p.chipID)
		b.placing = nil
	}
}

// Chips returns a copy of the current board contents.
func (b *ChipBoard) Chips() []Chip {
	out := make([]Chip, len(b.chips))
	copy(out, b.chips)
	return out
}

// Chip returns the chip with the given ID.
func (b *ChipBoard) Chip(id string) (Chip, bool) {
	if idx := b.indexOf(id); idx >= 0 {
		return b.chips[idx], true
	}
	return Chip{}, false
}

// SetEventSink installs a sink that records every placement transition. A
// nil sink disables recording.
func (b *ChipBoard) SetEventSink(sink EventSink) {
	b.sink = sink
}

// Update processes one frame of input and advances the revert glide. Call
// once per tick with the tick duration in seconds.
func (b *ChipBoard) Update(frame Frame, dt float64) {
	if b.detached {
		return
	}
	if frame.Escape && b.placing != nil {
		b.cancelPlacement(CancelEscape)
	}
	for _, ev := range frame.Events {
		b.handleEvent(ev)
	}
	b.step(dt)
}

// Detach tears the engine down mid-flight: any in-progress placement and
// revert glide are discarded without callbacks and later Updates become
// no-ops.
func (b *ChipBoard) Detach() {
	if b.placing != nil {
		debugf("chipboard: detached mid-placement of %q", b.placing.chipID)
	}
	b.placing = nil
	b.revert = nil
	b.detached = true
}

// --- Event handling ---

func (b *ChipBoard) handleEvent(ev PointerEvent) {
	switch ev.Phase {
	case PhaseDown:
		b.handleDown(ev)
	case PhaseMove:
		b.handleMove(ev)
	case PhaseUp:
		b.handleUp(ev)
	case PhaseCancel:
		b.handlePointerCancel(ev)
	}
}

func (b *ChipBoard) handleDown(ev PointerEvent) {
	if b.placing != nil {
		return
	}
	if ev.Button != MouseButtonLeft {
		return
	}
	idx := b.chipAt(ev.X, ev.Y)
	if idx < 0 {
		b.lastTapID = ""
		return
	}
	chip := b.chips[idx]

	// Double-tap check comes first: the second press is consumed as a
	// gesture of its own and never starts a placement.
	now := b.now()
	if chip.ID != "" && chip.ID == b.lastTapID && now.Sub(b.lastTapAt) < b.cfg.DoubleTapWindow {
		dx := ev.X - b.lastTapX
		dy := ev.Y - b.lastTapY
		if dx*dx+dy*dy < b.cfg.DoubleTapDistance*b.cfg.DoubleTapDistance {
			b.lastTapID = ""
			debugf("chipboard: double tap on %q", chip.ID)
			if b.OnDoubleTap != nil {
				b.OnDoubleTap(chip.ID)
			}
			b.emit(Event{Kind: EventChipDoubleTap, ItemID: chip.ID, Pointer: ev.Pointer,
				X: ev.X, Y: ev.Y, BoardX: chip.X, BoardY: chip.Y})
			return
		}
	}
	b.lastTapAt = now
	b.lastTapID = chip.ID
	b.lastTapX = ev.X
	b.lastTapY = ev.Y

	// Grabbing a chip that is still gliding home interrupts the glide.
	b.revert = nil

	off := b.transform.DragOffset(ev.X, ev.Y, chip.X, chip.Y)
	b.placing = &placement{
		pointer: ev.Pointer,
		chipID:  chip.ID,
		grabDX:  off.X,
		grabDY:  off.Y,
		originX: chip.X,
		originY: chip.Y,
		downX:   ev.X,
		downY:   ev.Y,
		lastX:   ev.X,
		lastY:   ev.Y,
	}
	debugf("chipboard: pointer %d grabbed %q at %.1f,%.1f", ev.Pointer, chip.ID, chip.X, chip.Y)
	if b.OnPlaceStart != nil {
		b.OnPlaceStart(chip.ID)
	}
	b.emit(Event{Kind: EventPlaceStart, ItemID: chip.ID, Pointer: ev.Pointer,
		X: ev.X, Y: ev.Y, BoardX: chip.X, BoardY: chip.Y})
}

func (b *ChipBoard) handleMove(ev PointerEvent) {
	p := b.placing
	if p == nil || ev.Pointer != p.pointer {
		return
	}
	p.lastX = ev.X
	p.lastY = ev.Y
	p.moved = true
}

func (b *ChipBoard) handleUp(ev PointerEvent) {
	p := b.placing
	if p == nil || ev.Pointer != p.pointer {
		return
	}
	b.applyPointer(ev.X, ev.Y)
	if b.placing == nil {
		return
	}

	// A press that travelled is a drag, not the first half of a double tap.
	dx := ev.X - p.downX
	dy := ev.Y - p.downY
	if dx*dx+dy*dy > b.cfg.DoubleTapDistance*b.cfg.DoubleTapDistance {
		b.lastTapID = ""
	}

	idx := b.indexOf(p.chipID)
	b.placing = nil
	if idx < 0 {
		return
	}
	chip := b.chips[idx]
	debugf("chipboard: placed %q at %.1f,%.1f", chip.ID, chip.X, chip.Y)
	if b.OnPlaceEnd != nil {
		b.OnPlaceEnd(chip)
	}
	b.emit(Event{Kind: EventPlaceEnd, ItemID: chip.ID, Pointer: ev.Pointer,
		X: ev.X, Y: ev.Y, BoardX: chip.X, BoardY: chip.Y})
}

func (b *ChipBoard) handlePointerCancel(ev PointerEvent) {
	p := b.placing
	if p == nil || ev.Pointer != p.pointer {
		return
	}
	b.cancelPlacement(CancelPointerLost)
}

// cancelPlacement abandons the placement and glides the chip back to its
// pickup position.
func (b *ChipBoard) cancelPlacement(reason CancelReason) {
	p := b.placing
	b.placing = nil
	idx := b.indexOf(p.chipID)
	if idx >= 0 {
		b.revert = TweenVec2(&b.chips[idx].X, &b.chips[idx].Y,
			p.originX, p.originY, float32(b.cfg.RevertDuration.Seconds()), ease.OutQuad)
	}
	debugf("chipboard: placement of %q cancelled (%s)", p.chipID, reason)
	if b.OnPlaceCancel != nil {
		b.OnPlaceCancel(p.chipID, reason)
	}
	b.emit(Event{Kind: EventPlaceCancel, ItemID: p.chipID, Pointer: p.pointer,
		X: p.lastX, Y: p.lastY, BoardX: p.originX, BoardY: p.originY, Reason: reason})
}

// step applies the coalesced pointer update and advances the revert glide.
func (b *ChipBoard) step(dt float64) {
	if b.revert != nil {
		b.revert.Update(float32(dt))
		if b.revert.Done {
			b.revert = nil
		}
	}
	p := b.placing
	if p == nil {
		return
	}
	if p.moved {
		b.applyPointer(p.lastX, p.lastY)
		p.moved = false
	}
}

// applyPointer moves the placed chip so its grab point stays under the
// pointer, clamped to the board margins. Discards the placement if the chip
// has vanished.
func (b *ChipBoard) applyPointer(x, y float64) {
	p := b.placing
	idx := b.indexOf(p.chipID)
	if idx < 0 {
		b.placing = nil
		return
	}
	pos := b.transform.ScreenToBoard(x-p.grabDX, y-p.grabDY)
	pos = b.transform.ClampToBounds(pos.X, pos.Y)
	b.chips[idx].X = pos.X
	b.chips[idx].Y = pos.Y
}

// --- Queries ---

// Placing reports whether a chip is currently being placed.
func (b *ChipBoard) Placing() bool {
	return b.placing != nil
}

// ActiveChipID returns the ID of the chip being placed, or "" when none is.
func (b *ChipBoard) ActiveChipID() string {
	if b.placing == nil {
		return ""
	}
	return b.placing.chipID
}

// Reverting reports whether a cancelled chip is still gliding back to its
// pickup position.
func (b *ChipBoard) Reverting() bool {
	return b.revert != nil
}

// --- Helpers ---

func (b *ChipBoard) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, c := range b.chips {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// chipAt returns the index of the topmost chip whose hit circle contains
// (x, y), or -1. Chips later in the slice are treated as drawn on top.
func (b *ChipBoard) chipAt(x, y float64) int {
	for i := len(b.chips) - 1; i >= 0; i-- {
		center := b.transform.BoardToScreen(b.chips[i].X, b.chips[i].Y)
		if pointInCircle(center.X, center.Y, b.cfg.ChipRadius, x, y) {
			return i
		}
	}
	return -1
}

func (b *ChipBoard) emit(ev Event) {
	if b.sink != nil {
		b.sink.Record(ev)
	}
}
