package touchline

import "time"

// ListItem is one reorderable entry in a ListDrag. Items with an empty ID
// are inert: they render wherever the caller puts them but never drag.
// UserData is carried through untouched.
type ListItem struct {
	ID       string
	UserData any
}

// ListDrag turns pointer input into long-press drag reordering for a
// vertical list. The caller owns rendering and measurement: it feeds items
// and row geometry in, pumps Update once per tick with the frame's input,
// and reads the ghost, shift, and drop-slot state back out each frame.
//
// A press ripens into a drag after the hold delay or the drag distance,
// whichever comes first. Row geometry is snapshotted once at that moment and
// the drop slot is derived from the snapshot's vertical midpoints, so rows
// animating out of the way never feed back into hit testing. Releasing
// outside the container's vertical extent abandons the drag with the order
// untouched.
//
// Exactly one pointer owns a drag at a time. Input from other pointers is
// ignored while a drag is active; a second pointer going down before
// activation cancels the press instead.
type ListDrag struct {
	// OnReorder receives the full reordered list after every completed drop,
	// including drops back into the origin slot.
	OnReorder func(items []ListItem)

	// OnPickup fires when a press activates into a drag.
	OnPickup func(id string)

	// OnDrop fires on a completed drop with the origin and destination
	// indices, before OnReorder.
	OnDrop func(id string, from, to int)

	// OnCancel fires when an active drag is abandoned. The list order is
	// already guaranteed untouched when it runs.
	OnCancel func(id string, reason CancelReason)

	// OnItemTap fires when a press ends before activating, unless the tap
	// falls inside the item's suppression window.
	OnItemTap func(id string)

	cfg ActivationConfig
	now func() time.Time

	items         []ListItem
	rowsFunc      func() []RowRect
	containerFunc func() Rect
	sink          EventSink

	arm      activation
	session  *dragSession
	detached bool

	suppressID    string
	suppressUntil time.Time
}

// dragSession holds the state of one press-to-drop cycle. Created on pointer
// down; the geometry fields are filled in at activation.
type dragSession struct {
	pointer     int
	itemID      string
	originIndex int
	grabDX      float64 // pointer minus row origin at press
	grabDY      float64
	lastX       float64 // latest pointer position seen this session
	lastY       float64
	moved       bool // ghost update pending for this frame

	rows      []RowRect // row snapshot captured at activation
	rowHeight float64   // dragged row's height from the snapshot
	ghostX    float64
	ghostY    float64
	dropIndex int // -1 while the pointer is outside the container
}

// NewListDrag returns an engine with no items and no geometry providers.
// Zero config fields fall back to the package defaults.
func NewListDrag(cfg ActivationConfig) *ListDrag {
	l := &ListDrag{
		cfg: cfg.withDefaults(),
		now: time.Now,
	}
	l.arm = activation{cfg: l.cfg, now: func() time.Time { return l.now() }}
	return l
}

// SetItems replaces the list contents. The slice is copied. If the currently
// dragged item survives the change its origin index is refreshed; if it is
// gone the drag is quietly discarded.
func (l *ListDrag) SetItems(items []ListItem) {
	l.items = make([]ListItem, len(items))
	copy(l.items, items)
	debugCheckItems(l.items)

	if s := l.session; s != nil {
		idx := l.indexOf(s.itemID)
		if idx < 0 {
			debugf("listdrag: dragged item %q removed by SetItems, discarding session", s.itemID)
			l.clearSession()
			return
		}
		s.originIndex = idx
	}
}

// Items returns a copy of the current list order.
func (l *ListDrag) Items() []ListItem {
	out := make([]ListItem, len(l.items))
	copy(out, l.items)
	return out
}

// SetRowProvider installs the row geometry source. It is read live on
// pointer down for hit testing and once at activation for the drop-slot
// snapshot. Rows with empty or unknown IDs are ignored by the snapshot.
func (l *ListDrag) SetRowProvider(fn func() []RowRect) {
	l.rowsFunc = fn
}

// SetContainerProvider installs the scrollable container bounds source. It
// is re-read on every drop-slot computation; a nil provider or zero-sized
// rectangle disables the out-of-bounds check.
func (l *ListDrag) SetContainerProvider(fn func() Rect) {
	l.containerFunc = fn
}

// SetEventSink installs a sink that records every pickup, drop, cancel, and
// tap. A nil sink disables recording.
func (l *ListDrag) SetEventSink(sink EventSink) {
	l.sink = sink
}

// Update processes one frame of input and advances the hold timer. Call once
// per tick. The dt parameter is accepted for symmetry with ChipBoard and is
// currently unused.
func (l *ListDrag) Update(frame Frame, dt float64) {
	_ = dt
	if l.detached {
		return
	}
	if frame.Escape {
		l.cancel(CancelEscape)
	}
	for _, ev := range frame.Events {
		l.handleEvent(ev)
	}
	l.step()
}

// Detach tears the engine down mid-flight: any in-progress press or drag is
// discarded without callbacks and later Updates become no-ops. Queries keep
// working and report idle state.
func (l *ListDrag) Detach() {
	if l.session != nil {
		debugf("listdrag: detached mid-drag of %q", l.session.itemID)
	}
	l.clearSession()
	l.detached = true
}

// --- Event handling ---

func (l *ListDrag) handleEvent(ev PointerEvent) {
	switch ev.Phase {
	case PhaseDown:
		l.handleDown(ev)
	case PhaseMove:
		l.handleMove(ev)
	case PhaseUp:
		l.handleUp(ev)
	case PhaseCancel:
		l.handlePointerCancel(ev)
	}
}

func (l *ListDrag) handleDown(ev PointerEvent) {
	if s := l.session; s != nil {
		// One pointer owns the session. A second press before activation
		// cancels the press; during an active drag it is ignored.
		if l.arm.state == gesturePending {
			debugf("listdrag: second pointer %d down, discarding pending press (%s)",
				ev.Pointer, CancelSecondPointer)
			l.clearSession()
		}
		return
	}
	if ev.Button != MouseButtonLeft {
		return
	}
	if l.rowsFunc == nil {
		return
	}
	row, ok := hitRow(l.rowsFunc(), ev.X, ev.Y)
	if !ok || row.ID == "" {
		return
	}
	idx := l.indexOf(row.ID)
	if idx < 0 {
		return
	}

	l.session = &dragSession{
		pointer:     ev.Pointer,
		itemID:      row.ID,
		originIndex: idx,
		grabDX:      ev.X - row.Rect.X,
		grabDY:      ev.Y - row.Rect.Y,
		lastX:       ev.X,
		lastY:       ev.Y,
		dropIndex:   -1,
	}
	l.arm.begin(ev.Pointer, ev.X, ev.Y)
	debugf("listdrag: pointer %d pressed %q at index %d", ev.Pointer, row.ID, idx)
}

func (l *ListDrag) handleMove(ev PointerEvent) {
	s := l.session
	if s == nil || ev.Pointer != s.pointer {
		return
	}
	s.lastX = ev.X
	s.lastY = ev.Y

	if l.arm.state == gesturePending {
		if !l.arm.observe(ev.X, ev.Y) {
			return
		}
		l.activate(ev.X, ev.Y)
		if l.session == nil {
			return
		}
	}
	s.moved = true
	l.recomputeDropIndex(ev.Y)
}

func (l *ListDrag) handleUp(ev PointerEvent) {
	s := l.session
	if s == nil || ev.Pointer != s.pointer {
		return
	}
	s.lastX = ev.X
	s.lastY = ev.Y

	// The hold threshold may have elapsed since the last tick.
	if l.arm.tick() {
		l.activate(ev.X, ev.Y)
		if l.session == nil {
			return
		}
	}

	if l.arm.state != gestureActive {
		l.finishTap(ev)
		return
	}
	l.drop(ev.X, ev.Y)
}

func (l *ListDrag) handlePointerCancel(ev PointerEvent) {
	s := l.session
	if s == nil || ev.Pointer != s.pointer {
		return
	}
	l.cancel(CancelPointerLost)
}

// finishTap ends a press that never became a drag.
func (l *ListDrag) finishTap(ev PointerEvent) {
	id := l.session.itemID
	l.clearSession()
	if l.ShouldSuppressClick(id) {
		debugf("listdrag: tap on %q suppressed", id)
		return
	}
	debugf("listdrag: tap on %q", id)
	if l.OnItemTap != nil {
		l.OnItemTap(id)
	}
	l.emit(Event{Kind: EventItemTap, ItemID: id, Pointer: ev.Pointer, X: ev.X, Y: ev.Y})
}

// activate promotes the pending press into a live drag: the origin index is
// refreshed, row geometry is snapshotted, and the ghost appears under the
// grab point.
func (l *ListDrag) activate(x, y float64) {
	s := l.session
	idx := l.indexOf(s.itemID)
	if idx < 0 {
		debugf("listdrag: item %q vanished before activation", s.itemID)
		l.clearSession()
		return
	}
	s.originIndex = idx
	s.rows = l.snapshotRows()
	for _, r := range s.rows {
		if r.ID == s.itemID {
			s.rowHeight = r.Rect.Height
			break
		}
	}
	s.ghostX = x - s.grabDX
	s.ghostY = y - s.grabDY
	l.recomputeDropIndex(y)

	debugf("listdrag: pointer %d picked up %q from index %d", s.pointer, s.itemID, idx)
	if l.OnPickup != nil {
		l.OnPickup(s.itemID)
	}
	l.emit(Event{Kind: EventPickup, ItemID: s.itemID, Pointer: s.pointer, FromIndex: idx, ToIndex: idx, X: x, Y: y})
}

// drop commits an active drag at the release position.
func (l *ListDrag) drop(x, y float64) {
	s := l.session
	l.recomputeDropIndex(y)
	if s.dropIndex < 0 {
		l.finishCancel(CancelOutOfBounds, x, y)
		return
	}

	from := s.originIndex
	to := s.dropIndex
	if to > len(l.items)-1 {
		to = len(l.items) - 1
	}
	id := s.itemID
	pointer := s.pointer
	l.items = reorderItems(l.items, from, to)
	l.suppressID = id
	l.suppressUntil = l.now().Add(l.cfg.SuppressClickWindow)
	l.clearSession()

	debugf("listdrag: dropped %q %d -> %d", id, from, to)
	if l.OnDrop != nil {
		l.OnDrop(id, from, to)
	}
	if l.OnReorder != nil {
		l.OnReorder(l.Items())
	}
	l.emit(Event{Kind: EventReorder, ItemID: id, Pointer: pointer, FromIndex: from, ToIndex: to, X: x, Y: y})
}

// cancel abandons whatever phase the session is in. Pending presses are
// discarded silently; active drags report through OnCancel and the sink.
func (l *ListDrag) cancel(reason CancelReason) {
	s := l.session
	if s == nil {
		return
	}
	if l.arm.state != gestureActive {
		debugf("listdrag: pending press on %q discarded (%s)", s.itemID, reason)
		l.clearSession()
		return
	}
	l.finishCancel(reason, s.lastX, s.lastY)
}

func (l *ListDrag) finishCancel(reason CancelReason, x, y float64) {
	s := l.session
	id := s.itemID
	pointer := s.pointer
	l.clearSession()

	debugf("listdrag: drag of %q cancelled (%s)", id, reason)
	if l.OnCancel != nil {
		l.OnCancel(id, reason)
	}
	l.emit(Event{Kind: EventDragCancel, ItemID: id, Pointer: pointer, Reason: reason, X: x, Y: y})
}

// step advances the hold timer and applies the coalesced ghost update.
// Multiple moves within one tick collapse into a single ghost write here.
func (l *ListDrag) step() {
	s := l.session
	if s == nil {
		return
	}
	if l.arm.state == gesturePending {
		if l.arm.tick() {
			l.activate(s.lastX, s.lastY)
		}
		return
	}
	if s.moved {
		s.ghostX = s.lastX - s.grabDX
		s.ghostY = s.lastY - s.grabDY
		s.moved = false
	}
}

// recomputeDropIndex derives the drop slot from the snapshot midpoints: the
// slot equals the number of other rows whose vertical midpoint sits above
// the pointer. Outside the container's vertical extent the slot is -1.
func (l *ListDrag) recomputeDropIndex(y float64) {
	s := l.session
	if c := l.container(); !c.Empty() && !c.ContainsY(y) {
		s.dropIndex = -1
		return
	}
	if len(s.rows) == 0 {
		s.dropIndex = s.originIndex
		return
	}
	n := 0
	for _, r := range s.rows {
		if r.ID == s.itemID {
			continue
		}
		if r.Rect.MidY() < y {
			n++
		}
	}
	s.dropIndex = n
}

// --- Queries ---

// Dragging reports whether a drag is active. False while a press is still
// pending activation.
func (l *ListDrag) Dragging() bool {
	return l.session != nil && l.arm.state == gestureActive
}

// DraggedItemID returns the ID of the item being dragged, or "" when no drag
// is active.
func (l *ListDrag) DraggedItemID() string {
	if !l.Dragging() {
		return ""
	}
	return l.session.itemID
}

// DropIndex returns the slot the dragged item would land in if released now.
// ok is false when no drag is active or the pointer is outside the
// container's vertical extent.
func (l *ListDrag) DropIndex() (index int, ok bool) {
	if !l.Dragging() || l.session.dropIndex < 0 {
		return 0, false
	}
	return l.session.dropIndex, true
}

// GhostPosition returns the screen position of the dragged row's top-left
// corner, grab offset preserved. ok is false when no drag is active.
func (l *ListDrag) GhostPosition() (pos Vec2, ok bool) {
	if !l.Dragging() {
		return Vec2{}, false
	}
	return Vec2{X: l.session.ghostX, Y: l.session.ghostY}, true
}

// IsItemBeingDragged reports whether the given item is the one currently
// being dragged.
func (l *ListDrag) IsItemBeingDragged(id string) bool {
	return l.Dragging() && id == l.session.itemID
}

// IsItemActivating reports whether the given item is inside its cosmetic
// pre-drag pulse window. The pulse resets on its own if activation has not
// happened by the end of the window.
func (l *ListDrag) IsItemActivating(id string) bool {
	s := l.session
	return s != nil && id == s.itemID && l.arm.pulsing()
}

// ItemShift returns the vertical offset in pixels the given resting row
// should render at so the drop slot reads correctly: rows between the origin
// and the drop slot step one row height toward the origin, everything else
// stays put. Zero when no drag is active or the slot is out of bounds.
func (l *ListDrag) ItemShift(id string) float64 {
	s := l.session
	if s == nil || l.arm.state != gestureActive || s.dropIndex < 0 || id == s.itemID {
		return 0
	}
	idx := l.indexOf(id)
	if idx < 0 {
		return 0
	}
	o, d := s.originIndex, s.dropIndex
	switch {
	case o < d && idx > o && idx <= d:
		return -s.rowHeight
	case o > d && idx >= d && idx < o:
		return s.rowHeight
	}
	return 0
}

// ShouldSuppressClick reports whether taps on the given item are still
// swallowed because a drag of that item just completed.
func (l *ListDrag) ShouldSuppressClick(id string) bool {
	if id == "" || id != l.suppressID {
		return false
	}
	return l.now().Before(l.suppressUntil)
}

// --- Helpers ---

func (l *ListDrag) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (l *ListDrag) container() Rect {
	if l.containerFunc == nil {
		return Rect{}
	}
	return l.containerFunc()
}

// snapshotRows filters the provider's rows down to known draggable items,
// preserving visual order.
func (l *ListDrag) snapshotRows() []RowRect {
	if l.rowsFunc == nil {
		return nil
	}
	src := l.rowsFunc()
	rows := make([]RowRect, 0, len(src))
	for _, r := range src {
		if r.ID == "" || l.indexOf(r.ID) < 0 {
			continue
		}
		rows = append(rows, r)
	}
	debugCheckRows(rows)
	return rows
}

func (l *ListDrag) clearSession() {
	l.session = nil
	l.arm.reset()
}

func (l *ListDrag) emit(ev Event) {
	if l.sink != nil {
		l.sink.Record(ev)
	}
}

// reorderItems returns a copy of items with the entry at from removed and
// reinserted so it lands at index to in the result. Out-of-range indices
// and from == to return an unchanged copy.
func reorderItems(items []ListItem, from, to int) []ListItem {
	out := make([]ListItem, len(items))
	copy(out, items)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	it := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out, ListItem{})
	copy(out[to+1:], out[to:])
	out[to] = it
	return out
}
