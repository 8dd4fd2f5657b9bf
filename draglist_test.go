package touchline

import (
	"fmt"
	"testing"
	"time"
)

const testDT = 1.0 / 60

// Standard fixture: four 40px rows stacked in a 200x160 container.
//
//	a: y 0..40    (midpoint 20)
//	b: y 40..80   (midpoint 60)
//	c: y 80..120  (midpoint 100)
//	d: y 120..160 (midpoint 140)
func testRows() []RowRect {
	return []RowRect{
		{ID: "a", Rect: Rect{X: 0, Y: 0, Width: 200, Height: 40}},
		{ID: "b", Rect: Rect{X: 0, Y: 40, Width: 200, Height: 40}},
		{ID: "c", Rect: Rect{X: 0, Y: 80, Width: 200, Height: 40}},
		{ID: "d", Rect: Rect{X: 0, Y: 120, Width: 200, Height: 40}},
	}
}

func newTestList(clock *testClock) *ListDrag {
	l := NewListDrag(ActivationConfig{})
	l.now = clock.Now
	l.SetItems([]ListItem{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}})
	l.SetRowProvider(testRows)
	l.SetContainerProvider(func() Rect {
		return Rect{X: 0, Y: 0, Width: 200, Height: 160}
	})
	return l
}

func downEv(pointer int, x, y float64) PointerEvent {
	return PointerEvent{Pointer: pointer, Phase: PhaseDown, Button: MouseButtonLeft, X: x, Y: y}
}

func moveEv(pointer int, x, y float64) PointerEvent {
	return PointerEvent{Pointer: pointer, Phase: PhaseMove, Button: MouseButtonLeft, X: x, Y: y}
}

func upEv(pointer int, x, y float64) PointerEvent {
	return PointerEvent{Pointer: pointer, Phase: PhaseUp, Button: MouseButtonLeft, X: x, Y: y}
}

func cancelEv(pointer int) PointerEvent {
	return PointerEvent{Pointer: pointer, Phase: PhaseCancel, Button: MouseButtonLeft}
}

func frameOf(evs ...PointerEvent) Frame {
	return Frame{Events: evs}
}

func itemIDs(items []ListItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func wantOrder(t *testing.T, items []ListItem, want ...string) {
	t.Helper()
	got := itemIDs(items)
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

// --- Reorder scenarios ---

func TestDragToLaterSlot(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	var events []string
	l.OnPickup = func(id string) { events = append(events, "pickup "+id) }
	l.OnDrop = func(id string, from, to int) { events = append(events, fmt.Sprintf("drop %s %d->%d", id, from, to)) }
	l.OnReorder = func(items []ListItem) { events = append(events, "reorder") }

	// Grab row a, pull past the drag distance, park between c and d.
	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 35)), testDT) // 15px: activates by distance
	if !l.Dragging() {
		t.Fatal("15px of travel should have activated the drag")
	}
	l.Update(frameOf(moveEv(0, 100, 110)), testDT)

	if idx, ok := l.DropIndex(); !ok || idx != 2 {
		t.Fatalf("DropIndex = %d ok=%v, want 2 true", idx, ok)
	}

	l.Update(frameOf(upEv(0, 100, 110)), testDT)

	wantOrder(t, l.Items(), "b", "c", "a", "d")
	if len(events) != 3 || events[0] != "pickup a" || events[1] != "drop a 0->2" || events[2] != "reorder" {
		t.Fatalf("events = %v", events)
	}
	if l.Dragging() {
		t.Error("drag should be over after the drop")
	}
}

func TestDragToEarlierSlot(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	var reordered []ListItem
	l.OnReorder = func(items []ListItem) { reordered = items }

	// Grab row d and pull it up just under row a.
	l.Update(frameOf(downEv(0, 100, 140)), testDT)
	l.Update(frameOf(moveEv(0, 100, 120)), testDT) // 20px up: activates
	l.Update(frameOf(moveEv(0, 100, 30)), testDT)

	if idx, ok := l.DropIndex(); !ok || idx != 1 {
		t.Fatalf("DropIndex = %d ok=%v, want 1 true", idx, ok)
	}

	l.Update(frameOf(upEv(0, 100, 30)), testDT)
	wantOrder(t, reordered, "a", "d", "b", "c")
}

func TestDropInOriginSlotStillReports(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	var drops, reorders int
	l.OnDrop = func(id string, from, to int) {
		drops++
		if from != 0 || to != 0 {
			t.Errorf("drop %d->%d, want 0->0", from, to)
		}
	}
	l.OnReorder = func(items []ListItem) {
		reorders++
		wantOrder(t, items, "a", "b", "c", "d")
	}

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	clock.Advance(DefaultHoldDelay)
	l.Update(frameOf(), testDT) // hold timer trips in step
	if !l.Dragging() {
		t.Fatal("hold should have activated the drag")
	}

	l.Update(frameOf(upEv(0, 100, 20)), testDT)
	if drops != 1 || reorders != 1 {
		t.Fatalf("drops=%d reorders=%d, want 1 and 1", drops, reorders)
	}
	wantOrder(t, l.Items(), "a", "b", "c", "d")
}

// --- Activation thresholds through the engine ---

func TestNoActivationBeforeThresholds(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 104, 24)), testDT) // well inside the dead zone
	clock.Advance(DefaultHoldDelay - time.Millisecond)
	l.Update(frameOf(), testDT)

	if l.Dragging() {
		t.Fatal("neither threshold crossed, drag must not activate")
	}
	if _, ok := l.GhostPosition(); ok {
		t.Error("no ghost before activation")
	}
	if _, ok := l.DropIndex(); ok {
		t.Error("no drop slot before activation")
	}
}

func TestActivationByHoldReleasesAsDrop(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	var taps int
	l.OnItemTap = func(id string) { taps++ }

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	clock.Advance(DefaultHoldDelay)
	// Release in the same frame the hold elapses: still a drop, not a tap.
	l.Update(frameOf(upEv(0, 100, 20)), testDT)

	if taps != 0 {
		t.Error("release after the hold delay is a drop, not a tap")
	}
}

// --- Out-of-bounds and cancellation ---

func TestReleaseAboveContainerCancels(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	var reorders int
	var cancelled CancelReason
	var cancelledID string
	l.OnReorder = func(items []ListItem) { reorders++ }
	l.OnCancel = func(id string, reason CancelReason) {
		cancelledID = id
		cancelled = reason
	}

	l.Update(frameOf(downEv(0, 100, 60)), testDT)
	l.Update(frameOf(moveEv(0, 100, 80)), testDT) // activates
	l.Update(frameOf(moveEv(0, 100, -10)), testDT)

	if _, ok := l.DropIndex(); ok {
		t.Fatal("drop slot must be gone above the container")
	}

	l.Update(frameOf(upEv(0, 100, -10)), testDT)

	wantOrder(t, l.Items(), "a", "b", "c", "d")
	if reorders != 0 {
		t.Error("out-of-bounds release must not reorder")
	}
	if cancelledID != "b" || cancelled != CancelOutOfBounds {
		t.Errorf("cancel = %q %v, want b out-of-bounds", cancelledID, cancelled)
	}
}

func TestHorizontalTravelStaysInBounds(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 45)), testDT)
	// Far off to the side but vertically inside: still droppable.
	l.Update(frameOf(moveEv(0, -300, 110)), testDT)

	if idx, ok := l.DropIndex(); !ok || idx != 2 {
		t.Errorf("DropIndex = %d ok=%v, want 2 true (only the vertical extent counts)", idx, ok)
	}
}

func TestEscapeCancelsActiveDrag(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	var reorders int
	var cancelled CancelReason
	l.OnReorder = func(items []ListItem) { reorders++ }
	l.OnCancel = func(id string, reason CancelReason) { cancelled = reason }

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 110)), testDT)
	if !l.Dragging() {
		t.Fatal("expected active drag")
	}

	l.Update(Frame{Escape: true}, testDT)

	if l.Dragging() {
		t.Error("escape should have ended the drag")
	}
	if cancelled != CancelEscape {
		t.Errorf("cancel reason = %v, want escape", cancelled)
	}
	if reorders != 0 {
		t.Error("escape must not reorder")
	}
	wantOrder(t, l.Items(), "a", "b", "c", "d")

	// The release that follows the cancelled drag is inert.
	l.Update(frameOf(upEv(0, 100, 110)), testDT)
	if reorders != 0 {
		t.Error("release after escape must not reorder")
	}
}

func TestPointerCancelCancelsActiveDrag(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	var cancelled CancelReason
	l.OnCancel = func(id string, reason CancelReason) { cancelled = reason }

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 110)), testDT)
	l.Update(frameOf(cancelEv(0)), testDT)

	if cancelled != CancelPointerLost {
		t.Errorf("cancel reason = %v, want pointer-lost", cancelled)
	}
	wantOrder(t, l.Items(), "a", "b", "c", "d")
}

func TestEscapeDiscardsPendingPressSilently(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	var cancels, taps int
	l.OnCancel = func(id string, reason CancelReason) { cancels++ }
	l.OnItemTap = func(id string) { taps++ }

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(Frame{Escape: true}, testDT)
	l.Update(frameOf(upEv(0, 100, 20)), testDT)

	if cancels != 0 {
		t.Error("a press that never activated cancels without OnCancel")
	}
	if taps != 0 {
		t.Error("an escaped press must not read as a tap")
	}
}

// --- Pointer isolation ---

func TestSecondPointerCancelsPendingPress(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(downEv(1, 100, 140)), testDT)

	// Neither pointer owns a press now; holding changes nothing.
	clock.Advance(time.Second)
	l.Update(frameOf(), testDT)
	if l.Dragging() {
		t.Fatal("second pointer down must cancel the pending press")
	}

	l.Update(frameOf(upEv(0, 100, 20), upEv(1, 100, 140)), testDT)
	wantOrder(t, l.Items(), "a", "b", "c", "d")
}

func TestActiveDragIgnoresOtherPointers(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 45)), testDT)
	if !l.Dragging() || l.DraggedItemID() != "a" {
		t.Fatal("expected active drag of a")
	}

	// A second pointer presses, drags across rows, and releases.
	l.Update(frameOf(downEv(1, 100, 140)), testDT)
	l.Update(frameOf(moveEv(1, 100, 30)), testDT)
	l.Update(frameOf(upEv(1, 100, 30)), testDT)

	if !l.Dragging() || l.DraggedItemID() != "a" {
		t.Fatal("foreign pointers must not disturb the active drag")
	}
	if idx, ok := l.DropIndex(); !ok || idx != 0 {
		t.Errorf("DropIndex = %d ok=%v, want 0 true (from pointer 0's last move)", idx, ok)
	}
	wantOrder(t, l.Items(), "a", "b", "c", "d")

	// The owning pointer still commits normally.
	l.Update(frameOf(upEv(0, 100, 110)), testDT)
	wantOrder(t, l.Items(), "b", "c", "a", "d")
}

func TestNonPrimaryButtonIgnored(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	l.Update(frameOf(PointerEvent{
		Pointer: 0, Phase: PhaseDown, Button: MouseButtonRight, X: 100, Y: 20,
	}), testDT)
	clock.Advance(time.Second)
	l.Update(frameOf(), testDT)

	if l.Dragging() {
		t.Error("right-button presses must not start a drag")
	}
}

// --- Taps and click suppression ---

func TestQuickReleaseIsATap(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	var tapped string
	var reorders int
	l.OnItemTap = func(id string) { tapped = id }
	l.OnReorder = func(items []ListItem) { reorders++ }

	l.Update(frameOf(downEv(0, 100, 60)), testDT)
	clock.Advance(50 * time.Millisecond)
	l.Update(frameOf(upEv(0, 100, 60)), testDT)

	if tapped != "b" {
		t.Errorf("tapped = %q, want b", tapped)
	}
	if reorders != 0 {
		t.Error("a tap must not reorder")
	}
}

func TestClickSuppressionAfterDrag(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	var taps int
	l.OnItemTap = func(id string) { taps++ }

	// Complete a drag of a.
	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 110)), testDT)
	l.Update(frameOf(upEv(0, 100, 110)), testDT)

	if !l.ShouldSuppressClick("a") {
		t.Fatal("the dragged item should be suppressed right after the drop")
	}
	if l.ShouldSuppressClick("b") || l.ShouldSuppressClick("") {
		t.Error("suppression is scoped to the dragged item")
	}

	// A tap on a inside the window is swallowed.
	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(upEv(0, 100, 20)), testDT)
	if taps != 0 {
		t.Fatalf("tap inside the suppression window must be swallowed, got %d", taps)
	}

	// Past the window the item taps normally again.
	clock.Advance(DefaultSuppressClickWindow)
	if l.ShouldSuppressClick("a") {
		t.Fatal("suppression should expire with its window")
	}
	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(upEv(0, 100, 20)), testDT)
	if taps != 1 {
		t.Errorf("taps = %d, want 1 after the window", taps)
	}
}

func TestNoSuppressionAfterCancelledDrag(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 45)), testDT)
	l.Update(Frame{Escape: true}, testDT)

	if l.ShouldSuppressClick("a") {
		t.Error("only completed drags suppress the follow-up click")
	}
}

// --- Ghost and shift ---

func TestGhostPreservesGrabOffset(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	// Grab row a 150px in and 30px down from its origin.
	l.Update(frameOf(downEv(0, 150, 30)), testDT)
	l.Update(frameOf(moveEv(0, 60, 90)), testDT)

	pos, ok := l.GhostPosition()
	if !ok {
		t.Fatal("expected a ghost")
	}
	if pos != (Vec2{X: -90, Y: 60}) {
		t.Errorf("ghost = %+v, want {-90 60}", pos)
	}
}

func TestGhostCoalescesMovesWithinFrame(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	// Three moves land in one tick; only the last should be visible.
	l.Update(frameOf(
		moveEv(0, 100, 50),
		moveEv(0, 100, 70),
		moveEv(0, 100, 90),
	), testDT)

	pos, ok := l.GhostPosition()
	if !ok {
		t.Fatal("expected a ghost")
	}
	if pos.Y != 70 { // 90 - 20px grab offset
		t.Errorf("ghost Y = %v, want 70", pos.Y)
	}
}

func TestItemShiftMakesRoom(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	// Drag a down between c and d: b and c step up, d stays.
	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 110)), testDT)

	for id, want := range map[string]float64{"a": 0, "b": -40, "c": -40, "d": 0} {
		if got := l.ItemShift(id); got != want {
			t.Errorf("ItemShift(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestItemShiftDragUp(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	// Drag d up under a: b and c step down, a stays.
	l.Update(frameOf(downEv(0, 100, 140)), testDT)
	l.Update(frameOf(moveEv(0, 100, 30)), testDT)

	for id, want := range map[string]float64{"a": 0, "b": 40, "c": 40, "d": 0} {
		if got := l.ItemShift(id); got != want {
			t.Errorf("ItemShift(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestItemShiftZeroWhenOutOfBounds(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 110)), testDT)
	l.Update(frameOf(moveEv(0, 100, 300)), testDT) // below the container

	for _, id := range []string{"a", "b", "c", "d"} {
		if got := l.ItemShift(id); got != 0 {
			t.Errorf("ItemShift(%q) = %v, want 0 while out of bounds", id, got)
		}
	}
}

func TestPulseVisibleThroughEngine(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	if l.IsItemActivating("a") {
		t.Fatal("no pulse right after the press")
	}

	clock.Advance(DefaultPulseDelay)
	l.Update(frameOf(), testDT)
	if !l.IsItemActivating("a") {
		t.Fatal("expected the pulse inside its window")
	}
	if l.IsItemActivating("b") {
		t.Error("only the pressed item pulses")
	}

	// Activation ends the pulse.
	l.Update(frameOf(moveEv(0, 100, 45)), testDT)
	if l.IsItemActivating("a") {
		t.Error("no pulse once the drag is active")
	}
}

// --- Teardown ---

func TestDetachMidDragIsSilent(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	var callbacks int
	l.OnReorder = func(items []ListItem) { callbacks++ }
	l.OnCancel = func(id string, reason CancelReason) { callbacks++ }
	l.OnDrop = func(id string, from, to int) { callbacks++ }

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 110)), testDT)
	if !l.Dragging() {
		t.Fatal("expected active drag")
	}

	l.Detach()

	if l.Dragging() {
		t.Error("detach must end the drag")
	}
	if callbacks != 0 {
		t.Error("detach must not run callbacks")
	}

	// Later frames are inert.
	l.Update(frameOf(upEv(0, 100, 110)), testDT)
	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	if callbacks != 0 || l.Dragging() {
		t.Error("a detached engine must ignore input")
	}
	wantOrder(t, l.Items(), "a", "b", "c", "d")
}

func TestNilCallbacksDoNotPanic(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	// Full drop cycle.
	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 110)), testDT)
	l.Update(frameOf(upEv(0, 100, 110)), testDT)
	wantOrder(t, l.Items(), "b", "c", "a", "d")

	// Cancel cycle.
	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 45)), testDT)
	l.Update(Frame{Escape: true}, testDT)

	// Tap cycle.
	clock.Advance(time.Second)
	l.Update(frameOf(downEv(0, 100, 140)), testDT)
	l.Update(frameOf(upEv(0, 100, 140)), testDT)
}

// --- Degenerate inputs ---

func TestEmptyIDRowIsInert(t *testing.T) {
	clock := newTestClock()
	l := NewListDrag(ActivationConfig{})
	l.now = clock.Now
	l.SetItems([]ListItem{{ID: ""}, {ID: "b"}})
	l.SetRowProvider(func() []RowRect {
		return []RowRect{
			{ID: "", Rect: Rect{X: 0, Y: 0, Width: 200, Height: 40}},
			{ID: "b", Rect: Rect{X: 0, Y: 40, Width: 200, Height: 40}},
		}
	})

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	clock.Advance(time.Second)
	l.Update(frameOf(), testDT)

	if l.Dragging() {
		t.Error("rows with empty IDs never drag")
	}
	if l.IsItemBeingDragged("") {
		t.Error("the empty ID is never reported as dragged")
	}
}

func TestRowForUnknownItemIgnored(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)
	l.SetRowProvider(func() []RowRect {
		rows := testRows()
		return append(rows, RowRect{ID: "stale", Rect: Rect{X: 0, Y: 160, Width: 200, Height: 40}})
	})

	l.Update(frameOf(downEv(0, 100, 180)), testDT)
	clock.Advance(time.Second)
	l.Update(frameOf(), testDT)

	if l.Dragging() {
		t.Error("rows for unknown items never drag")
	}
}

func TestNoRowProviderMeansNoDrag(t *testing.T) {
	clock := newTestClock()
	l := NewListDrag(ActivationConfig{})
	l.now = clock.Now
	l.SetItems([]ListItem{{ID: "a"}})

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	clock.Advance(time.Second)
	l.Update(frameOf(), testDT)
	l.Update(frameOf(upEv(0, 100, 20)), testDT)

	if l.Dragging() {
		t.Error("no geometry, no drag")
	}
}

func TestNoContainerProviderNeverCancels(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)
	l.SetContainerProvider(nil)

	var reordered []ListItem
	l.OnReorder = func(items []ListItem) { reordered = items }

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 1000)), testDT) // way past every row

	if idx, ok := l.DropIndex(); !ok || idx != 3 {
		t.Fatalf("DropIndex = %d ok=%v, want 3 true without a container", idx, ok)
	}
	l.Update(frameOf(upEv(0, 100, 1000)), testDT)
	wantOrder(t, reordered, "b", "c", "d", "a")
}

func TestSetItemsRemovingDraggedItemDiscardsDrag(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	var callbacks int
	l.OnCancel = func(id string, reason CancelReason) { callbacks++ }
	l.OnReorder = func(items []ListItem) { callbacks++ }

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 45)), testDT)

	l.SetItems([]ListItem{{ID: "b"}, {ID: "c"}, {ID: "d"}})

	if l.Dragging() {
		t.Error("removing the dragged item ends the drag")
	}
	if callbacks != 0 {
		t.Error("the quiet discard runs no callbacks")
	}

	l.Update(frameOf(upEv(0, 100, 45)), testDT)
	wantOrder(t, l.Items(), "b", "c", "d")
}

func TestSetItemsMidDragRefreshesOrigin(t *testing.T) {
	clock := newTestClock()
	l := newTestList(clock)

	l.Update(frameOf(downEv(0, 100, 20)), testDT)
	l.Update(frameOf(moveEv(0, 100, 45)), testDT)
	if !l.IsItemBeingDragged("a") {
		t.Fatal("expected drag of a")
	}

	// The caller reshuffles behind the engine's back; a now sits at index 2.
	l.SetItems([]ListItem{{ID: "b"}, {ID: "c"}, {ID: "a"}, {ID: "d"}})

	// Dropping at the top must move a from its refreshed origin.
	l.Update(frameOf(moveEv(0, 100, 10)), testDT)
	l.Update(frameOf(upEv(0, 100, 10)), testDT)
	wantOrder(t, l.Items(), "a", "b", "c", "d")
}

// --- reorderItems ---

func TestReorderItems(t *testing.T) {
	base := []ListItem{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}

	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"backward", 3, 0, []string{"d", "a", "b", "c"}},
		{"adjacent swap", 1, 2, []string{"a", "c", "b", "d"}},
		{"no-op", 2, 2, []string{"a", "b", "c", "d"}},
		{"to end", 0, 3, []string{"b", "c", "d", "a"}},
		{"from out of range", 9, 1, []string{"a", "b", "c", "d"}},
		{"to out of range", 1, 9, []string{"a", "b", "c", "d"}},
		{"negative from", -1, 2, []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reorderItems(base, tt.from, tt.to)
			wantOrder(t, got, tt.want...)
			// The input is never mutated.
			wantOrder(t, base, "a", "b", "c", "d")
		})
	}
}

func TestReorderItemsCopies(t *testing.T) {
	base := []ListItem{{ID: "a"}, {ID: "b"}}
	got := reorderItems(base, 0, 0)
	got[0].ID = "changed"
	if base[0].ID != "a" {
		t.Error("reorderItems must return an independent copy")
	}
}
