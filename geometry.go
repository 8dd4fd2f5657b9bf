package touchline

import "math"

// DefaultBoardMargin is the percent inset kept between a chip center and each
// board edge when clamping.
const DefaultBoardMargin = 3.0

// BoardTransform maps between screen pixels and board-percent coordinates.
// Board space runs 0..100 on both axes with the origin at the top-left, so
// positions survive container resizes. The container rectangle is re-read
// through BoundsFunc on every conversion; a nil or zero-sized result degrades
// to neutral values instead of panicking.
type BoardTransform struct {
	// BoundsFunc returns the live container rectangle in screen pixels.
	BoundsFunc func() Rect

	// Margin is the percent inset enforced by ClampToBounds on each axis.
	Margin float64
}

// NewBoardTransform returns a transform with the default margin. The bounds
// function may be nil; conversions then return neutral values.
func NewBoardTransform(bounds func() Rect) *BoardTransform {
	return &BoardTransform{BoundsFunc: bounds, Margin: DefaultBoardMargin}
}

func (t *BoardTransform) bounds() Rect {
	if t == nil || t.BoundsFunc == nil {
		return Rect{}
	}
	return t.BoundsFunc()
}

// ScreenToBoard converts a screen-pixel position to board-percent
// coordinates. Returns the zero vector when the container has no area.
func (t *BoardTransform) ScreenToBoard(sx, sy float64) Vec2 {
	b := t.bounds()
	if b.Empty() {
		return Vec2{}
	}
	return Vec2{
		X: (sx - b.X) / b.Width * 100,
		Y: (sy - b.Y) / b.Height * 100,
	}
}

// BoardToScreen converts board-percent coordinates to a screen-pixel
// position. Returns the container origin when the container has no area.
func (t *BoardTransform) BoardToScreen(bx, by float64) Vec2 {
	b := t.bounds()
	if b.Empty() {
		return Vec2{X: b.X, Y: b.Y}
	}
	return Vec2{
		X: b.X + bx/100*b.Width,
		Y: b.Y + by/100*b.Height,
	}
}

// ClampToBounds restricts board-percent coordinates so they stay at least
// Margin percent away from every edge. The result is always in range, for
// any input including infinities and NaN.
func (t *BoardTransform) ClampToBounds(bx, by float64) Vec2 {
	margin := DefaultBoardMargin
	if t != nil {
		margin = t.Margin
	}
	lo, hi := margin, 100-margin
	return Vec2{
		X: clampRange(bx, lo, hi),
		Y: clampRange(by, lo, hi),
	}
}

// DragOffset returns the pixel offset between a pointer position and a
// chip's screen anchor. Subtracting the offset from later pointer positions
// keeps the grab point fixed under the pointer for the whole drag.
func (t *BoardTransform) DragOffset(pointerX, pointerY, chipX, chipY float64) Vec2 {
	anchor := t.BoardToScreen(chipX, chipY)
	return Vec2{X: pointerX - anchor.X, Y: pointerY - anchor.Y}
}

// RowRect is the measured screen rectangle of one list row, keyed by the
// item it renders. Row providers return these in visual order.
type RowRect struct {
	ID   string
	Rect Rect
}

// hitRow returns the topmost row containing (x, y). Rows later in the slice
// are treated as drawn on top, matching reverse painter order.
func hitRow(rows []RowRect, x, y float64) (RowRect, bool) {
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Rect.Contains(x, y) {
			return rows[i], true
		}
	}
	return RowRect{}, false
}

// pointInCircle reports whether (x, y) lies within radius of (cx, cy).
// Points on the rim are considered inside.
func pointInCircle(cx, cy, r, x, y float64) bool {
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= r*r
}

// clampRange restricts v to [lo, hi]. A NaN input maps to the lower bound so
// the result is always in range. If lo exceeds hi the midpoint is returned.
func clampRange(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
