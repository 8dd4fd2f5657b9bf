package touchline

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the
// API.
type Vec2 struct {
	X, Y float64
}

// WhitePixel is a 1x1 white image used by default for solid color fills.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsY reports whether y lies inside the rectangle's vertical extent.
// Values on the edge are considered inside.
func (r Rect) ContainsY(y float64) bool {
	return y >= r.Y && y <= r.Y+r.Height
}

// MidY returns the vertical midpoint of the rectangle.
func (r Rect) MidY() float64 {
	return r.Y + r.Height/2
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// toRGBA converts a touchline Color to a color.RGBA (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

// MouseButton identifies a mouse button. Touches report MouseButtonLeft.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Phase identifies the lifecycle stage of a pointer event.
type Phase uint8

const (
	PhaseDown   Phase = iota // button pressed or touch started
	PhaseMove                // pointer moved (with or without a button held)
	PhaseUp                  // button released or touch ended
	PhaseCancel              // pointer lost without a release (window blur, palm rejection)
)

// PointerEvent is a single sampled pointer transition. Pointer 0 is the
// mouse; touches occupy pointers 1 and up for as long as they stay down.
type PointerEvent struct {
	Pointer int
	Phase   Phase
	Button  MouseButton
	X, Y    float64
}

// Frame is one tick's worth of input, produced by Input.ReadFrame and fed to
// the engines' Update methods. The Events slice is reused between frames and
// must not be retained.
type Frame struct {
	Events []PointerEvent
	Escape bool // Escape was pressed this frame
}

// CancelReason explains why an in-progress drag was abandoned.
type CancelReason uint8

const (
	CancelOutOfBounds   CancelReason = iota // released outside the container's vertical extent
	CancelPointerLost                       // the pointer was cancelled by the platform
	CancelEscape                            // the Escape key was pressed mid-drag
	CancelSecondPointer                     // another pointer went down before activation
	CancelDetach                            // Detach was called mid-drag
)

// String returns a short name for the cancel reason, for logs and replays.
func (c CancelReason) String() string {
	switch c {
	case CancelOutOfBounds:
		return "out-of-bounds"
	case CancelPointerLost:
		return "pointer-lost"
	case CancelEscape:
		return "escape"
	case CancelSecondPointer:
		return "second-pointer"
	case CancelDetach:
		return "detach"
	default:
		return "unknown"
	}
}
