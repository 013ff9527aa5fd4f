package pebble

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common colors. ColorNone means "do not paint" for fills and strokes.
var (
	ColorNone   = Color{}
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorGray   = Color{128.0 / 255, 128.0 / 255, 128.0 / 255, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorShadow = Color{100.0 / 255, 100.0 / 255, 100.0 / 255, 0.5}
)

// IsNone reports whether c paints nothing.
func (c Color) IsNone() bool {
	return c.A <= 0
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// RGBA8 returns the straight-alpha 8-bit components of c.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and sizes.
type Vec2 struct {
	X, Y float64
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

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// BlendMode selects a compositing operation. The zero value leaves the
// surface's current operation untouched.
type BlendMode uint8

const (
	BlendDefault  BlendMode = iota // not set; inherit the surface state
	BlendNormal                    // source-over (standard alpha blending)
	BlendAdd                       // lighter
	BlendMultiply                  // multiply (only darkens)
	BlendScreen                    // screen (only brightens)
	BlendErase                     // destination-out (punch transparent holes)
	BlendMask                      // destination-in (clip destination to source alpha)
	BlendBelow                     // destination-over (draw behind existing content)
	BlendCopy                      // copy (skip blending)
)

var blendNames = [...]string{
	BlendDefault:  "",
	BlendNormal:   "source-over",
	BlendAdd:      "lighter",
	BlendMultiply: "multiply",
	BlendScreen:   "screen",
	BlendErase:    "destination-out",
	BlendMask:     "destination-in",
	BlendBelow:    "destination-over",
	BlendCopy:     "copy",
}

// String returns the composite operation name used by 2D canvases.
func (b BlendMode) String() string {
	if int(b) < len(blendNames) {
		return blendNames[b]
	}
	return "unknown"
}

// ParseBlendMode maps a composite operation name ("multiply", "lighter", ...)
// to a BlendMode. The empty string maps to BlendDefault.
func ParseBlendMode(name string) (BlendMode, bool) {
	for i, n := range blendNames {
		if n == name {
			return BlendMode(i), true
		}
	}
	return BlendDefault, false
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // plain container / stage, no visual output
	NodeTypeRectangle                 // filled and/or stroked rectangle
	NodeTypeCircle                    // filled and/or stroked circle
	NodeTypeLine                      // single stroked segment
	NodeTypeText                      // single line of text
	NodeTypeGroup                     // container sized to fit its children
)

var nodeTypeNames = [...]string{"container", "rectangle", "circle", "line", "text", "group"}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "unknown"
}

// LineJoin controls how stroked path corners are drawn.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// TextBaseline selects which text line is placed at the drawing origin.
type TextBaseline uint8

const (
	BaselineTop TextBaseline = iota
	BaselineMiddle
	BaselineAlphabetic
	BaselineBottom
)

// Shadow describes an optional drop shadow drawn under a node's paint.
type Shadow struct {
	Enabled          bool
	Color            Color
	OffsetX, OffsetY float64
	Blur             float64
}

// DefaultShadow returns the shadow parameters assigned to new nodes.
// The shadow is disabled until Enabled is set.
func DefaultShadow() Shadow {
	return Shadow{Color: ColorShadow, OffsetX: 3, OffsetY: 3, Blur: 3}
}
