package pebble

// Surface is an immediate-mode 2D drawing target with canvas semantics:
// a save/restore state stack holding the current transform, alpha, blend
// mode, shadow and clip, plus a current path that Fill, Stroke and Clip
// consume.
//
// Coordinates passed to path and text methods are in the current user space;
// implementations apply the current transform. Backends live in the
// ebitensurface, termsurface and raylibsurface packages. Most of them embed
// a StateTracker for the bookkeeping and only implement the painting.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (width, height float64)
	// Clear erases the whole surface to transparent.
	Clear()

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(sx, sy float64)
	// SetAlpha sets the global alpha (not multiplied with the current one).
	SetAlpha(a float64)
	SetShadow(sh Shadow)
	SetBlendMode(b BlendMode)

	BeginPath()
	Rect(x, y, w, h float64)
	// Arc adds a clockwise arc around (cx, cy) from start to end (radians).
	Arc(cx, cy, r, start, end float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Fill(c Color)
	Stroke(c Color, width float64, join LineJoin)
	// Clip intersects the clip region with the current path until the
	// matching Restore.
	Clip()

	FillText(s string, x, y float64, font Font, baseline TextBaseline, c Color)
	StrokeText(s string, x, y float64, font Font, baseline TextBaseline, c Color, width float64)
	// MeasureText returns the advance width of s in font.
	MeasureText(s string, font Font) float64
}
