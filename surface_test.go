package pebble

import (
	"fmt"
	"strings"
)

// recordingSurface is a Surface that logs every call and tracks state with a
// StateTracker, so tests can assert both the call sequence and the resulting
// device-space geometry.
type recordingSurface struct {
	*StateTracker
	w, h  float64
	calls []string

	// fills holds the device-space path and alpha of every Fill call.
	fills []recordedFill
	// textWidth is the advance of one rune returned by MeasureText.
	textWidth float64
}

type recordedFill struct {
	color Color
	alpha float64
	path  []Polygon
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{StateTracker: NewStateTracker(), w: w, h: h, textWidth: 10}
}

func (r *recordingSurface) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

// ops returns the logged calls whose names start with any of the prefixes.
func (r *recordingSurface) ops(prefixes ...string) []string {
	var out []string
	for _, c := range r.calls {
		for _, p := range prefixes {
			if strings.HasPrefix(c, p) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func (r *recordingSurface) Size() (float64, float64) { return r.w, r.h }

func (r *recordingSurface) Clear() {
	r.log("Clear")
	r.StateTracker.Reset()
}

func (r *recordingSurface) Save() {
	r.log("Save")
	r.StateTracker.Save()
}

func (r *recordingSurface) Restore() {
	r.log("Restore")
	r.StateTracker.Restore()
}

func (r *recordingSurface) Translate(x, y float64) {
	r.log("Translate(%g,%g)", x, y)
	r.StateTracker.Translate(x, y)
}

func (r *recordingSurface) Rotate(a float64) {
	r.log("Rotate(%g)", a)
	r.StateTracker.Rotate(a)
}

func (r *recordingSurface) Scale(sx, sy float64) {
	r.log("Scale(%g,%g)", sx, sy)
	r.StateTracker.Scale(sx, sy)
}

func (r *recordingSurface) SetAlpha(a float64) {
	r.log("SetAlpha(%g)", a)
	r.StateTracker.SetAlpha(a)
}

func (r *recordingSurface) SetShadow(sh Shadow) {
	r.log("SetShadow(%g,%g)", sh.OffsetX, sh.OffsetY)
	r.StateTracker.SetShadow(sh)
}

func (r *recordingSurface) SetBlendMode(b BlendMode) {
	r.log("SetBlendMode(%s)", b)
	r.StateTracker.SetBlendMode(b)
}

func (r *recordingSurface) BeginPath() {
	r.log("BeginPath")
	r.StateTracker.BeginPath()
}

func (r *recordingSurface) Rect(x, y, w, h float64) {
	r.log("Rect(%g,%g,%g,%g)", x, y, w, h)
	r.StateTracker.Rect(x, y, w, h)
}

func (r *recordingSurface) Arc(cx, cy, rad, start, end float64) {
	r.log("Arc(%g,%g,%g)", cx, cy, rad)
	r.StateTracker.Arc(cx, cy, rad, start, end)
}

func (r *recordingSurface) MoveTo(x, y float64) {
	r.log("MoveTo(%g,%g)", x, y)
	r.StateTracker.MoveTo(x, y)
}

func (r *recordingSurface) LineTo(x, y float64) {
	r.log("LineTo(%g,%g)", x, y)
	r.StateTracker.LineTo(x, y)
}

func (r *recordingSurface) Fill(c Color) {
	r.log("Fill")
	r.fills = append(r.fills, recordedFill{color: c, alpha: r.State().Alpha, path: r.PathPolygons()})
}

func (r *recordingSurface) Stroke(c Color, width float64, join LineJoin) {
	r.log("Stroke(%g,%d)", width, join)
}

func (r *recordingSurface) Clip() {
	r.log("Clip")
	r.StateTracker.ClipPath()
}

func (r *recordingSurface) FillText(s string, x, y float64, font Font, baseline TextBaseline, c Color) {
	r.log("FillText(%s)", s)
}

func (r *recordingSurface) StrokeText(s string, x, y float64, font Font, baseline TextBaseline, c Color, width float64) {
	r.log("StrokeText(%s)", s)
}

func (r *recordingSurface) MeasureText(s string, font Font) float64 {
	return float64(len([]rune(s))) * r.textWidth
}

var _ Surface = (*recordingSurface)(nil)
