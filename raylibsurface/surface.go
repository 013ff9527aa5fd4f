// Package raylibsurface implements pebble.Surface with raylib immediate-mode
// drawing. Draw only between rl.BeginDrawing and rl.EndDrawing, on the
// thread that opened the window; Run does both.
//
// Fills are drawn as triangle fans, so non-convex paths are not supported.
// Clipping uses raylib's scissor rectangle, which covers the bounding box
// of the clip regions rather than their exact shape.
package raylibsurface

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/phanxgames/pebble"
)

// Options configures a Surface.
type Options struct {
	// Background is the color Clear fills with. Zero uses black.
	Background pebble.Color
	// Fonts resolves text fonts. Nil uses pebble.DefaultFonts.
	Fonts *pebble.FontBook
}

// Surface draws onto the current raylib window.
type Surface struct {
	*pebble.StateTracker

	background rl.Color
	fonts      *pebble.FontBook
	loaded     map[*pebble.FontData]rl.Font
}

// New creates a surface for the open window.
func New(opts Options) *Surface {
	bg := opts.Background
	if bg.IsNone() {
		bg = pebble.ColorBlack
	}
	if opts.Fonts == nil {
		opts.Fonts = pebble.DefaultFonts
	}
	return &Surface{
		StateTracker: pebble.NewStateTracker(),
		background:   toRL(bg),
		fonts:        opts.Fonts,
		loaded:       make(map[*pebble.FontData]rl.Font),
	}
}

// Size returns the window size.
func (s *Surface) Size() (float64, float64) {
	return float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
}

// Clear fills the window with the background and resets the drawing state.
func (s *Surface) Clear() {
	rl.ClearBackground(s.background)
	s.Reset()
}

// Fill fills the current path.
func (s *Surface) Fill(c pebble.Color) {
	if c.IsNone() {
		return
	}
	polys := s.PathPolygons()
	st := s.State()
	s.paint(func() {
		if st.Shadow.Enabled {
			shadow := pebble.OffsetPolygons(polys, st.Shadow.OffsetX, st.Shadow.OffsetY)
			fillPolygons(shadow, toRL(st.Shadow.Color.WithAlpha(st.Alpha)))
		}
		fillPolygons(polys, toRL(c.WithAlpha(st.Alpha)))
	})
}

// Stroke strokes the current path.
func (s *Surface) Stroke(c pebble.Color, width float64, join pebble.LineJoin) {
	if c.IsNone() || width <= 0 {
		return
	}
	st := s.State()
	thick := float32(width * st.Transform.ScaleFactor())
	path := s.Path()
	s.paint(func() {
		if st.Shadow.Enabled {
			strokePath(path, st.Shadow.OffsetX, st.Shadow.OffsetY, thick, join, toRL(st.Shadow.Color.WithAlpha(st.Alpha)))
		}
		strokePath(path, 0, 0, thick, join, toRL(c.WithAlpha(st.Alpha)))
	})
}

// Clip intersects the clip region with the current path.
func (s *Surface) Clip() {
	s.ClipPath()
}

// paint runs draw inside the current blend and scissor modes.
func (s *Surface) paint(draw func()) {
	st := s.State()
	if r, ok := clipRect(st.Clips); ok {
		if r.Width <= 0 || r.Height <= 0 {
			return
		}
		rl.BeginScissorMode(int32(r.X), int32(r.Y), int32(math.Ceil(r.Width)), int32(math.Ceil(r.Height)))
		defer rl.EndScissorMode()
	}
	if applyBlend(st.Blend) {
		defer rl.EndBlendMode()
	}
	draw()
}

func fillPolygons(polys []pebble.Polygon, c rl.Color) {
	for _, p := range polys {
		for _, tri := range fanTriangles(p) {
			rl.DrawTriangle(tri[0], tri[1], tri[2], c)
		}
	}
}

// fanTriangles splits a convex polygon into triangles, each ordered the way
// raylib expects (counter-clockwise on screen).
func fanTriangles(p pebble.Polygon) [][3]rl.Vector2 {
	if len(p) < 3 {
		return nil
	}
	tris := make([][3]rl.Vector2, 0, len(p)-2)
	for i := 1; i+1 < len(p); i++ {
		a, b, c := p[0], p[i], p[i+1]
		cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
		if cross == 0 {
			continue
		}
		if cross > 0 {
			b, c = c, b
		}
		tris = append(tris, [3]rl.Vector2{vec(a), vec(b), vec(c)})
	}
	return tris
}

func strokePath(path []pebble.Subpath, dx, dy float64, thick float32, join pebble.LineJoin, c rl.Color) {
	off := pebble.Vec2{X: dx, Y: dy}
	pebble.StrokeSegments(path, func(a, b pebble.Vec2) {
		a, b = add(a, off), add(b, off)
		rl.DrawLineEx(vec(a), vec(b), thick, c)
		if join == pebble.LineJoinRound {
			rl.DrawCircleV(vec(b), thick/2, c)
		}
	})
}

// clipRect intersects the bounding boxes of every clip region.
func clipRect(clips [][]pebble.Polygon) (pebble.Rect, bool) {
	if len(clips) == 0 {
		return pebble.Rect{}, false
	}
	r := pebble.PolygonsBounds(clips[0])
	for _, region := range clips[1:] {
		b := pebble.PolygonsBounds(region)
		x0, y0 := math.Max(r.X, b.X), math.Max(r.Y, b.Y)
		x1 := math.Min(r.X+r.Width, b.X+b.Width)
		y1 := math.Min(r.Y+r.Height, b.Y+b.Height)
		r = pebble.Rect{X: x0, Y: y0, Width: math.Max(0, x1-x0), Height: math.Max(0, y1-y0)}
	}
	return r, true
}

func add(a, b pebble.Vec2) pebble.Vec2 {
	return pebble.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func vec(v pebble.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func toRL(c pebble.Color) rl.Color {
	r, g, b, a := c.RGBA8()
	return rl.NewColor(r, g, b, a)
}

var _ pebble.Surface = (*Surface)(nil)
