// Package ebitensurface implements pebble.Surface on an *ebiten.Image.
//
// Paths are filled and stroked through ebiten's vector package using a
// shared white pixel. Clipped paint goes through a pooled offscreen layer
// that is masked by each clip region before being composited onto the
// target.
package ebitensurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/pebble"
)

// Surface draws onto an ebiten image. Not safe for concurrent use; call it
// from the game's Draw.
type Surface struct {
	*pebble.StateTracker

	dst        *ebiten.Image
	background pebble.Color
	fonts      *pebble.FontBook
	faces      faceCache
	pool       layerPool
	white      *ebiten.Image

	verts []ebiten.Vertex
	inds  []uint16
}

// New creates a surface drawing onto dst. A nil fonts uses
// pebble.DefaultFonts.
func New(dst *ebiten.Image, fonts *pebble.FontBook) *Surface {
	if fonts == nil {
		fonts = pebble.DefaultFonts
	}
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Surface{
		StateTracker: pebble.NewStateTracker(),
		dst:          dst,
		fonts:        fonts,
		white:        white,
	}
}

// SetTarget switches the image drawn onto.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Target returns the image drawn onto.
func (s *Surface) Target() *ebiten.Image {
	return s.dst
}

// Size returns the target's size in pixels.
func (s *Surface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// SetBackground sets the color Clear fills with. ColorNone, the default,
// clears to transparent.
func (s *Surface) SetBackground(c pebble.Color) {
	s.background = c
}

// Clear erases the target and resets the drawing state.
func (s *Surface) Clear() {
	if s.background.IsNone() {
		s.dst.Clear()
	} else {
		s.dst.Fill(colorOf(s.background))
	}
	s.Reset()
}

// Fill fills the current path with c using the non-zero winding rule.
func (s *Surface) Fill(c pebble.Color) {
	if c.IsNone() {
		return
	}
	polys := s.PathPolygons()
	st := s.State()
	s.paint(func(dst *ebiten.Image, blend ebiten.Blend) {
		if st.Shadow.Enabled {
			shadow := pebble.OffsetPolygons(polys, st.Shadow.OffsetX, st.Shadow.OffsetY)
			s.fillPolygons(dst, shadow, st.Shadow.Color.WithAlpha(st.Alpha), blend)
		}
		s.fillPolygons(dst, polys, c.WithAlpha(st.Alpha), blend)
	})
}

// Stroke strokes the current path. The width is scaled by the current
// transform.
func (s *Surface) Stroke(c pebble.Color, width float64, join pebble.LineJoin) {
	if c.IsNone() || width <= 0 {
		return
	}
	st := s.State()
	path := s.Path()
	opts := &vector.StrokeOptions{
		Width:      float32(width * st.Transform.ScaleFactor()),
		LineJoin:   lineJoin(join),
		MiterLimit: 10,
	}
	s.paint(func(dst *ebiten.Image, blend ebiten.Blend) {
		if st.Shadow.Enabled {
			var p vector.Path
			appendSubpaths(&p, path, st.Shadow.OffsetX, st.Shadow.OffsetY)
			s.strokePath(dst, &p, opts, st.Shadow.Color.WithAlpha(st.Alpha), blend)
		}
		var p vector.Path
		appendSubpaths(&p, path, 0, 0)
		s.strokePath(dst, &p, opts, c.WithAlpha(st.Alpha), blend)
	})
}

// Clip intersects the clip region with the current path.
func (s *Surface) Clip() {
	s.ClipPath()
}

// paint runs draw against the target, or against an offscreen layer masked
// by every active clip region.
func (s *Surface) paint(draw func(dst *ebiten.Image, blend ebiten.Blend)) {
	st := s.State()
	blend := Blend(st.Blend)
	if len(st.Clips) == 0 {
		draw(s.dst, blend)
		return
	}

	b := s.dst.Bounds()
	layer := s.pool.Acquire(b.Dx(), b.Dy())
	draw(layer, ebiten.BlendSourceOver)
	for _, region := range st.Clips {
		mask := s.pool.Acquire(b.Dx(), b.Dy())
		s.fillPolygons(mask, region, pebble.ColorWhite, ebiten.BlendSourceOver)
		layer.DrawImage(mask, &ebiten.DrawImageOptions{Blend: Blend(pebble.BlendMask)})
		s.pool.Release(mask)
	}
	op := &ebiten.DrawImageOptions{Blend: blend}
	op.GeoM.Translate(float64(b.Min.X), float64(b.Min.Y))
	s.dst.DrawImage(layer, op)
	s.pool.Release(layer)
}

func (s *Surface) fillPolygons(dst *ebiten.Image, polys []pebble.Polygon, c pebble.Color, blend ebiten.Blend) {
	var p vector.Path
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		p.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, v := range poly[1:] {
			p.LineTo(float32(v.X), float32(v.Y))
		}
		p.Close()
	}
	s.verts, s.inds = p.AppendVerticesAndIndicesForFilling(s.verts[:0], s.inds[:0])
	s.drawTriangles(dst, c, blend, ebiten.FillRuleNonZero)
}

func (s *Surface) strokePath(dst *ebiten.Image, p *vector.Path, opts *vector.StrokeOptions, c pebble.Color, blend ebiten.Blend) {
	s.verts, s.inds = p.AppendVerticesAndIndicesForStroke(s.verts[:0], s.inds[:0], opts)
	s.drawTriangles(dst, c, blend, ebiten.FillRuleFillAll)
}

func (s *Surface) drawTriangles(dst *ebiten.Image, c pebble.Color, blend ebiten.Blend, rule ebiten.FillRule) {
	if len(s.inds) == 0 {
		return
	}
	for i := range s.verts {
		s.verts[i].SrcX, s.verts[i].SrcY = 0, 0
		s.verts[i].ColorR = float32(c.R)
		s.verts[i].ColorG = float32(c.G)
		s.verts[i].ColorB = float32(c.B)
		s.verts[i].ColorA = float32(c.A)
	}
	dst.DrawTriangles(s.verts, s.inds, s.white, &ebiten.DrawTrianglesOptions{
		Blend:     blend,
		FillRule:  rule,
		AntiAlias: true,
	})
}

// appendSubpaths adds device-space subpaths to p, moved by (dx, dy).
func appendSubpaths(p *vector.Path, path []pebble.Subpath, dx, dy float64) {
	for _, sp := range path {
		if len(sp.Points) == 0 {
			continue
		}
		p.MoveTo(float32(sp.Points[0].X+dx), float32(sp.Points[0].Y+dy))
		for _, v := range sp.Points[1:] {
			p.LineTo(float32(v.X+dx), float32(v.Y+dy))
		}
		if sp.Closed {
			p.Close()
		}
	}
}

func lineJoin(j pebble.LineJoin) vector.LineJoin {
	switch j {
	case pebble.LineJoinRound:
		return vector.LineJoinRound
	case pebble.LineJoinBevel:
		return vector.LineJoinBevel
	default:
		return vector.LineJoinMiter
	}
}

// geoM converts the current transform into an ebiten.GeoM.
func geoM(m pebble.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

var _ pebble.Surface = (*Surface)(nil)
