// Package termsurface implements pebble.Surface on a tcell terminal screen.
//
// Each terminal cell stands for a block of CellWidth by CellHeight pixels.
// Fills and strokes are rasterized by sampling cell centres; text is laid
// out one rune per cell. Paint accumulates in a cell buffer that Show
// copies to the screen.
package termsurface

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/pebble"
)

// Options configures a Surface.
type Options struct {
	// CellWidth and CellHeight are the pixel size of one cell. Zero uses
	// 8 by 16.
	CellWidth, CellHeight float64
	// Background is the color cells start from after Clear. Zero uses black.
	Background pebble.Color
}

type cell struct {
	bg   colorful.Color
	ch   rune
	fg   colorful.Color
	text bool
}

// Surface rasterizes pebble drawing calls onto a tcell.Screen.
type Surface struct {
	*pebble.StateTracker

	screen     tcell.Screen
	cellW      float64
	cellH      float64
	background colorful.Color
	cols, rows int
	cells      []cell
}

// New creates a surface drawing onto screen. The screen must be
// initialized.
func New(screen tcell.Screen, opts Options) *Surface {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	bg := opts.Background
	if bg.IsNone() {
		bg = pebble.ColorBlack
	}
	s := &Surface{
		StateTracker: pebble.NewStateTracker(),
		screen:       screen,
		cellW:        opts.CellWidth,
		cellH:        opts.CellHeight,
		background:   colorful.Color{R: bg.R, G: bg.G, B: bg.B},
	}
	s.resize()
	return s
}

func (s *Surface) resize() {
	cols, rows := s.screen.Size()
	if cols == s.cols && rows == s.rows && s.cells != nil {
		return
	}
	s.cols, s.rows = cols, rows
	s.cells = make([]cell, cols*rows)
	s.clearCells()
}

func (s *Surface) clearCells() {
	for i := range s.cells {
		s.cells[i] = cell{bg: s.background}
	}
}

// Size returns the screen size in pixels.
func (s *Surface) Size() (float64, float64) {
	return float64(s.cols) * s.cellW, float64(s.rows) * s.cellH
}

// Clear resets every cell to the background and resets the drawing state.
// A resized screen is picked up here.
func (s *Surface) Clear() {
	s.resize()
	s.clearCells()
	s.Reset()
}

// Show copies the cell buffer to the screen and shows it.
func (s *Surface) Show() {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			style := tcell.StyleDefault.Background(tcellColor(c.bg))
			ch := ' '
			if c.text {
				ch = c.ch
				style = style.Foreground(tcellColor(c.fg))
			}
			s.screen.SetContent(col, row, ch, nil, style)
		}
	}
	s.screen.Show()
}

// Fill paints every cell whose centre is inside the current path.
func (s *Surface) Fill(c pebble.Color) {
	if c.IsNone() {
		return
	}
	polys := s.PathPolygons()
	st := s.State()
	if st.Shadow.Enabled {
		shadow := pebble.OffsetPolygons(polys, st.Shadow.OffsetX, st.Shadow.OffsetY)
		s.rasterize(pebble.PolygonsBounds(shadow), st.Shadow.Color.WithAlpha(st.Alpha), func(x, y float64) bool {
			return pebble.PolygonsContain(shadow, x, y)
		})
	}
	s.rasterize(pebble.PolygonsBounds(polys), c.WithAlpha(st.Alpha), func(x, y float64) bool {
		return pebble.PolygonsContain(polys, x, y)
	})
}

// Stroke paints every cell whose centre lies within half the line width of
// a path segment. Lines thinner than a cell still cover the cells they
// cross.
func (s *Surface) Stroke(c pebble.Color, width float64, _ pebble.LineJoin) {
	if c.IsNone() || width <= 0 {
		return
	}
	st := s.State()
	half := math.Max(width*st.Transform.ScaleFactor(), math.Min(s.cellW, s.cellH)) / 2

	var segs [][2]pebble.Vec2
	pebble.StrokeSegments(s.Path(), func(a, b pebble.Vec2) {
		segs = append(segs, [2]pebble.Vec2{a, b})
	})
	if len(segs) == 0 {
		return
	}
	bounds := pebble.PolygonsBounds(s.PathPolygons())
	bounds = pebble.Rect{X: bounds.X - half, Y: bounds.Y - half, Width: bounds.Width + 2*half, Height: bounds.Height + 2*half}
	onLine := func(dx, dy float64) func(x, y float64) bool {
		return func(x, y float64) bool {
			for _, sg := range segs {
				a := pebble.Vec2{X: sg[0].X + dx, Y: sg[0].Y + dy}
				b := pebble.Vec2{X: sg[1].X + dx, Y: sg[1].Y + dy}
				if pebble.SegmentDistance(a, b, x, y) <= half {
					return true
				}
			}
			return false
		}
	}
	if st.Shadow.Enabled {
		sb := bounds
		sb.X += st.Shadow.OffsetX
		sb.Y += st.Shadow.OffsetY
		s.rasterize(sb, st.Shadow.Color.WithAlpha(st.Alpha), onLine(st.Shadow.OffsetX, st.Shadow.OffsetY))
	}
	s.rasterize(bounds, c.WithAlpha(st.Alpha), onLine(0, 0))
}

// Clip intersects the clip region with the current path.
func (s *Surface) Clip() {
	s.ClipPath()
}

// rasterize composites c into every visible cell within bounds whose centre
// passes inside.
func (s *Surface) rasterize(bounds pebble.Rect, c pebble.Color, inside func(x, y float64) bool) {
	c0 := max(0, int(math.Floor(bounds.X/s.cellW)))
	r0 := max(0, int(math.Floor(bounds.Y/s.cellH)))
	c1 := min(s.cols-1, int(math.Ceil((bounds.X+bounds.Width)/s.cellW)))
	r1 := min(s.rows-1, int(math.Ceil((bounds.Y+bounds.Height)/s.cellH)))
	blend := s.State().Blend
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x := (float64(col) + 0.5) * s.cellW
			y := (float64(row) + 0.5) * s.cellH
			if !inside(x, y) || !s.Visible(x, y) {
				continue
			}
			p := &s.cells[row*s.cols+col]
			p.bg = composite(p.bg, c, blend, s.background)
			if blend == pebble.BlendErase || blend == pebble.BlendCopy {
				p.text = false
			}
		}
	}
}

// Cell returns the background color and rune of the cell at (col, row).
// The rune is 0 for cells without text.
func (s *Surface) Cell(col, row int) (pebble.Color, rune) {
	c := s.cells[row*s.cols+col]
	var ch rune
	if c.text {
		ch = c.ch
	}
	return pebble.Color{R: c.bg.R, G: c.bg.G, B: c.bg.B, A: 1}, ch
}

// composite blends src over dst with the given mode. Cells are opaque, so
// erasing returns the background.
func composite(dst colorful.Color, src pebble.Color, mode pebble.BlendMode, background colorful.Color) colorful.Color {
	a := math.Min(1, math.Max(0, src.A))
	s := colorful.Color{R: src.R, G: src.G, B: src.B}
	var out colorful.Color
	switch mode {
	case pebble.BlendAdd:
		out = colorful.Color{R: dst.R + s.R*a, G: dst.G + s.G*a, B: dst.B + s.B*a}.Clamped()
		return out
	case pebble.BlendMultiply:
		out = colorful.Color{R: dst.R * s.R, G: dst.G * s.G, B: dst.B * s.B}
	case pebble.BlendScreen:
		out = colorful.Color{R: 1 - (1-dst.R)*(1-s.R), G: 1 - (1-dst.G)*(1-s.G), B: 1 - (1-dst.B)*(1-s.B)}
	case pebble.BlendErase:
		return dst.BlendRgb(background, a)
	case pebble.BlendBelow, pebble.BlendMask:
		return dst
	case pebble.BlendCopy:
		return s
	default:
		out = s
	}
	return dst.BlendRgb(out, a)
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

var _ pebble.Surface = (*Surface)(nil)
