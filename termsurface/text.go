package termsurface

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/pebble"
)

// MeasureText returns one cell width per rune. Font size is ignored.
func (s *Surface) MeasureText(str string, _ pebble.Font) float64 {
	return float64(len([]rune(str))) * s.cellW
}

// FillText writes str into the cells starting at the device position of
// (x, y). Rotation and scale are ignored beyond moving the start cell.
func (s *Surface) FillText(str string, x, y float64, _ pebble.Font, baseline pebble.TextBaseline, c pebble.Color) {
	if str == "" || c.IsNone() {
		return
	}
	st := s.State()
	dx, dy := st.Transform.Apply(x, y)
	switch baseline {
	case pebble.BaselineMiddle:
		dy -= s.cellH / 2
	case pebble.BaselineAlphabetic, pebble.BaselineBottom:
		dy -= s.cellH
	}
	if st.Shadow.Enabled {
		s.writeText(str, dx+st.Shadow.OffsetX, dy+st.Shadow.OffsetY, st.Shadow.Color.WithAlpha(st.Alpha))
	}
	s.writeText(str, dx, dy, c.WithAlpha(st.Alpha))
}

// StrokeText writes str like FillText. Cells cannot be outlined.
func (s *Surface) StrokeText(str string, x, y float64, f pebble.Font, baseline pebble.TextBaseline, c pebble.Color, _ float64) {
	s.FillText(str, x, y, f, baseline, c)
}

func (s *Surface) writeText(str string, x, y float64, c pebble.Color) {
	row := int(math.Round(y / s.cellH))
	if row < 0 || row >= s.rows {
		return
	}
	col := int(math.Round(x / s.cellW))
	fg := colorful.Color{R: c.R, G: c.G, B: c.B}
	for _, r := range str {
		if col >= s.cols {
			return
		}
		if col >= 0 {
			cx := (float64(col) + 0.5) * s.cellW
			cy := (float64(row) + 0.5) * s.cellH
			if s.Visible(cx, cy) {
				p := &s.cells[row*s.cols+col]
				p.ch, p.text = r, true
				p.fg = p.bg.BlendRgb(fg, math.Min(1, c.A))
			}
		}
		col++
	}
}
