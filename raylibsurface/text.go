package raylibsurface

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/phanxgames/pebble"
)

// fontLoadSize is the pixel size glyph atlases are rasterized at. Text of
// other sizes is scaled from it.
const fontLoadSize = 64

// font returns the raylib font for f. Families not in the font book use
// raylib's default font.
func (s *Surface) font(f pebble.Font) rl.Font {
	fd, ok := s.fonts.Resolve(f)
	if !ok {
		return rl.GetFontDefault()
	}
	if font, ok := s.loaded[fd]; ok {
		return font
	}
	font := rl.LoadFontFromMemory(".ttf", fd.Data, fontLoadSize, nil)
	if font.BaseSize == 0 {
		font = rl.GetFontDefault()
	}
	s.loaded[fd] = font
	return font
}

// Unload releases every font loaded from the font book.
func (s *Surface) Unload() {
	for fd, font := range s.loaded {
		rl.UnloadFont(font)
		delete(s.loaded, fd)
	}
}

func spacing(size float64) float32 {
	return float32(size / 10)
}

// MeasureText returns the width of str at the font's size.
func (s *Surface) MeasureText(str string, f pebble.Font) float64 {
	if str == "" {
		return 0
	}
	v := rl.MeasureTextEx(s.font(f), str, float32(f.Size), spacing(f.Size))
	return float64(v.X)
}

// FillText draws str at the device position of (x, y), scaled by the
// current transform. Rotation is applied around the text origin.
func (s *Surface) FillText(str string, x, y float64, f pebble.Font, baseline pebble.TextBaseline, c pebble.Color) {
	s.drawText(str, x, y, f, baseline, c, nil)
}

// StrokeText outlines str by drawing it at eight offsets.
func (s *Surface) StrokeText(str string, x, y float64, f pebble.Font, baseline pebble.TextBaseline, c pebble.Color, width float64) {
	t := math.Max(width/2, 1)
	s.drawText(str, x, y, f, baseline, c, [][2]float64{
		{-t, 0}, {t, 0}, {0, -t}, {0, t},
		{-t, -t}, {t, -t}, {-t, t}, {t, t},
	})
}

func (s *Surface) drawText(str string, x, y float64, f pebble.Font, baseline pebble.TextBaseline, c pebble.Color, offsets [][2]float64) {
	if str == "" || c.IsNone() {
		return
	}
	switch baseline {
	case pebble.BaselineMiddle:
		y -= f.Size / 2
	case pebble.BaselineAlphabetic:
		y -= f.Size * 0.8
	case pebble.BaselineBottom:
		y -= f.Size
	}
	if offsets == nil {
		offsets = [][2]float64{{0, 0}}
	}

	st := s.State()
	m := st.Transform
	size := float32(f.Size * m.ScaleFactor())
	rotation := float32(math.Atan2(m[1], m[0]) * 180 / math.Pi)
	font := s.font(f)
	draw := func(dx, dy float64, col rl.Color) {
		for _, o := range offsets {
			px, py := m.Apply(x+o[0], y+o[1])
			pos := rl.NewVector2(float32(px+dx), float32(py+dy))
			rl.DrawTextPro(font, str, pos, rl.NewVector2(0, 0), rotation, size, spacing(float64(size)), col)
		}
	}
	s.paint(func() {
		if st.Shadow.Enabled {
			draw(st.Shadow.OffsetX, st.Shadow.OffsetY, toRL(st.Shadow.Color.WithAlpha(st.Alpha)))
		}
		draw(0, 0, toRL(c.WithAlpha(st.Alpha)))
	})
}
