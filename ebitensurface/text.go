package ebitensurface

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/pebble"
)

// faceCache holds parsed face sources, keyed by registered font data.
// Families that are not in the font book fall back to the Go fonts.
type faceCache struct {
	sources map[*pebble.FontData]*text.GoTextFaceSource
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
}

func (c *faceCache) source(book *pebble.FontBook, f pebble.Font) (*text.GoTextFaceSource, error) {
	if fd, ok := book.Resolve(f); ok {
		if src, ok := c.sources[fd]; ok {
			return src, nil
		}
		src, err := parseFace(fd)
		if err != nil {
			return nil, err
		}
		if c.sources == nil {
			c.sources = make(map[*pebble.FontData]*text.GoTextFaceSource)
		}
		c.sources[fd] = src
		return src, nil
	}
	return c.fallback(strings.Contains(f.Style, "bold"))
}

func (c *faceCache) fallback(bold bool) (*text.GoTextFaceSource, error) {
	var err error
	if bold {
		if c.bold == nil {
			c.bold, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		}
		return c.bold, err
	}
	if c.regular == nil {
		c.regular, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	}
	return c.regular, err
}

func parseFace(fd *pebble.FontData) (*text.GoTextFaceSource, error) {
	if fd.Index == 0 {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(fd.Data))
		if err == nil {
			return src, nil
		}
	}
	srcs, err := text.NewGoTextFaceSourcesFromCollection(bytes.NewReader(fd.Data))
	if err != nil {
		return nil, fmt.Errorf("pebble: failed to parse font %q: %w", fd.Family, err)
	}
	if fd.Index >= len(srcs) {
		return nil, fmt.Errorf("pebble: font %q has no face %d", fd.Family, fd.Index)
	}
	return srcs[fd.Index], nil
}

// face returns the text face for f, or nil when no font can be parsed.
func (s *Surface) face(f pebble.Font) *text.GoTextFace {
	src, err := s.faces.source(s.fonts, f)
	if err != nil || src == nil {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: f.Size}
}

// MeasureText returns the advance width of str.
func (s *Surface) MeasureText(str string, f pebble.Font) float64 {
	face := s.face(f)
	if face == nil {
		return 0
	}
	w, _ := text.Measure(str, face, lineHeight(face))
	return w
}

// FillText draws str with its top-left, middle or baseline at (x, y)
// according to baseline.
func (s *Surface) FillText(str string, x, y float64, f pebble.Font, baseline pebble.TextBaseline, c pebble.Color) {
	s.drawText(str, x, y, f, baseline, c, nil)
}

// StrokeText outlines str by drawing it at eight offsets around (x, y).
func (s *Surface) StrokeText(str string, x, y float64, f pebble.Font, baseline pebble.TextBaseline, c pebble.Color, width float64) {
	t := width / 2
	if t <= 0 {
		t = 1
	}
	offsets := [][2]float64{
		{-t, 0}, {t, 0}, {0, -t}, {0, t},
		{-t, -t}, {t, -t}, {-t, t}, {t, t},
	}
	s.drawText(str, x, y, f, baseline, c, offsets)
}

func (s *Surface) drawText(str string, x, y float64, f pebble.Font, baseline pebble.TextBaseline, c pebble.Color, offsets [][2]float64) {
	if str == "" || c.IsNone() {
		return
	}
	face := s.face(f)
	if face == nil {
		return
	}
	y -= baselineOffset(face, baseline)
	if offsets == nil {
		offsets = [][2]float64{{0, 0}}
	}

	st := s.State()
	s.paint(func(dst *ebiten.Image, blend ebiten.Blend) {
		draw := func(dx, dy float64, col pebble.Color) {
			for _, o := range offsets {
				op := &text.DrawOptions{}
				op.GeoM.Translate(x+o[0], y+o[1])
				op.GeoM.Concat(geoM(st.Transform))
				op.GeoM.Translate(dx, dy)
				op.ColorScale.ScaleWithColor(colorOf(col))
				op.ColorScale.ScaleAlpha(float32(st.Alpha))
				op.Blend = blend
				op.LineSpacing = lineHeight(face)
				text.Draw(dst, str, face, op)
			}
		}
		if st.Shadow.Enabled {
			draw(st.Shadow.OffsetX, st.Shadow.OffsetY, st.Shadow.Color)
		}
		draw(0, 0, c)
	})
}

// baselineOffset is the distance from the top of the line box to the
// requested baseline.
func baselineOffset(face *text.GoTextFace, b pebble.TextBaseline) float64 {
	m := face.Metrics()
	switch b {
	case pebble.BaselineMiddle:
		return (m.HAscent + m.HDescent) / 2
	case pebble.BaselineAlphabetic:
		return m.HAscent
	case pebble.BaselineBottom:
		return m.HAscent + m.HDescent
	default:
		return 0
	}
}

func lineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
