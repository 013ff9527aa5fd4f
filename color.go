package pebble

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color string: a named color ("gray", "red"), a hex
// color ("#f0c", "#ff1034"), "rgb(r, g, b)", "rgba(r, g, b, a)", or "none"
// and "transparent", which both yield ColorNone.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "none" || s == "transparent":
		return ColorNone, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return ColorNone, fmt.Errorf("pebble: invalid hex color %q: %w", s, err)
		}
		return Color{c.R, c.G, c.B, 1}, nil
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return Color{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}, nil
	}
	return ColorNone, fmt.Errorf("pebble: unknown color %q", s)
}

// MustParseColor is like ParseColor but panics on error. Intended for
// constant color strings.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseRGBFunc(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return ColorNone, fmt.Errorf("pebble: invalid color %q", s)
	}
	fn := s[:open]
	parts := strings.Split(s[open+1:len(s)-1], ",")
	want := 3
	if fn == "rgba" {
		want = 4
	} else if fn != "rgb" {
		return ColorNone, fmt.Errorf("pebble: invalid color %q", s)
	}
	if len(parts) != want {
		return ColorNone, fmt.Errorf("pebble: %s expects %d components, got %d", fn, want, len(parts))
	}
	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return ColorNone, fmt.Errorf("pebble: invalid color component %q: %w", p, err)
		}
		if i < 3 {
			f /= 255
		}
		v[i] = clamp01(f)
	}
	return Color{v[0], v[1], v[2], v[3]}, nil
}
