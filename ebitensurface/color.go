package ebitensurface

import (
	"image/color"

	"github.com/phanxgames/pebble"
)

func colorOf(c pebble.Color) color.Color {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
