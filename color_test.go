package pebble

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"gray", ColorGray},
		{"Red", ColorRed},
		{"white", ColorWhite},
		{"#000", ColorBlack},
		{"#ff0000", ColorRed},
		{"rgb(255, 0, 0)", ColorRed},
		{"rgba(0,0,0,0.5)", Color{0, 0, 0, 0.5}},
		{"none", ColorNone},
		{" transparent ", ColorNone},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if !colorNear(got, tt.want) {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "blurple", "#12", "rgb(1,2)", "rgba(1,2,3)", "rgb(a,b,c)", "hsl(1,2,3)", "rgb(1,2,3"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

func TestMustParseColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseColor("not-a-color")
}

func colorNear(a, b Color) bool {
	const eps = 1e-6
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}
