package termsurface

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/pebble"
)

// newScreen returns an initialized 20x10 simulation screen. With the
// default 8x16 cells the surface is 160x160 pixels.
func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(20, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func isColor(c pebble.Color, want pebble.Color) bool {
	const eps = 1e-6
	return math.Abs(c.R-want.R) < eps && math.Abs(c.G-want.G) < eps && math.Abs(c.B-want.B) < eps
}

func TestSize(t *testing.T) {
	s := New(newScreen(t), Options{})
	if w, h := s.Size(); w != 160 || h != 160 {
		t.Errorf("Size = (%v, %v), want (160, 160)", w, h)
	}
	s = New(newScreen(t), Options{CellWidth: 1, CellHeight: 2})
	if w, h := s.Size(); w != 20 || h != 20 {
		t.Errorf("Size = (%v, %v), want (20, 20)", w, h)
	}
}

func TestRenderPaintsVisibleNodes(t *testing.T) {
	screen := newScreen(t)
	scene := pebble.NewScene(160, 160)
	box := pebble.NewRectangle("box", 32, 32, pebble.ColorRed, pebble.ColorNone, 0)
	box.SetPosition(16, 16)
	offscreen := pebble.NewRectangle("far", 32, 32, pebble.ColorWhite, pebble.ColorNone, 0)
	offscreen.SetPosition(1000, 1000)
	scene.Stage().Add(box, offscreen)

	s := New(screen, Options{})
	scene.Draw(s)

	// box covers pixels 16..48 horizontally: cells 2..5; vertically rows 1..2.
	for _, p := range [][2]int{{2, 1}, {5, 2}} {
		if bg, _ := s.Cell(p[0], p[1]); !isColor(bg, pebble.ColorRed) {
			t.Errorf("cell %v = %v, want red", p, bg)
		}
	}
	for _, p := range [][2]int{{1, 1}, {6, 1}, {2, 0}, {2, 3}, {19, 9}} {
		if bg, _ := s.Cell(p[0], p[1]); !isColor(bg, pebble.ColorBlack) {
			t.Errorf("cell %v = %v, want background", p, bg)
		}
	}
}

func TestShowWritesScreen(t *testing.T) {
	screen := newScreen(t)
	s := New(screen, Options{})
	s.BeginPath()
	s.Rect(0, 0, 8, 16)
	s.Fill(pebble.ColorRed)
	s.FillText("hi", 16, 0, pebble.Font{Size: 12, Family: "x"}, pebble.BaselineTop, pebble.ColorWhite)
	s.Show()

	_, _, style, _ := screen.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	if r, g, b := bg.RGB(); r != 255 || g != 0 || b != 0 {
		t.Errorf("cell (0,0) bg = %d,%d,%d, want red", r, g, b)
	}
	if ch, _, _, _ := screen.GetContent(2, 0); ch != 'h' {
		t.Errorf("cell (2,0) = %q, want 'h'", ch)
	}
	if ch, _, _, _ := screen.GetContent(3, 0); ch != 'i' {
		t.Errorf("cell (3,0) = %q, want 'i'", ch)
	}
}

func TestAlphaBlendsWithBackground(t *testing.T) {
	s := New(newScreen(t), Options{Background: pebble.ColorWhite})
	s.SetAlpha(0.5)
	s.BeginPath()
	s.Rect(0, 0, 8, 16)
	s.Fill(pebble.ColorBlack)
	bg, _ := s.Cell(0, 0)
	if math.Abs(bg.R-0.5) > 1e-6 {
		t.Errorf("blended cell = %v, want mid gray", bg)
	}
}

func TestClipLimitsPaint(t *testing.T) {
	s := New(newScreen(t), Options{})
	s.Save()
	s.BeginPath()
	s.Rect(0, 0, 16, 16) // cells 0..1 of row 0
	s.Clip()
	s.BeginPath()
	s.Rect(0, 0, 160, 160)
	s.Fill(pebble.ColorRed)
	s.Restore()

	if bg, _ := s.Cell(1, 0); !isColor(bg, pebble.ColorRed) {
		t.Errorf("inside clip = %v, want red", bg)
	}
	if bg, _ := s.Cell(2, 0); !isColor(bg, pebble.ColorBlack) {
		t.Errorf("outside clip = %v, want background", bg)
	}

	s.BeginPath()
	s.Rect(0, 0, 160, 160)
	s.Fill(pebble.ColorWhite)
	if bg, _ := s.Cell(5, 5); !isColor(bg, pebble.ColorWhite) {
		t.Error("clip survived Restore")
	}
}

func TestStrokeThinLineCoversCells(t *testing.T) {
	s := New(newScreen(t), Options{})
	s.BeginPath()
	s.MoveTo(4, 8)
	s.LineTo(156, 8)
	s.Stroke(pebble.ColorRed, 1, pebble.LineJoinRound)
	for col := 0; col < 20; col++ {
		if bg, _ := s.Cell(col, 0); !isColor(bg, pebble.ColorRed) {
			t.Errorf("cell (%d,0) = %v, want red", col, bg)
		}
	}
	if bg, _ := s.Cell(0, 1); !isColor(bg, pebble.ColorBlack) {
		t.Error("stroke leaked into row 1")
	}
}

func TestShadowPaintsOffsetCells(t *testing.T) {
	s := New(newScreen(t), Options{})
	sh := pebble.DefaultShadow()
	sh.Enabled = true
	sh.OffsetX, sh.OffsetY = 16, 0
	s.SetShadow(sh)
	s.BeginPath()
	s.Rect(0, 0, 8, 16)
	s.Fill(pebble.ColorRed)

	if bg, _ := s.Cell(0, 0); !isColor(bg, pebble.ColorRed) {
		t.Errorf("shape cell = %v", bg)
	}
	if bg, _ := s.Cell(2, 0); isColor(bg, pebble.ColorBlack) {
		t.Error("shadow cell not painted")
	}
}

func TestTextMeasureAndBaseline(t *testing.T) {
	s := New(newScreen(t), Options{})
	if w := s.MeasureText("héllo", pebble.Font{}); w != 40 {
		t.Errorf("MeasureText = %v, want 40", w)
	}
	s.FillText("x", 0, 32, pebble.Font{}, pebble.BaselineBottom, pebble.ColorWhite)
	if _, ch := s.Cell(0, 1); ch != 'x' {
		t.Errorf("bottom baseline placed text elsewhere")
	}
	s.FillText("y", 0, -100, pebble.Font{}, pebble.BaselineTop, pebble.ColorWhite)
	s.FillText("z", 300, 0, pebble.Font{}, pebble.BaselineTop, pebble.ColorWhite)
}

func TestEraseClearsText(t *testing.T) {
	s := New(newScreen(t), Options{})
	s.FillText("a", 0, 0, pebble.Font{}, pebble.BaselineTop, pebble.ColorWhite)
	s.SetBlendMode(pebble.BlendErase)
	s.BeginPath()
	s.Rect(0, 0, 8, 16)
	s.Fill(pebble.ColorRed)
	if bg, ch := s.Cell(0, 0); ch != 0 || !isColor(bg, pebble.ColorBlack) {
		t.Errorf("after erase = %v %q", bg, ch)
	}
}

func TestComposite(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{}
	half := pebble.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	tests := []struct {
		name string
		dst  colorful.Color
		mode pebble.BlendMode
		want float64
	}{
		{"normal", white, pebble.BlendNormal, 0.5},
		{"multiply", white, pebble.BlendMultiply, 0.5},
		{"screen", black, pebble.BlendScreen, 0.5},
		{"add", white, pebble.BlendAdd, 1},
		{"below", white, pebble.BlendBelow, 1},
		{"copy", white, pebble.BlendCopy, 0.5},
		{"erase", white, pebble.BlendErase, 0},
	}
	for _, tt := range tests {
		got := composite(tt.dst, half, tt.mode, black)
		if math.Abs(got.R-tt.want) > 1e-9 {
			t.Errorf("%s: R = %v, want %v", tt.name, got.R, tt.want)
		}
	}
}

func TestRunStopsOnKeyAndContext(t *testing.T) {
	screen := newScreen(t)
	scene := pebble.NewScene(160, 160)
	scene.Stage().AddChild(pebble.NewRectangle("r", 8, 16, pebble.ColorRed, pebble.ColorNone, 0))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	frames := 0
	err := Run(ctx, screen, scene, RunOptions{
		FrameInterval: time.Millisecond,
		Update: func() error {
			frames++
			if frames == 3 {
				screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
			}
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Run = %v", err)
	}
	if frames < 3 {
		t.Errorf("frames = %d, want >= 3", frames)
	}
	if ctx.Err() != nil {
		t.Error("Run returned only after the context expired")
	}

	boom := errors.New("boom")
	err = Run(context.Background(), screen, scene, RunOptions{
		FrameInterval: time.Millisecond,
		Update:        func() error { return boom },
	})
	if !errors.Is(err, boom) {
		t.Errorf("Run = %v, want boom", err)
	}
}

func TestRunLeavesLaterEventsQueued(t *testing.T) {
	screen := newScreen(t)
	scene := pebble.NewScene(160, 160)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := Run(ctx, screen, scene, RunOptions{FrameInterval: time.Millisecond}); err != nil {
		t.Fatalf("Run = %v", err)
	}

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	got := make(chan rune, 1)
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				got <- ev.Rune()
				return
			}
		}
	}()
	select {
	case r := <-got:
		if r != 'x' {
			t.Errorf("key = %q, want 'x'", r)
		}
	case <-time.After(time.Second):
		t.Fatal("key injected after Run returned was consumed by Run")
	}
}
