package pebble

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestNewScene(t *testing.T) {
	s := NewScene(320, 240)
	if s.Stage() == nil {
		t.Fatal("Stage() returned nil")
	}
	if s.Stage().Width != 320 || s.Stage().Height != 240 {
		t.Errorf("stage size = (%v, %v)", s.Stage().Width, s.Stage().Height)
	}
	if s.Input() == nil {
		t.Fatal("Input() returned nil")
	}
}

func TestSceneDraw(t *testing.T) {
	s := NewScene(100, 100)
	s.Stage().AddChild(NewRectangle("r", 10, 10, ColorRed, ColorNone, 0))
	surf := newRecordingSurface(100, 100)
	s.Draw(surf)
	if len(surf.fills) != 1 {
		t.Errorf("fills = %d, want 1", len(surf.fills))
	}
}

// --- Input registry ---

func TestSetDraggableIdempotent(t *testing.T) {
	s := NewScene(100, 100)
	n := NewRectangle("r", 10, 10, ColorRed, ColorNone, 0)

	s.SetDraggable(n, true)
	s.SetDraggable(n, true)
	if !n.Draggable() {
		t.Error("Draggable() = false")
	}
	if got := s.Draggables(); len(got) != 1 || got[0] != n {
		t.Errorf("Draggables = %v, want [n]", got)
	}

	s.SetDraggable(n, false)
	s.SetDraggable(n, false)
	if n.Draggable() {
		t.Error("Draggable() = true after clearing")
	}
	if got := s.Draggables(); len(got) != 0 {
		t.Errorf("Draggables = %v, want empty", got)
	}
}

func TestSetInteractiveKeepsOrder(t *testing.T) {
	s := NewScene(100, 100)
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	for _, n := range []*Node{a, b, c} {
		s.SetInteractive(n, true)
	}
	s.SetInteractive(b, false)
	s.SetInteractive(a, true)

	if got := s.Interactives(); !slices.Equal(got, []*Node{a, c}) {
		t.Errorf("Interactives = %v, want [a c]", got)
	}
	if b.Interactive() {
		t.Error("b still interactive")
	}
	if got := s.Draggables(); len(got) != 0 {
		t.Error("interactive membership leaked into draggables")
	}
}

func TestRegistryListsAreCopies(t *testing.T) {
	r := NewInputRegistry()
	n := NewContainer("n")
	r.SetDraggable(n, true)
	list := r.Draggables()
	list[0] = nil
	if r.Draggables()[0] != n {
		t.Error("mutating the returned slice changed the registry")
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	s1 := NewScene(10, 10)
	s2 := NewScene(10, 10)
	n := NewContainer("n")
	s1.SetInteractive(n, true)
	if len(s2.Interactives()) != 0 {
		t.Error("registries should not share membership")
	}
}

func TestHitTest(t *testing.T) {
	s := NewScene(100, 100)
	back := NewRectangle("back", 50, 50, ColorRed, ColorNone, 0)
	front := NewRectangle("front", 10, 10, ColorRed, ColorNone, 0)
	front.SetPosition(20, 20)
	s.Stage().Add(back, front)
	s.SetInteractive(back, true)
	s.SetInteractive(front, true)

	if got := s.Input().HitTest(25, 25); got != front {
		t.Errorf("HitTest(25,25) = %v, want front", got)
	}
	if got := s.Input().HitTest(5, 5); got != back {
		t.Errorf("HitTest(5,5) = %v, want back", got)
	}
	if got := s.Input().HitTest(90, 90); got != nil {
		t.Errorf("HitTest(90,90) = %v, want nil", got)
	}
	front.Visible = false
	if got := s.Input().HitTest(25, 25); got != back {
		t.Errorf("HitTest on hidden front = %v, want back", got)
	}
}

// --- Debug mode ---

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := debugOut
	debugOut = &buf
	t.Cleanup(func() {
		debugOut = old
		globalDebug = false
	})
	return &buf
}

func TestSceneDebugStats(t *testing.T) {
	buf := captureDebug(t)
	s := NewScene(100, 100)
	s.Stage().AddChild(NewRectangle("r", 10, 10, ColorRed, ColorNone, 0))
	s.Draw(newRecordingSurface(100, 100))
	if buf.Len() != 0 {
		t.Errorf("output without debug mode: %q", buf.String())
	}

	s.SetDebugMode(true)
	s.Draw(newRecordingSurface(100, 100))
	out := buf.String()
	if !strings.Contains(out, "[pebble] render:") || !strings.Contains(out, "painted: 1") {
		t.Errorf("debug output = %q", out)
	}
}

func TestDebugTreeDepthWarning(t *testing.T) {
	buf := captureDebug(t)
	NewScene(10, 10).SetDebugMode(true)

	parent := NewContainer("n0")
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		child := NewContainer("deep")
		parent.AddChild(child)
		parent = child
	}
	if !strings.Contains(buf.String(), "tree depth") {
		t.Errorf("expected tree depth warning, got %q", buf.String())
	}
}

func TestDebugChildCountWarning(t *testing.T) {
	buf := captureDebug(t)
	NewScene(10, 10).SetDebugMode(true)

	p := NewContainer("wide")
	for i := 0; i <= debugMaxChildCount; i++ {
		p.AddChild(NewContainer(""))
	}
	if !strings.Contains(buf.String(), `node "wide" has`) {
		t.Errorf("expected child count warning, got %q", buf.String())
	}
}
