package pebble

import (
	"errors"
	"slices"
	"testing"
)

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewStage(t *testing.T) {
	n := NewStage(640, 480)
	assertNodeDefaults(t, n, "stage", NodeTypeContainer)
	if n.Width != 640 || n.Height != 480 {
		t.Errorf("size = (%v, %v), want (640, 480)", n.Width, n.Height)
	}
}

func TestNewRectangleDefaults(t *testing.T) {
	n := NewRectangle("r", 0, -3, ColorRed, ColorNone, 1)
	assertNodeDefaults(t, n, "r", NodeTypeRectangle)
	if n.Width != DefaultRectSize || n.Height != DefaultRectSize {
		t.Errorf("size = (%v, %v), want default %v", n.Width, n.Height, DefaultRectSize)
	}
	if n.Fill != ColorRed || !n.Stroke.IsNone() {
		t.Errorf("Fill/Stroke = %v/%v", n.Fill, n.Stroke)
	}
}

func TestNewCircleDefaults(t *testing.T) {
	n := NewCircle("c", 0, ColorRed, ColorNone, 1)
	assertNodeDefaults(t, n, "c", NodeTypeCircle)
	if !n.Circular() {
		t.Error("circle should be in circular mode")
	}
	if n.Width != DefaultCircleDiameter || n.Height != DefaultCircleDiameter {
		t.Errorf("size = (%v, %v), want default %v", n.Width, n.Height, DefaultCircleDiameter)
	}
}

func TestNewLineDefaults(t *testing.T) {
	n := NewLine("l", ColorBlack, 2, 1, 2, 3, 4)
	assertNodeDefaults(t, n, "l", NodeTypeLine)
	if n.AX != 1 || n.AY != 2 || n.BX != 3 || n.BY != 4 {
		t.Errorf("endpoints = (%v,%v)-(%v,%v)", n.AX, n.AY, n.BX, n.BY)
	}
	if n.LineJoin != LineJoinRound {
		t.Errorf("LineJoin = %v, want round", n.LineJoin)
	}
}

func TestNewTextDefaults(t *testing.T) {
	n := NewText("t", "hello", "bold 32px Lobster-Regular", ColorBlack)
	assertNodeDefaults(t, n, "t", NodeTypeText)
	want := Font{Style: "bold", Size: 32, Family: "Lobster-Regular"}
	if n.Font != want {
		t.Errorf("Font = %+v, want %+v", n.Font, want)
	}
	if n.Width != 0 || n.Height != 0 {
		t.Error("text size should be measured lazily")
	}
}

func TestNewTextBadFontFallsBack(t *testing.T) {
	n := NewText("t", "x", "enormous", ColorBlack)
	want, _ := ParseFont(DefaultFont)
	if n.Font != want {
		t.Errorf("Font = %+v, want %+v", n.Font, want)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %s, want %s", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.PivotX != 0.5 || n.PivotY != 0.5 {
		t.Errorf("Pivot = (%v, %v), want (0.5, 0.5)", n.PivotX, n.PivotY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.Layer() != 0 {
		t.Errorf("Layer = %d, want 0", n.Layer())
	}
	if n.Shadow.Enabled {
		t.Error("Shadow should start disabled")
	}
	if n.BlendMode != BlendDefault {
		t.Errorf("BlendMode = %v, want default", n.BlendMode)
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	if a.ID == b.ID {
		t.Errorf("IDs should differ: %d == %d", a.ID, b.ID)
	}
}

// --- AddChild ---

func TestAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != child {
		t.Error("child not appended")
	}
}

func TestAddChildReparents(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")
	p1.AddChild(child)
	p2.AddChild(child)

	if p1.NumChildren() != 0 {
		t.Errorf("p1 children = %d, want 0", p1.NumChildren())
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildSameParentMovesToEnd(t *testing.T) {
	p := NewContainer("p")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	p.Add(a, b, c)
	p.AddChild(a)

	assertChildren(t, p, b, c, a)
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewContainer("p").AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	b.AddChild(a)
}

func TestAddChildSelfPanics(t *testing.T) {
	a := NewContainer("a")
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	a.AddChild(a)
}

func TestAddPreservesArgumentOrder(t *testing.T) {
	p := NewContainer("p")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	p.Add(a, b, c)
	assertChildren(t, p, a, b, c)
}

// --- RemoveChild ---

func TestRemoveChild(t *testing.T) {
	p := NewContainer("p")
	a, b := NewContainer("a"), NewContainer("b")
	p.Add(a, b)

	if err := p.RemoveChild(a); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	if a.Parent != nil {
		t.Error("removed child should have nil Parent")
	}
	assertChildren(t, p, b)
}

func TestRemoveChildNotAChild(t *testing.T) {
	p := NewContainer("p")
	other := NewContainer("other")
	stranger := NewContainer("stranger")
	other.AddChild(stranger)

	err := p.RemoveChild(stranger)
	var nac *NotAChildError
	if !errors.As(err, &nac) {
		t.Fatalf("err = %v, want *NotAChildError", err)
	}
	if nac.Child != stranger || nac.Parent != p {
		t.Errorf("error fields = %v/%v", nac.Child, nac.Parent)
	}
	if stranger.Parent != other {
		t.Error("failed removal must not touch the child")
	}
}

func TestRemoveStopsAtFirstError(t *testing.T) {
	p := NewContainer("p")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	stranger := NewContainer("stranger")
	p.Add(a, b, c)

	err := p.Remove(a, stranger, b)
	var nac *NotAChildError
	if !errors.As(err, &nac) || nac.Child != stranger {
		t.Fatalf("err = %v, want NotAChildError for stranger", err)
	}
	assertChildren(t, p, b, c)
}

func TestRemoveFromParent(t *testing.T) {
	p := NewContainer("p")
	c := NewContainer("c")
	p.AddChild(c)
	c.RemoveFromParent()
	if c.Parent != nil || p.NumChildren() != 0 {
		t.Error("RemoveFromParent did not detach")
	}
	c.RemoveFromParent() // no-op
}

// --- SwapChildren ---

func TestSwapChildren(t *testing.T) {
	p := NewContainer("p")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	p.Add(a, b, c)

	if err := p.SwapChildren(a, c); err != nil {
		t.Fatalf("SwapChildren: %v", err)
	}
	assertChildren(t, p, c, b, a)
	if a.Parent != p || c.Parent != p {
		t.Error("swap must not change parents")
	}
}

func TestSwapChildrenNotChildren(t *testing.T) {
	p := NewContainer("p")
	a := NewContainer("a")
	stranger := NewContainer("stranger")
	p.AddChild(a)

	err := p.SwapChildren(a, stranger)
	var nce *NotChildrenError
	if !errors.As(err, &nce) {
		t.Fatalf("err = %v, want *NotChildrenError", err)
	}
	assertChildren(t, p, a)
}

// --- Layers ---

func TestSetLayerSortsStable(t *testing.T) {
	p := NewContainer("p")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	p.Add(a, b, c)

	a.SetLayer(1)
	b.SetLayer(1)
	assertChildren(t, p, c, a, b)

	c.SetLayer(2)
	assertChildren(t, p, a, b, c)

	b.SetLayer(-1)
	assertChildren(t, p, b, a, c)
}

func TestSetLayerWithoutParent(t *testing.T) {
	n := NewContainer("n")
	n.SetLayer(5)
	if n.Layer() != 5 {
		t.Errorf("Layer = %d, want 5", n.Layer())
	}
}

// --- Frames ---

func TestFrames(t *testing.T) {
	n := NewRectangle("r", 10, 10, ColorRed, ColorNone, 0)
	n.SetFrames([]Frame{{Name: "a"}, {Name: "b"}, {Name: "c"}})
	n.GotoFrame(2)
	if n.CurrentFrame() != 2 {
		t.Errorf("CurrentFrame = %d, want 2", n.CurrentFrame())
	}
	n.GotoFrame(10)
	if n.CurrentFrame() != 2 {
		t.Errorf("CurrentFrame = %d, want clamped 2", n.CurrentFrame())
	}
	n.GotoFrame(-4)
	if n.CurrentFrame() != 0 {
		t.Errorf("CurrentFrame = %d, want clamped 0", n.CurrentFrame())
	}
	n.GotoFrame(1)
	n.SetFrames(nil)
	if n.CurrentFrame() != 0 || len(n.Frames()) != 0 {
		t.Error("SetFrames should reset the frame index")
	}
}

// --- Errors ---

func TestErrorMessages(t *testing.T) {
	p := NewContainer("p")
	c := NewRectangle("", 1, 1, ColorRed, ColorNone, 0)
	msg := (&NotAChildError{Child: c, Parent: p}).Error()
	if msg == "" {
		t.Error("empty error message")
	}
	if (&NotChildrenError{A: nil, B: c, Parent: p}).Error() == "" {
		t.Error("empty error message")
	}
}

func assertChildren(t *testing.T, p *Node, want ...*Node) {
	t.Helper()
	if !slices.Equal(p.Children(), want) {
		names := func(ns []*Node) []string {
			var out []string
			for _, n := range ns {
				out = append(out, n.Name)
			}
			return out
		}
		t.Errorf("children = %v, want %v", names(p.Children()), names(want))
	}
}
