package pebble

import "math"

// Default shape parameters.
const (
	DefaultRectSize       = 32
	DefaultCircleDiameter = 32
	DefaultFont           = "12px sans-serif"
)

// NewRectangle creates a rectangle node. Non-positive width or height fall
// back to DefaultRectSize. Pass ColorNone to skip the fill or the stroke.
func NewRectangle(name string, width, height float64, fill, stroke Color, lineWidth float64) *Node {
	if width <= 0 {
		width = DefaultRectSize
	}
	if height <= 0 {
		height = DefaultRectSize
	}
	n := &Node{Name: name, Type: NodeTypeRectangle}
	nodeDefaults(n)
	n.Width = width
	n.Height = height
	n.Fill = fill
	n.Stroke = stroke
	n.LineWidth = lineWidth
	return n
}

// NewCircle creates a circle node in circular mode. A non-positive diameter
// falls back to DefaultCircleDiameter.
func NewCircle(name string, diameter float64, fill, stroke Color, lineWidth float64) *Node {
	if diameter <= 0 {
		diameter = DefaultCircleDiameter
	}
	n := &Node{Name: name, Type: NodeTypeCircle}
	nodeDefaults(n)
	n.SetCircular(true)
	n.Width = diameter
	n.Height = diameter
	n.Fill = fill
	n.Stroke = stroke
	n.LineWidth = lineWidth
	return n
}

// NewLine creates a line node from (ax, ay) to (bx, by). Lines join with
// LineJoinRound.
func NewLine(name string, stroke Color, lineWidth, ax, ay, bx, by float64) *Node {
	n := &Node{Name: name, Type: NodeTypeLine}
	nodeDefaults(n)
	n.Stroke = stroke
	n.LineWidth = lineWidth
	n.AX, n.AY, n.BX, n.BY = ax, ay, bx, by
	n.LineJoin = LineJoinRound
	return n
}

// NewText creates a text node. shorthand uses the CSS shorthand
// "<size>px <family>"; an unparseable shorthand falls back to DefaultFont.
// Width and height are measured from the content on first render.
func NewText(name, content, shorthand string, fill Color) *Node {
	font, err := ParseFont(shorthand)
	if err != nil {
		font, _ = ParseFont(DefaultFont)
	}
	n := &Node{Name: name, Type: NodeTypeText}
	nodeDefaults(n)
	n.Content = content
	n.Font = font
	n.Fill = fill
	n.Baseline = BaselineTop
	return n
}

// SetContent replaces the text and clears the measured size so it is
// measured again on the next render.
func (n *Node) SetContent(content string) {
	n.Content = content
	n.Width = 0
	n.Height = 0
}

// Paint draws the node itself (not its children) in local coordinates. The
// caller sets up the transform; Render does this for every visible node.
// Containers and groups paint nothing.
func (n *Node) Paint(s Surface) {
	if n.OnPaint != nil {
		n.OnPaint(n, s)
		return
	}
	switch n.Type {
	case NodeTypeRectangle:
		n.paintRectangle(s)
	case NodeTypeCircle:
		n.paintCircle(s)
	case NodeTypeLine:
		n.paintLine(s)
	case NodeTypeText:
		n.paintText(s)
	}
}

func (n *Node) paintRectangle(s Surface) {
	s.BeginPath()
	s.Rect(-n.Width*n.PivotX, -n.Height*n.PivotY, n.Width, n.Height)
	n.fillAndStroke(s)
}

func (n *Node) paintCircle(s Surface) {
	d := n.Width
	r := d / 2
	s.BeginPath()
	s.Arc(r-d*n.PivotX, r-d*n.PivotY, r, 0, 2*math.Pi)
	n.fillAndStroke(s)
}

// fillAndStroke strokes then fills the current path and, for masks, clips
// to it until the enclosing Restore.
func (n *Node) fillAndStroke(s Surface) {
	if !n.Stroke.IsNone() {
		s.Stroke(n.Stroke, n.LineWidth, LineJoinMiter)
	}
	if !n.Fill.IsNone() {
		s.Fill(n.Fill)
	}
	if n.Mask {
		s.Clip()
	}
}

func (n *Node) paintLine(s Surface) {
	s.BeginPath()
	s.MoveTo(n.AX, n.AY)
	s.LineTo(n.BX, n.BY)
	if !n.Stroke.IsNone() {
		s.Stroke(n.Stroke, n.LineWidth, n.LineJoin)
	}
}

func (n *Node) paintText(s Surface) {
	if n.Width == 0 {
		n.Width = s.MeasureText(n.Content, n.Font)
	}
	if n.Height == 0 {
		n.Height = s.MeasureText("M", n.Font)
	}
	s.Save()
	s.Translate(-n.Width*n.PivotX, -n.Height*n.PivotY)
	if !n.Fill.IsNone() {
		s.FillText(n.Content, 0, 0, n.Font, n.Baseline, n.Fill)
	}
	if n.StrokeText && !n.Stroke.IsNone() {
		s.StrokeText(n.Content, 0, 0, n.Font, n.Baseline, n.Stroke, n.LineWidth)
	}
	s.Restore()
}
