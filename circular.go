package pebble

// CircleView is the diameter/radius view of a node in circular mode. It
// reads and writes the node's Width and Height; it holds no state of its own.
type CircleView struct {
	n *Node
}

// Diameter returns the node's width.
func (c CircleView) Diameter() float64 { return c.n.Width }

// SetDiameter sets both width and height to d.
func (c CircleView) SetDiameter(d float64) {
	c.n.Width = d
	c.n.Height = d
}

// Radius returns half the node's width.
func (c CircleView) Radius() float64 { return c.n.HalfWidth() }

// SetRadius sets both width and height to 2r.
func (c CircleView) SetRadius(r float64) {
	c.n.Width = r * 2
	c.n.Height = r * 2
}

// Circular reports whether circular mode is on.
func (n *Node) Circular() bool {
	return n.circular
}

// SetCircular toggles circular mode. Turning it off leaves Width and Height
// as they are.
func (n *Node) SetCircular(on bool) {
	n.circular = on
}

// Circle returns the diameter/radius view. ok is false when circular mode is
// off.
func (n *Node) Circle() (view CircleView, ok bool) {
	if !n.circular {
		return CircleView{}, false
	}
	return CircleView{n}, true
}
