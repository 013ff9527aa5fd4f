package pebble

// NewGroup creates a group holding the given children. A group's Width and
// Height are recomputed from its children on every add and remove.
func NewGroup(name string, children ...*Node) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	n.Add(children...)
	return n
}

// calculateSize fits the group to the max corner of its children. An empty
// group keeps whatever size it had before.
func (n *Node) calculateSize() {
	if len(n.children) == 0 {
		return
	}
	var w, h float64
	for _, c := range n.children {
		if c.X+c.Width > w {
			w = c.X + c.Width
		}
		if c.Y+c.Height > h {
			h = c.Y + c.Height
		}
	}
	n.Width = w
	n.Height = h
}
