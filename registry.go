package pebble

// InputRegistry tracks which nodes are draggable and which are interactive.
// A per-frame input system walks these lists instead of the whole tree.
// Membership is idempotent and keeps registration order.
//
// A Scene owns one; nodes never reach it through globals.
type InputRegistry struct {
	draggable   nodeSet
	interactive nodeSet
}

// nodeSet is an insertion-ordered set of nodes.
type nodeSet struct {
	index map[*Node]int
	nodes []*Node
}

func (s *nodeSet) add(n *Node) {
	if s.index == nil {
		s.index = make(map[*Node]int)
	}
	if _, ok := s.index[n]; ok {
		return
	}
	s.index[n] = len(s.nodes)
	s.nodes = append(s.nodes, n)
}

func (s *nodeSet) remove(n *Node) {
	i, ok := s.index[n]
	if !ok {
		return
	}
	copy(s.nodes[i:], s.nodes[i+1:])
	s.nodes[len(s.nodes)-1] = nil
	s.nodes = s.nodes[:len(s.nodes)-1]
	delete(s.index, n)
	for j := i; j < len(s.nodes); j++ {
		s.index[s.nodes[j]] = j
	}
}

func (s *nodeSet) list() []*Node {
	return append([]*Node(nil), s.nodes...)
}

// NewInputRegistry creates an empty registry.
func NewInputRegistry() *InputRegistry {
	return &InputRegistry{}
}

// SetDraggable sets n's draggable flag and adds or removes it from the
// draggable list.
func (r *InputRegistry) SetDraggable(n *Node, on bool) {
	n.draggable = on
	if on {
		r.draggable.add(n)
	} else {
		r.draggable.remove(n)
	}
}

// SetInteractive sets n's interactive flag and adds or removes it from the
// interactive list.
func (r *InputRegistry) SetInteractive(n *Node, on bool) {
	n.interactive = on
	if on {
		r.interactive.add(n)
	} else {
		r.interactive.remove(n)
	}
}

// Draggables returns a copy of the draggable nodes in registration order.
func (r *InputRegistry) Draggables() []*Node { return r.draggable.list() }

// Interactives returns a copy of the interactive nodes in registration order.
func (r *InputRegistry) Interactives() []*Node { return r.interactive.list() }

// HitTest returns the most recently registered interactive node that is
// visible and whose global bounds contain (x, y), or nil.
func (r *InputRegistry) HitTest(x, y float64) *Node {
	nodes := r.interactive.nodes
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if !n.Visible {
			continue
		}
		gx, gy := n.GlobalX(), n.GlobalY()
		if x >= gx && x < gx+n.Width && y >= gy && y < gy+n.Height {
			return n
		}
	}
	return nil
}

// Draggable reports whether n was marked draggable.
func (n *Node) Draggable() bool { return n.draggable }

// Interactive reports whether n was marked interactive.
func (n *Node) Interactive() bool { return n.interactive }
