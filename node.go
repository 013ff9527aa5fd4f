package pebble

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic: scene building happens on the
// caller's frame goroutine).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the scene graph element. A single flat struct is used for all
// node kinds; kind-specific fields are ignored by the other kinds.
//
// A container exclusively owns its children slice. Parent is a non-owning
// back-reference used for global positioning and layer sorting only.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Geometry and transform (local)
	X, Y          float64
	Width, Height float64
	Rotation      float64
	ScaleX        float64
	ScaleY        float64
	PivotX        float64
	PivotY        float64

	// Velocity is informational; nothing applies it automatically.
	VX, VY float64

	// Previous position cache, maintained by the caller.
	PreviousX, PreviousY float64

	// Compositing
	Alpha     float64
	Visible   bool
	Shadow    Shadow
	BlendMode BlendMode

	// Ordering
	layer int

	// Sprite-sheet frames (data only)
	frames       []Frame
	currentFrame int

	// Paint (rectangle, circle, line, text)
	Fill      Color
	Stroke    Color
	LineWidth float64
	Mask      bool

	// Line fields (NodeTypeLine)
	AX, AY, BX, BY float64
	LineJoin       LineJoin

	// Text fields (NodeTypeText)
	Content    string
	Font       Font
	Baseline   TextBaseline
	StrokeText bool

	// OnPaint, when set, replaces the kind's own painting (nil by default).
	OnPaint func(n *Node, s Surface)

	// Mode flags
	circular    bool
	draggable   bool
	interactive bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.PivotX = 0.5
	n.PivotY = 0.5
	n.Alpha = 1
	n.Visible = true
	n.Shadow = DefaultShadow()
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewStage creates the root container of a scene with the given size.
func NewStage(width, height float64) *Node {
	n := NewContainer("stage")
	n.Width = width
	n.Height = height
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first; adding
// a child to its current parent moves it to the end.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("pebble: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("pebble: adding child would create a cycle")
	}
	if child.Parent != nil {
		// The parent link was checked above, so this cannot fail.
		_ = child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	if n.Type == NodeTypeGroup {
		n.calculateSize()
	}
}

// RemoveChild detaches child from this node.
// Returns a *NotAChildError, leaving the children unchanged, if child.Parent
// is not n.
func (n *Node) RemoveChild(child *Node) error {
	if child == nil || child.Parent != n {
		return &NotAChildError{Child: child, Parent: n}
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	if n.Type == NodeTypeGroup {
		n.calculateSize()
	}
	return nil
}

// Add appends every node in argument order.
func (n *Node) Add(nodes ...*Node) {
	for _, c := range nodes {
		n.AddChild(c)
	}
}

// Remove detaches every node in argument order. It stops at the first node
// that is not a child and returns that error; earlier removals stay applied.
func (n *Node) Remove(nodes ...*Node) error {
	for _, c := range nodes {
		if err := n.RemoveChild(c); err != nil {
			return err
		}
	}
	return nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	_ = n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// ChildIndex returns the index of child among n's children, or -1.
func (n *Node) ChildIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// SwapChildren exchanges the positions of a and b in the children slice.
// Parent links are not touched. Returns a *NotChildrenError if either node is
// not a child of n.
func (n *Node) SwapChildren(a, b *Node) error {
	i, j := n.ChildIndex(a), n.ChildIndex(b)
	if i < 0 || j < 0 {
		return &NotChildrenError{A: a, B: b, Parent: n}
	}
	n.children[i], n.children[j] = n.children[j], n.children[i]
	return nil
}

// Layer returns the node's depth layer.
func (n *Node) Layer() int {
	return n.layer
}

// SetLayer sets the node's depth layer and immediately re-sorts the parent's
// children by ascending layer. Nodes sharing a layer keep their relative order.
func (n *Node) SetLayer(layer int) {
	n.layer = layer
	if n.Parent != nil {
		n.Parent.sortChildrenByLayer()
	}
}

// sortChildrenByLayer is a stable insertion sort; children lists are short
// and usually already sorted.
func (n *Node) sortChildrenByLayer() {
	c := n.children
	for i := 1; i < len(c); i++ {
		key := c[i]
		j := i - 1
		for j >= 0 && c[j].layer > key.layer {
			c[j+1] = c[j]
			j--
		}
		c[j+1] = key
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
