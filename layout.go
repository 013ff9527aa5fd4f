package pebble

// --- Derived geometry ---

// HalfWidth returns Width / 2.
func (n *Node) HalfWidth() float64 { return n.Width / 2 }

// HalfHeight returns Height / 2.
func (n *Node) HalfHeight() float64 { return n.Height / 2 }

// CenterX returns the local x coordinate of the node's center.
func (n *Node) CenterX() float64 { return n.X + n.HalfWidth() }

// CenterY returns the local y coordinate of the node's center.
func (n *Node) CenterY() float64 { return n.Y + n.HalfHeight() }

// Position returns the node's local position.
func (n *Node) Position() Vec2 {
	return Vec2{n.X, n.Y}
}

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// GlobalX returns the node's x position relative to the root, summing local
// positions up the parent chain. It is always derived from the live chain.
func (n *Node) GlobalX() float64 {
	x := 0.0
	for p := n; p != nil; p = p.Parent {
		x += p.X
	}
	return x
}

// GlobalY returns the node's y position relative to the root.
func (n *Node) GlobalY() float64 {
	y := 0.0
	for p := n; p != nil; p = p.Parent {
		y += p.Y
	}
	return y
}

// GlobalPosition returns (GlobalX, GlobalY).
func (n *Node) GlobalPosition() Vec2 {
	return Vec2{n.GlobalX(), n.GlobalY()}
}

// LocalBounds returns (0, 0, Width, Height).
func (n *Node) LocalBounds() Rect {
	return Rect{0, 0, n.Width, n.Height}
}

// GlobalBounds returns the global position together with the max corner.
// Note that Width and Height of the result hold the max-corner coordinates
// (gx+Width, gy+Height), not the size.
func (n *Node) GlobalBounds() Rect {
	gx, gy := n.GlobalX(), n.GlobalY()
	return Rect{gx, gy, gx + n.Width, gy + n.Height}
}

// Empty reports whether the node has no children.
func (n *Node) Empty() bool {
	return len(n.children) == 0
}

// --- Placement helpers ---
//
// The Put methods position other relative to n, adding (dx, dy). They only
// modify other.

// PutCenter centers other inside n.
func (n *Node) PutCenter(other *Node, dx, dy float64) {
	other.X = n.X + n.HalfWidth() - other.HalfWidth() + dx
	other.Y = n.Y + n.HalfHeight() - other.HalfHeight() + dy
}

// PutTop places other directly above n, horizontally centered.
func (n *Node) PutTop(other *Node, dx, dy float64) {
	other.X = n.X + n.HalfWidth() - other.HalfWidth() + dx
	other.Y = n.Y - other.Height + dy
}

// PutRight places other directly right of n, vertically centered.
func (n *Node) PutRight(other *Node, dx, dy float64) {
	other.X = n.X + n.Width + dx
	other.Y = n.Y + n.HalfHeight() - other.HalfHeight() + dy
}

// PutBottom places other directly below n, horizontally centered.
func (n *Node) PutBottom(other *Node, dx, dy float64) {
	other.X = n.X + n.HalfWidth() - other.HalfWidth() + dx
	other.Y = n.Y + n.Height + dy
}

// PutLeft places other directly left of n, vertically centered.
func (n *Node) PutLeft(other *Node, dx, dy float64) {
	other.X = n.X - other.Width + dx
	other.Y = n.Y + n.HalfHeight() - other.HalfHeight() + dy
}
