package pebble

// renderStats counts what a traversal did. Only reported in debug mode.
type renderStats struct {
	painted int
	culled  int
}

// Render clears s and paints every visible node under stage, depth-first
// in children order. The stage itself is not painted.
//
// Siblings are painted in ascending layer order (the order kept by
// SetLayer), so later siblings cover earlier ones.
func Render(s Surface, stage *Node) {
	renderTree(s, stage)
}

func renderTree(s Surface, stage *Node) renderStats {
	var r renderer
	r.surface = s
	r.viewW, r.viewH = s.Size()
	s.Clear()
	if stage == nil {
		return r.stats
	}
	for _, child := range stage.children {
		r.draw(child)
	}
	return r.stats
}

type renderer struct {
	surface      Surface
	viewW, viewH float64
	stats        renderStats
}

// draw paints n and, if it has any, its children.
func (r *renderer) draw(n *Node) {
	if !n.Visible || r.culled(n) {
		r.stats.culled++
		return
	}
	r.stats.painted++

	s := r.surface
	s.Save()

	pivotX := n.Width * n.PivotX
	pivotY := n.Height * n.PivotY
	s.Translate(n.X+pivotX, n.Y+pivotY)
	s.Rotate(n.Rotation)
	s.SetAlpha(n.Alpha * parentAlpha(n))
	s.Scale(n.ScaleX, n.ScaleY)
	if n.Shadow.Enabled {
		s.SetShadow(n.Shadow)
	}
	if n.BlendMode != BlendDefault {
		s.SetBlendMode(n.BlendMode)
	}

	n.Paint(s)

	if len(n.children) > 0 {
		// Children are positioned from the node's top-left corner, not its
		// pivot; rotation, scale, alpha and blend stay in effect.
		s.Translate(-pivotX, -pivotY)
		for _, child := range n.children {
			r.draw(child)
		}
	}
	s.Restore()
}

// culled reports whether n's global box lies entirely outside the viewport
// grown by the node's own size on every side. The test uses the live global
// position and ignores rotation and scale.
func (r *renderer) culled(n *Node) bool {
	gx, gy := n.GlobalX(), n.GlobalY()
	w, h := n.Width, n.Height
	return !(gx < r.viewW+w &&
		gx+w >= -w &&
		gy < r.viewH+h &&
		gy+h >= -h)
}

// parentAlpha is the alpha of n's direct parent, or 1 for the root.
func parentAlpha(n *Node) float64 {
	if n.Parent == nil {
		return 1
	}
	return n.Parent.Alpha
}
