package pebble

import "math"

// Polygon is a polyline in device space. Fills treat it as closed.
type Polygon []Vec2

// Subpath is one polyline of the current path.
type Subpath struct {
	Points Polygon
	Closed bool
}

// DrawState is the part of the surface state saved and restored by
// Save/Restore.
type DrawState struct {
	Transform Affine
	Alpha     float64
	Blend     BlendMode
	Shadow    Shadow
	// Clips holds every clip region in effect; a point is visible when it
	// lies inside all of them.
	Clips [][]Polygon
}

// StateTracker implements the state stack and path building of Surface in
// device space. Backends embed it and implement the painting methods.
type StateTracker struct {
	state DrawState
	stack []DrawState
	path  []Subpath
	// open reports whether the last subpath accepts LineTo continuation.
	open bool
}

// NewStateTracker returns a tracker in the initial state.
func NewStateTracker() *StateTracker {
	t := &StateTracker{}
	t.Reset()
	return t
}

// Reset drops the saved states and the path and restores the initial state.
func (t *StateTracker) Reset() {
	t.state = DrawState{Transform: IdentityAffine, Alpha: 1, Blend: BlendNormal}
	t.stack = t.stack[:0]
	t.path = t.path[:0]
	t.open = false
}

// State returns the current state.
func (t *StateTracker) State() DrawState {
	return t.state
}

// Depth returns the number of saved states.
func (t *StateTracker) Depth() int {
	return len(t.stack)
}

// Save pushes a copy of the current state.
func (t *StateTracker) Save() {
	t.stack = append(t.stack, t.state)
}

// Restore pops the last saved state. Restore without a matching Save is a
// no-op.
func (t *StateTracker) Restore() {
	if len(t.stack) == 0 {
		return
	}
	t.state = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
}

// Translate moves the origin of the current transform.
func (t *StateTracker) Translate(x, y float64) {
	t.state.Transform = t.state.Transform.Translate(x, y)
}

// Rotate rotates the current transform.
func (t *StateTracker) Rotate(angle float64) {
	t.state.Transform = t.state.Transform.Rotate(angle)
}

// Scale scales the current transform.
func (t *StateTracker) Scale(sx, sy float64) {
	t.state.Transform = t.state.Transform.Scale(sx, sy)
}

// SetAlpha sets the global alpha, clamped to [0, 1].
func (t *StateTracker) SetAlpha(a float64) {
	t.state.Alpha = clamp01(a)
}

// SetShadow sets the shadow used by subsequent paint operations.
func (t *StateTracker) SetShadow(sh Shadow) {
	t.state.Shadow = sh
}

// SetBlendMode sets the composite operation. BlendDefault is ignored.
func (t *StateTracker) SetBlendMode(b BlendMode) {
	if b == BlendDefault {
		return
	}
	t.state.Blend = b
}

// --- Path building ---

// BeginPath discards the current path.
func (t *StateTracker) BeginPath() {
	t.path = t.path[:0]
	t.open = false
}

// Path returns the current path in device space. The returned slice is only
// valid until the next path operation.
func (t *StateTracker) Path() []Subpath {
	return t.path
}

// PathPolygons returns the point lists of the current path.
func (t *StateTracker) PathPolygons() []Polygon {
	out := make([]Polygon, len(t.path))
	for i, sp := range t.path {
		out[i] = sp.Points
	}
	return out
}

// Rect adds a closed rectangle subpath.
func (t *StateTracker) Rect(x, y, w, h float64) {
	m := t.state.Transform
	p := make(Polygon, 4)
	p[0].X, p[0].Y = m.Apply(x, y)
	p[1].X, p[1].Y = m.Apply(x+w, y)
	p[2].X, p[2].Y = m.Apply(x+w, y+h)
	p[3].X, p[3].Y = m.Apply(x, y+h)
	t.path = append(t.path, Subpath{Points: p, Closed: true})
	t.open = false
}

// MoveTo starts a new subpath at (x, y).
func (t *StateTracker) MoveTo(x, y float64) {
	dx, dy := t.state.Transform.Apply(x, y)
	t.path = append(t.path, Subpath{Points: Polygon{{dx, dy}}})
	t.open = true
}

// LineTo extends the current subpath to (x, y). Without a current subpath it
// behaves like MoveTo.
func (t *StateTracker) LineTo(x, y float64) {
	if !t.open || len(t.path) == 0 {
		t.MoveTo(x, y)
		return
	}
	dx, dy := t.state.Transform.Apply(x, y)
	last := len(t.path) - 1
	t.path[last].Points = append(t.path[last].Points, Vec2{dx, dy})
}

// Arc adds a clockwise arc, flattened into line segments, to the current
// subpath (starting one if needed).
func (t *StateTracker) Arc(cx, cy, r, start, end float64) {
	sweep := end - start
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}
	segs := arcSegments(r*t.state.Transform.ScaleFactor(), sweep)
	for i := 0; i <= segs; i++ {
		a := start + sweep*float64(i)/float64(segs)
		sin, cos := math.Sincos(a)
		x, y := cx+r*cos, cy+r*sin
		if i == 0 && !t.open {
			t.MoveTo(x, y)
			continue
		}
		t.LineTo(x, y)
	}
	if math.Abs(sweep) >= 2*math.Pi-1e-9 {
		t.path[len(t.path)-1].Closed = true
	}
}

// arcSegments picks a segment count that keeps the chord error below about
// a quarter pixel.
func arcSegments(deviceRadius, sweep float64) int {
	const minSegs, maxSegs = 8, 256
	if deviceRadius <= 0 {
		return minSegs
	}
	step := 2 * math.Acos(math.Max(-1, 1-0.25/deviceRadius))
	if step <= 0 || math.IsNaN(step) {
		return maxSegs
	}
	n := int(math.Ceil(math.Abs(sweep) / step))
	return max(minSegs, min(n, maxSegs))
}

// ClipPath intersects the clip region with the current path.
func (t *StateTracker) ClipPath() {
	region := make([]Polygon, len(t.path))
	for i, sp := range t.path {
		region[i] = append(Polygon(nil), sp.Points...)
	}
	// Full slice expression forces a copy so saved states keep their clips.
	t.state.Clips = append(t.state.Clips[:len(t.state.Clips):len(t.state.Clips)], region)
}

// Visible reports whether the device point (x, y) passes every clip region.
func (t *StateTracker) Visible(x, y float64) bool {
	for _, region := range t.state.Clips {
		if !PolygonsContain(region, x, y) {
			return false
		}
	}
	return true
}

// --- Device-space geometry ---

// PolygonsContain reports whether (x, y) is inside the union of polys under
// the non-zero winding rule.
func PolygonsContain(polys []Polygon, x, y float64) bool {
	winding := 0
	for _, p := range polys {
		n := len(p)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			a, b := p[i], p[(i+1)%n]
			if a.Y <= y {
				if b.Y > y && cross(a, b, x, y) > 0 {
					winding++
				}
			} else if b.Y <= y && cross(a, b, x, y) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

func cross(a, b Vec2, x, y float64) float64 {
	return (b.X-a.X)*(y-a.Y) - (x-a.X)*(b.Y-a.Y)
}

// SegmentDistance returns the distance from (x, y) to the segment a-b.
func SegmentDistance(a, b Vec2, x, y float64) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(x-a.X, y-a.Y)
	}
	u := ((x-a.X)*dx + (y-a.Y)*dy) / l2
	u = math.Max(0, math.Min(1, u))
	return math.Hypot(x-(a.X+u*dx), y-(a.Y+u*dy))
}

// PolygonsBounds returns the device-space bounding box of polys.
func PolygonsBounds(polys []Polygon) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range polys {
		for _, v := range p {
			minX = math.Min(minX, v.X)
			minY = math.Min(minY, v.Y)
			maxX = math.Max(maxX, v.X)
			maxY = math.Max(maxY, v.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return Rect{}
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// StrokeSegments calls fn for every segment of the subpaths, including the
// closing edge of closed subpaths.
func StrokeSegments(path []Subpath, fn func(a, b Vec2)) {
	for _, sp := range path {
		pts := sp.Points
		for i := 1; i < len(pts); i++ {
			fn(pts[i-1], pts[i])
		}
		if sp.Closed && len(pts) > 2 {
			fn(pts[len(pts)-1], pts[0])
		}
	}
}

// OffsetPolygons returns a copy of polys moved by (dx, dy). Used for drop
// shadows, whose offsets ignore the current transform.
func OffsetPolygons(polys []Polygon, dx, dy float64) []Polygon {
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		q := make(Polygon, len(p))
		for j, v := range p {
			q[j] = Vec2{v.X + dx, v.Y + dy}
		}
		out[i] = q
	}
	return out
}
