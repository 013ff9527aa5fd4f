package pebble

// SetFrames assigns the node's sprite-sheet frames and resets the current
// frame to 0. Frames are data only; nothing advances them automatically.
func (n *Node) SetFrames(frames []Frame) {
	n.frames = frames
	n.currentFrame = 0
}

// Frames returns the node's frames. The returned slice MUST NOT be mutated.
func (n *Node) Frames() []Frame {
	return n.frames
}

// CurrentFrame returns the index of the current frame.
func (n *Node) CurrentFrame() int {
	return n.currentFrame
}

// GotoFrame sets the current frame index, clamped to the frame list.
func (n *Node) GotoFrame(i int) {
	if i >= len(n.frames) {
		i = len(n.frames) - 1
	}
	if i < 0 {
		i = 0
	}
	n.currentFrame = i
}
