package pebble

import "time"

// Scene owns a stage node and the input registry for its nodes.
type Scene struct {
	stage *Node
	input *InputRegistry
	debug bool
}

// NewScene creates a scene whose stage has the given size.
func NewScene(width, height float64) *Scene {
	return &Scene{
		stage: NewStage(width, height),
		input: NewInputRegistry(),
	}
}

// Stage returns the scene's root node.
func (s *Scene) Stage() *Node {
	return s.stage
}

// Input returns the scene's input registry.
func (s *Scene) Input() *InputRegistry {
	return s.input
}

// Draw renders the stage onto surface.
func (s *Scene) Draw(surface Surface) {
	if !s.debug {
		Render(surface, s.stage)
		return
	}
	start := time.Now()
	stats := renderTree(surface, s.stage)
	s.debugLog(stats, time.Since(start))
}

// SetDraggable marks n as draggable (or not) in the scene's registry.
func (s *Scene) SetDraggable(n *Node, on bool) {
	s.input.SetDraggable(n, on)
}

// SetInteractive marks n as interactive (or not) in the scene's registry.
func (s *Scene) SetInteractive(n *Node, on bool) {
	s.input.SetInteractive(n, on)
}

// Draggables returns the scene's draggable nodes.
func (s *Scene) Draggables() []*Node {
	return s.input.Draggables()
}

// Interactives returns the scene's interactive nodes.
func (s *Scene) Interactives() []*Node {
	return s.input.Interactives()
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings are printed and per-frame stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
