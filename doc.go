// Package pebble is a small retained-mode 2D scene graph with an
// immediate-mode renderer and an asynchronous asset loader.
//
// # Quick start
//
// Build a tree of nodes under a stage and render it onto any [Surface]
// once per frame:
//
//	scene := pebble.NewScene(640, 480)
//	box := pebble.NewRectangle("box", 80, 40, pebble.ColorRed, pebble.ColorNone, 0)
//	box.SetPosition(100, 50)
//	scene.Stage().AddChild(box)
//
//	// every frame
//	scene.Draw(surface)
//
// Backends live in sub-packages: ebitensurface (windowed, with a [Run]-style
// game loop), termsurface (tcell terminal cells) and raylibsurface.
//
// # Scene graph
//
// Every visual element is a [Node]. A node's global position is the sum of
// the local positions on its parent chain; rotation, scale and pivot only
// affect painting. Children are painted in ascending [Node.Layer] order,
// ties keeping insertion order.
//
// Create nodes with typed constructors: [NewContainer], [NewRectangle],
// [NewCircle], [NewLine], [NewText] and [NewGroup]. A group resizes itself
// to fit its children.
//
// # Rendering
//
// [Render] walks the tree depth-first, skipping invisible nodes and nodes
// whose box lies outside the surface grown by the node's own size. Each
// painted node gets its own Save/Restore pair, so clips set by masking nodes
// only apply to their descendants.
//
// # Assets
//
// The assets sub-package loads images, fonts, JSON documents, sprite atlases
// and sounds concurrently and reports completion through a Batch.
//
// [Run]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#RunGame
package pebble
