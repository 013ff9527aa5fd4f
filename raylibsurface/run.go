package raylibsurface

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/phanxgames/pebble"
)

// RunConfig configures Run.
type RunConfig struct {
	Options
	Title string
	// Width and Height set the window size. Zero uses the stage size.
	Width, Height int
	// TargetFPS caps the frame rate. Zero uses 60.
	TargetFPS int
	// ShowFPS draws the frame rate in the top-left corner.
	ShowFPS bool
	// Update, if set, is called once per frame before drawing. Returning an
	// error closes the window and stops Run with that error.
	Update func() error
}

// Run opens a window and draws scene every frame until the window is
// closed.
func Run(scene *pebble.Scene, cfg RunConfig) error {
	stage := scene.Stage()
	if cfg.Width <= 0 {
		cfg.Width = int(stage.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(stage.Height)
	}
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = 60
	}

	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	surface := New(cfg.Options)
	defer surface.Unload()

	for !rl.WindowShouldClose() {
		if cfg.Update != nil {
			if err := cfg.Update(); err != nil {
				return err
			}
		}
		rl.BeginDrawing()
		scene.Draw(surface)
		if cfg.ShowFPS {
			rl.DrawFPS(4, 4)
		}
		rl.EndDrawing()
	}
	return nil
}
