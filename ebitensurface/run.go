package ebitensurface

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/pebble"
)

// RunConfig configures Run.
type RunConfig struct {
	Title string
	// Width and Height set the window and logical screen size. Zero uses
	// the stage size.
	Width, Height int
	// Background is the clear color. Zero clears to transparent.
	Background pebble.Color
	// ShowFPS prints the actual FPS and TPS in the top-left corner.
	ShowFPS bool
	// Fonts is the font book text is resolved against. Nil uses
	// pebble.DefaultFonts.
	Fonts *pebble.FontBook
	// Update, if set, is called once per tick before drawing. Returning an
	// error stops the game loop; ebiten.Termination ends it cleanly.
	Update func() error
}

// Run opens a window and draws scene every frame until the window closes.
func Run(scene *pebble.Scene, cfg RunConfig) error {
	stage := scene.Stage()
	if cfg.Width <= 0 {
		cfg.Width = int(stage.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(stage.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(newGame(scene, cfg))
}

type game struct {
	scene   *pebble.Scene
	surface *Surface
	cfg     RunConfig
}

func newGame(scene *pebble.Scene, cfg RunConfig) *game {
	return &game{scene: scene, cfg: cfg}
}

func (g *game) Update() error {
	if g.cfg.Update != nil {
		return g.cfg.Update()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		g.surface = New(screen, g.cfg.Fonts)
		g.surface.SetBackground(g.cfg.Background)
	} else {
		g.surface.SetTarget(screen)
	}
	g.scene.Draw(g.surface)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
