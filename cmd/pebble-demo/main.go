// Command pebble-demo draws the classic spinning-circle scene with the
// backend chosen by -backend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/pebble"
	"github.com/phanxgames/pebble/assets"
	"github.com/phanxgames/pebble/ebitensurface"
	"github.com/phanxgames/pebble/raylibsurface"
	"github.com/phanxgames/pebble/termsurface"
)

const (
	screenW = 400
	screenH = 400
)

func main() {
	backend := flag.String("backend", "ebiten", "drawing backend: ebiten, raylib or term")
	assetDir := flag.String("assets", "assets", "directory assets are loaded from")
	font := flag.String("font", "fonts/Lobster-Regular.ttf", "font file to load, relative to -assets")
	sound := flag.String("sound", "", "sound file to play once assets are loaded, relative to -assets")
	debug := flag.Bool("debug", false, "log per-frame render stats")
	fps := flag.Bool("fps", false, "show the frame rate (ebiten and raylib)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scene, tick := buildScene(*font)
	scene.SetDebugMode(*debug)

	sources := []string{*font}
	if *sound != "" {
		sources = append(sources, *sound)
	}
	loader := assets.NewLoader(assets.Config{
		Fetcher:        assets.FSFetcher{FS: os.DirFS(*assetDir)},
		StrictFailures: true,
	})
	batch, err := loader.Load(ctx, sources, true)
	if err != nil {
		log.Fatal(err)
	}

	var audio *player
	update := func() error {
		tick()
		if audio == nil && *sound != "" {
			select {
			case <-batch.Done():
				audio = newPlayer(loader.Registry(), *sound)
			default:
			}
		}
		return ctx.Err()
	}
	defer func() {
		if audio != nil {
			audio.Close()
		}
	}()

	if err := run(ctx, *backend, scene, update, *fps); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

// buildScene places a red circle with a square child in the middle of the
// stage, plus a triangle of lines and a greeting. tick spins the circle by
// one frame.
func buildScene(fontSource string) (scene *pebble.Scene, tick func()) {
	scene = pebble.NewScene(screenW, screenH)
	stage := scene.Stage()

	circle := pebble.NewCircle("circle", 50, pebble.ColorRed, pebble.ColorNone, 0)
	circle.X = screenW/2 - circle.HalfWidth()
	circle.Y = screenH/2 - circle.HalfHeight()
	stage.AddChild(circle)

	rect := pebble.NewRectangle("rect", 30, 30, pebble.ColorRed, pebble.ColorNone, 0)
	circle.AddChild(rect)

	green := pebble.MustParseColor("green")
	stage.Add(
		pebble.NewLine("line1", pebble.ColorBlack, 4, 32, 32, 64, 64),
		pebble.NewLine("line2", pebble.ColorRed, 4, 64, 64, 32, 64),
		pebble.NewLine("line3", green, 4, 32, 64, 32, 32),
	)

	family := fontFamily(fontSource)
	stage.AddChild(pebble.NewText("text", "Hello", fmt.Sprintf("32px %s, sans-serif", family), pebble.ColorBlack))

	return scene, func() { circle.Rotation += 0.05 }
}

func run(ctx context.Context, backend string, scene *pebble.Scene, update func() error, fps bool) error {
	switch backend {
	case "ebiten":
		return ebitensurface.Run(scene, ebitensurface.RunConfig{
			Title:      "pebble",
			Background: pebble.ColorWhite,
			ShowFPS:    fps,
			Update:     update,
		})
	case "raylib":
		return raylibsurface.Run(scene, raylibsurface.RunConfig{
			Options:   raylibsurface.Options{Background: pebble.ColorWhite},
			Title:     "pebble",
			ShowFPS:   fps,
			Update:    update,
			TargetFPS: 60,
		})
	case "term":
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()
		return termsurface.Run(ctx, screen, scene, termsurface.RunOptions{
			Options: termsurface.Options{Background: pebble.ColorWhite},
			Update:  update,
		})
	}
	return fmt.Errorf("unknown backend %q", backend)
}
