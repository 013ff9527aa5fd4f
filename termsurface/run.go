package termsurface

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/pebble"
)

// RunOptions configures Run.
type RunOptions struct {
	Options
	// FrameInterval is the time between frames. Zero uses 16ms.
	FrameInterval time.Duration
	// Update, if set, is called before every frame. Returning an error
	// stops Run with that error.
	Update func() error
}

// Run draws scene onto screen every frame until ctx is done or the user
// presses Escape, q or Ctrl-C. The screen must be initialized; Run does not
// finalize it.
func Run(ctx context.Context, screen tcell.Screen, scene *pebble.Scene, opts RunOptions) error {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 16 * time.Millisecond
	}
	surface := New(screen, opts.Options)

	ticker := time.NewTicker(opts.FrameInterval)
	defer ticker.Stop()

	// The event pump stops before Run returns, so events that arrive later
	// stay queued for the caller's own PollEvent.
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	pumped := make(chan struct{})
	go func() {
		defer close(pumped)
		screen.ChannelEvents(events, quit)
	}()
	defer func() {
		close(quit)
		<-pumped
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				// The screen was finalized.
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if opts.Update != nil {
				if err := opts.Update(); err != nil {
					return err
				}
			}
			scene.Draw(surface)
			surface.Show()
		}
	}
}
