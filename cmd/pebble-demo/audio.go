package main

import (
	"log"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/pebble/assets"
)

// player plays one loaded sound through the speaker.
type player struct{}

// newPlayer starts playing source from reg. It returns a player even when
// the sound is missing or the speaker fails, so the caller does not retry.
func newPlayer(reg *assets.Registry, source string) *player {
	snd, ok := reg.Sound(source)
	if !ok {
		log.Printf("sound %q was not loaded", source)
		return &player{}
	}
	rate := snd.Format.SampleRate
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return &player{}
	}
	speaker.Play(snd.Streamer())
	return &player{}
}

// Close stops playback.
func (p *player) Close() {
	speaker.Close()
}
