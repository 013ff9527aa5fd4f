package assets

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// Sound is a decoded audio resource held in memory.
type Sound struct {
	Name   string
	Format beep.Format
	buffer *beep.Buffer
}

// Streamer returns a new playback stream over the whole sound. Each call is
// independent, so one Sound can play several times at once.
func (s *Sound) Streamer() beep.StreamSeeker {
	return s.buffer.Streamer(0, s.buffer.Len())
}

// Len returns the number of samples.
func (s *Sound) Len() int {
	return s.buffer.Len()
}

// Duration returns the playing time at the sound's sample rate.
func (s *Sound) Duration() time.Duration {
	return s.Format.SampleRate.D(s.buffer.Len())
}

func decodeSound(source string, data []byte) (*Sound, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
		err    error
	)
	switch ext := Extension(source); ext {
	case "wav":
		stream, format, err = wav.Decode(bytes.NewReader(data))
	case "mp3":
		stream, format, err = mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	case "ogg":
		stream, format, err = vorbis.Decode(io.NopCloser(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("no decoder for %q audio", ext)
	}
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	buf := beep.NewBuffer(format)
	buf.Append(stream)
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return &Sound{Name: source, Format: format, buffer: buf}, nil
}
