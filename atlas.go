package pebble

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"sort"
)

// Frame describes one named sub-rectangle of an atlas image.
type Frame struct {
	Name             string
	X, Y             int // top-left corner of the sub-image within the atlas image
	Width, Height    int // size of the sub-image (may differ from SourceW/H if trimmed)
	SourceW, SourceH int // untrimmed size as authored
	OffsetX, OffsetY int // trim offset
	Rotated          bool
	Trimmed          bool

	// Source is the atlas image shared by every frame of the page. Nil until
	// the image has been loaded.
	Source image.Image
}

// Bounds returns the frame's rectangle within the atlas image.
func (f Frame) Bounds() image.Rectangle {
	return image.Rect(f.X, f.Y, f.X+f.Width, f.Y+f.Height)
}

// SubImage returns the frame's pixels from Source, or nil when Source is
// unset or cannot be sliced.
func (f Frame) SubImage() image.Image {
	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}
	if si, ok := f.Source.(subImager); ok {
		return si.SubImage(f.Bounds())
	}
	return nil
}

// AtlasPage is one atlas image and the frames cut from it.
type AtlasPage struct {
	Image  string // image path as written in the atlas, relative to the atlas file
	Frames []Frame
}

// Atlas is a parsed TexturePacker sheet.
type Atlas struct {
	Pages []AtlasPage
}

// ParseAtlas parses TexturePacker JSON. Supports both the hash format (a
// single "frames" object with "meta.image") and the array format ("textures"
// array with per-page frame lists).
func ParseAtlas(jsonData []byte) (*Atlas, error) {
	// Probe top-level keys to detect format.
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
		Meta     struct {
			Image string `json:"image"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("pebble: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{}
	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		frames, err := parseHashFrames(probe.Frames)
		if err != nil {
			return nil, err
		}
		atlas.Pages = []AtlasPage{{Image: probe.Meta.Image, Frames: frames}}
	default:
		return nil, fmt.Errorf("pebble: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format {"name": {frame...}, ...}. The
// JSON-array export, [{"filename": "name", frame...}, ...], is accepted too.
func parseHashFrames(raw json.RawMessage) ([]Frame, error) {
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		var list []struct {
			Filename string `json:"filename"`
			jsonFrame
		}
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("pebble: failed to parse atlas frames: %w", err)
		}
		frames := make(map[string]jsonFrame, len(list))
		for _, f := range list {
			frames[f.Filename] = f.jsonFrame
		}
		return convertFrames(frames), nil
	}
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return nil, fmt.Errorf("pebble: failed to parse atlas frames: %w", err)
	}
	return convertFrames(frames), nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("pebble: failed to parse atlas textures array: %w", err)
	}
	for _, tex := range textures {
		atlas.Pages = append(atlas.Pages, AtlasPage{Image: tex.Image, Frames: convertFrames(tex.Frames)})
	}
	return nil
}

// convertFrames returns the frames sorted by name so that registration order
// is deterministic.
func convertFrames(frames map[string]jsonFrame) []Frame {
	out := make([]Frame, 0, len(frames))
	for name, f := range frames {
		out = append(out, Frame{
			Name:    name,
			X:       f.Frame.X,
			Y:       f.Frame.Y,
			Width:   f.Frame.W,
			Height:  f.Frame.H,
			SourceW: f.SourceSize.W,
			SourceH: f.SourceSize.H,
			OffsetX: f.SpriteSourceSize.X,
			OffsetY: f.SpriteSourceSize.Y,
			Rotated: f.Rotated,
			Trimmed: f.Trimmed,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
