package assets

import (
	"image"
	"slices"
	"testing"

	"github.com/phanxgames/pebble"
)

func TestRegistryTypedAccess(t *testing.T) {
	r := NewRegistry()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	r.Set("a.png", img)
	r.Set("hero", pebble.Frame{Name: "hero", Width: 4})
	r.Set("font.ttf", "font")

	if got, ok := r.Image("a.png"); !ok || got != img {
		t.Errorf("Image = %v, %v", got, ok)
	}
	if f, ok := r.Frame("hero"); !ok || f.Width != 4 {
		t.Errorf("Frame = %+v, %v", f, ok)
	}
	if fam, ok := r.FontFamily("font.ttf"); !ok || fam != "font" {
		t.Errorf("FontFamily = %q, %v", fam, ok)
	}
	if _, ok := r.Sound("a.png"); ok {
		t.Error("Sound on an image entry should not be ok")
	}
	if _, ok := r.Document("missing"); ok {
		t.Error("missing key should not be ok")
	}
	if got := r.Keys(); !slices.Equal(got, []string{"a.png", "font.ttf", "hero"}) {
		t.Errorf("Keys = %v", got)
	}

	r.Delete("hero")
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}
