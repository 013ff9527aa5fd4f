package assets

import (
	"image"
	"sort"
	"sync"

	"github.com/phanxgames/pebble"
)

// Registry maps source identifiers (and atlas frame names) to loaded
// resources. Safe for concurrent use.
//
// Values are image.Image for images and atlas images, pebble.Frame for atlas
// frames, string (the registered family) for fonts, *Document for JSON and
// *Sound for audio.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Set stores v under key, replacing any earlier entry.
func (r *Registry) Set(key string, v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = v
}

// Get returns the entry stored under key.
func (r *Registry) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	return v, ok
}

// Delete removes key.
func (r *Registry) Delete(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Keys returns every key, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Image returns the image stored under key.
func (r *Registry) Image(key string) (image.Image, bool) {
	return lookup[image.Image](r, key)
}

// Frame returns the atlas frame stored under key.
func (r *Registry) Frame(key string) (pebble.Frame, bool) {
	return lookup[pebble.Frame](r, key)
}

// Document returns the JSON document stored under key.
func (r *Registry) Document(key string) (*Document, bool) {
	return lookup[*Document](r, key)
}

// Sound returns the sound stored under key.
func (r *Registry) Sound(key string) (*Sound, bool) {
	return lookup[*Sound](r, key)
}

// FontFamily returns the family name a font source was registered under.
func (r *Registry) FontFamily(key string) (string, bool) {
	return lookup[string](r, key)
}

func lookup[T any](r *Registry, key string) (T, bool) {
	v, ok := r.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
