package pebble

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Font is a parsed CSS font shorthand such as "bold 32px Lobster-Regular".
type Font struct {
	Style  string  // tokens before the size, e.g. "bold" or "italic bold"; may be empty
	Size   float64 // pixel size
	Family string  // family list as written, e.g. "Lobster-Regular, sans-serif"
}

// ParseFont parses "[style...] <size>px <family>".
func ParseFont(shorthand string) (Font, error) {
	fields := strings.Fields(shorthand)
	for i, f := range fields {
		if !strings.HasSuffix(f, "px") {
			continue
		}
		size, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64)
		if err != nil || size <= 0 {
			return Font{}, fmt.Errorf("pebble: invalid font size %q in %q", f, shorthand)
		}
		family := strings.Join(fields[i+1:], " ")
		if family == "" {
			return Font{}, fmt.Errorf("pebble: missing font family in %q", shorthand)
		}
		return Font{
			Style:  strings.Join(fields[:i], " "),
			Size:   size,
			Family: family,
		}, nil
	}
	return Font{}, fmt.Errorf("pebble: no pixel size in font %q", shorthand)
}

// String formats the font back into CSS shorthand.
func (f Font) String() string {
	s := strconv.FormatFloat(f.Size, 'f', -1, 64) + "px " + f.Family
	if f.Style != "" {
		s = f.Style + " " + s
	}
	return s
}

// Families splits the family list, trimming whitespace and quotes.
func (f Font) Families() []string {
	var out []string
	for _, fam := range strings.Split(f.Family, ",") {
		fam = strings.Trim(strings.TrimSpace(fam), `"'`)
		if fam != "" {
			out = append(out, fam)
		}
	}
	return out
}

// FontData is raw font file data registered under a family name. Index
// selects a face within a collection (ttc); it is 0 for single-face files.
type FontData struct {
	Family string
	Data   []byte
	Index  int
}

// FontBook maps family names to font data. Surfaces resolve Font.Family
// against it; the asset loader registers fonts into it. Safe for concurrent
// use.
type FontBook struct {
	mu    sync.RWMutex
	fonts map[string]*FontData
}

// DefaultFonts is the font book used when no other is configured.
var DefaultFonts = NewFontBook()

// NewFontBook creates an empty font book.
func NewFontBook() *FontBook {
	return &FontBook{fonts: make(map[string]*FontData)}
}

// Register stores font data under family, replacing any earlier entry.
func (b *FontBook) Register(family string, data []byte, index int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fonts[family] = &FontData{Family: family, Data: data, Index: index}
}

// Lookup returns the data registered under family.
func (b *FontBook) Lookup(family string) (*FontData, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	fd, ok := b.fonts[family]
	return fd, ok
}

// Resolve returns the first family of f that is registered.
func (b *FontBook) Resolve(f Font) (*FontData, bool) {
	for _, fam := range f.Families() {
		if fd, ok := b.Lookup(fam); ok {
			return fd, true
		}
	}
	return nil, false
}

// Families returns the registered family names, sorted.
func (b *FontBook) Families() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.fonts))
	for name := range b.fonts {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
