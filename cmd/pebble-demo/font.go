package main

import (
	"path"
	"strings"
)

// fontFamily is the family the loader registers a font file under: its
// base name up to the first dot.
func fontFamily(source string) string {
	name := path.Base(source)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return name
}
