package assets

import "strings"

// Kind is the resource class chosen from a source's extension.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindImage
	KindFont
	KindJSON
	KindAudio
)

var kindNames = [...]string{"unknown", "image", "font", "json", "audio"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Extension sets. Matching is case-sensitive.
var (
	ImageExtensions = []string{"png", "jpg", "gif"}
	FontExtensions  = []string{"ttf", "otf", "ttc", "woff"}
	JSONExtensions  = []string{"json"}
	AudioExtensions = []string{"mp3", "ogg", "wav", "webm"}
)

// Extension returns the text after the last "." in source, or source itself
// when it has no dot.
func Extension(source string) string {
	if i := strings.LastIndexByte(source, '.'); i >= 0 {
		return source[i+1:]
	}
	return source
}

// Classify returns the Kind for source based only on its extension.
func Classify(source string) Kind {
	ext := Extension(source)
	switch {
	case contains(ImageExtensions, ext):
		return KindImage
	case contains(FontExtensions, ext):
		return KindFont
	case contains(JSONExtensions, ext):
		return KindJSON
	case contains(AudioExtensions, ext):
		return KindAudio
	}
	return KindUnknown
}

func contains(set []string, ext string) bool {
	for _, s := range set {
		if s == ext {
			return true
		}
	}
	return false
}

// fontFamily derives a font family from a source path: the file name up to
// its first dot. "fonts/Lobster-Regular.ttf" gives "Lobster-Regular".
func fontFamily(source string) string {
	name := source[strings.LastIndexByte(source, '/')+1:]
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return name
}

// baseDir returns source up to and including its last "/", or "" when it has
// none. Atlas image paths are resolved against it.
func baseDir(source string) string {
	return source[:strings.LastIndexByte(source, '/')+1]
}
