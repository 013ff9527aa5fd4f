package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// registerFont validates font data and registers it in the loader's font
// book under the family derived from the source's file name. For a
// collection (ttc), that family names the first face and every further face
// is also registered under its own family name.
func (l *Loader) registerFont(source string, data []byte) (string, error) {
	family := fontFamily(source)
	if Extension(source) == "ttc" {
		faces, err := text.NewGoTextFaceSourcesFromCollection(bytes.NewReader(data))
		if err != nil {
			return "", err
		}
		if len(faces) == 0 {
			return "", fmt.Errorf("empty font collection")
		}
		l.fonts.Register(family, data, 0)
		for i, face := range faces[1:] {
			name := face.Metadata().Family
			if name == "" || name == family {
				continue
			}
			l.fonts.Register(name, data, i+1)
		}
		return family, nil
	}

	if _, err := text.NewGoTextFaceSource(bytes.NewReader(data)); err != nil {
		return "", err
	}
	l.fonts.Register(family, data, 0)
	return family, nil
}
