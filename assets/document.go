package assets

import "encoding/json"

// Document is a loaded JSON file.
type Document struct {
	Name  string // source identifier
	Value any    // decoded value: map[string]any for objects
	Raw   []byte
}

func parseDocument(source string, data []byte) (*Document, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &Document{Name: source, Value: v, Raw: data}, nil
}

// Object returns the document as a JSON object.
func (d *Document) Object() (map[string]any, bool) {
	m, ok := d.Value.(map[string]any)
	return m, ok
}

// Field returns a top-level field of an object document.
func (d *Document) Field(key string) (any, bool) {
	m, ok := d.Object()
	if !ok {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

// IsAtlas reports whether the document is a TexturePacker sprite sheet:
// an object with a non-null "frames" field.
func (d *Document) IsAtlas() bool {
	v, ok := d.Field("frames")
	return ok && v != nil
}

// pages reports whether the document may be a multi-page sheet, whose pages
// live under "textures" instead of "frames".
func (d *Document) pages() bool {
	v, ok := d.Field("textures")
	return ok && v != nil
}

// Unmarshal decodes the raw document into v.
func (d *Document) Unmarshal(v any) error {
	return json.Unmarshal(d.Raw, v)
}
