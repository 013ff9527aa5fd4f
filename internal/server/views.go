package server

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// indexPage lists the downloads and asset files.
func indexPage(bundle bool, entries []ManifestEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>pebble</title></head><body><h1>pebble</h1>`); err != nil {
			return err
		}
		if bundle {
			if _, err := io.WriteString(w, `<p><a href="/pebble2d" download>Download the engine (`+templ.EscapeString(BundleName)+`)</a></p>`); err != nil {
				return err
			}
		}
		if err := assetList(entries).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func assetList(entries []ManifestEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(entries) == 0 {
			_, err := io.WriteString(w, `<p>No assets.</p>`)
			return err
		}
		if _, err := fmt.Fprintf(w, `<h2>Assets (%d)</h2><ul>`, len(entries)); err != nil {
			return err
		}
		for _, e := range entries {
			href := templ.EscapeString("/assets/" + e.Path)
			if _, err := fmt.Fprintf(w, `<li><a href="%s">%s</a> <small>%s, %d bytes</small></li>`,
				href, templ.EscapeString(e.Path), templ.EscapeString(e.Kind), e.Size); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul><p><a href="/manifest">manifest.json</a></p>`)
		return err
	})
}
