package server

import (
	"archive/zip"
	"encoding/json"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/phanxgames/pebble/assets"
)

// BundleName is the file name /pebble2d downloads as.
const BundleName = "pebble.zip"

// ManifestEntry is one asset file listed by /manifest.
type ManifestEntry struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
	Size int64  `json:"size"`
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render", http.StatusInternalServerError)
	}
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	var entries []ManifestEntry
	if s.cfg.Assets != nil {
		var err error
		if entries, err = listAssets(s.cfg.Assets); err != nil {
			s.cfg.Logger.Printf("server: listing assets: %v", err)
		}
	}
	render(w, r, indexPage(s.cfg.Source != nil, entries))
}

// download streams a zip of the engine sources.
func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Source == nil {
		http.NotFound(w, r)
		return
	}
	files, err := sourceFiles(s.cfg.Source)
	if err != nil || len(files) == 0 {
		http.Error(w, "engine sources unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+BundleName+`"`)
	zw := zip.NewWriter(w)
	for _, name := range files {
		data, err := fs.ReadFile(s.cfg.Source, name)
		if err != nil {
			s.cfg.Logger.Printf("server: reading %s: %v", name, err)
			continue
		}
		f, err := zw.Create(path.Join("pebble", name))
		if err != nil {
			s.cfg.Logger.Printf("server: zip %s: %v", name, err)
			return
		}
		if _, err := f.Write(data); err != nil {
			return
		}
	}
	if err := zw.Close(); err != nil {
		s.cfg.Logger.Printf("server: closing zip: %v", err)
	}
}

func (s *Server) manifest(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Assets == nil {
		http.NotFound(w, r)
		return
	}
	entries, err := listAssets(s.cfg.Assets)
	if err != nil {
		http.Error(w, "failed to list assets", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []ManifestEntry{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		s.cfg.Logger.Printf("server: encoding manifest: %v", err)
	}
}

// sourceFiles returns the top-level non-test .go files of fsys, sorted.
func sourceFiles(fsys fs.FS) ([]string, error) {
	des, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, de := range des {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// listAssets walks fsys and classifies every regular file. Files the
// loader does not recognize are listed with kind "unknown".
func listAssets(fsys fs.FS) ([]ManifestEntry, error) {
	var out []ManifestEntry
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		out = append(out, ManifestEntry{
			Path: p,
			Kind: assets.Classify(p).String(),
			Size: info.Size(),
		})
		return nil
	})
	return out, err
}
