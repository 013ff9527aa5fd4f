// Package server serves the engine download, the asset files and a
// manifest of them over HTTP.
package server

import (
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultPort is used when PORT is unset.
const DefaultPort = "8000"

// Config configures a Server.
type Config struct {
	// Addr is the listen address. Empty uses ":$PORT", or ":8000".
	Addr string
	// Source holds the engine's Go sources. /pebble2d zips its top-level
	// non-test .go files. Nil disables the download.
	Source fs.FS
	// Assets is served under /assets/ and listed by /manifest. Nil disables
	// both.
	Assets fs.FS
	// Logger receives request-independent messages. Nil uses log.Default().
	Logger *log.Logger
}

// Server is the HTTP front end.
type Server struct {
	cfg Config
}

// New creates a server.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = AddrFromEnv()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Server{cfg: cfg}
}

// AddrFromEnv returns ":" + $PORT, falling back to DefaultPort.
func AddrFromEnv() string {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = DefaultPort
	}
	return ":" + port
}

// Routes returns the router with every endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/", s.index)
	r.Get("/pebble2d", s.download)
	r.Get("/manifest", s.manifest)
	if s.cfg.Assets != nil {
		r.Mount("/assets", http.StripPrefix("/assets", http.FileServer(http.FS(s.cfg.Assets))))
	}
	return r
}

// ListenAndServe serves until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	s.cfg.Logger.Printf("listening on http://localhost%s", s.cfg.Addr)
	return srv.ListenAndServe()
}
