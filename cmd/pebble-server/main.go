// Command pebble-server serves the engine download and an asset directory.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/pebble/internal/server"
)

func main() {
	src := flag.String("src", ".", "directory holding the engine sources offered at /pebble2d")
	assetDir := flag.String("assets", "assets", "directory served under /assets")
	addr := flag.String("addr", "", "listen address (default \":$PORT\" or \":"+server.DefaultPort+"\")")
	flag.Parse()

	cfg := server.Config{Addr: *addr}
	if *src != "" {
		cfg.Source = os.DirFS(*src)
	}
	if info, err := os.Stat(*assetDir); err == nil && info.IsDir() {
		cfg.Assets = os.DirFS(*assetDir)
	} else {
		log.Printf("asset directory %q not found; /assets and /manifest are disabled", *assetDir)
	}

	if err := server.New(cfg).ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
