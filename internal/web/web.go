package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// Assets returns the landing page files rooted at the site root.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic("web: embedded static dir missing: " + err.Error())
	}
	return sub
}

// Handler serves the landing page and its assets.
func Handler() http.Handler {
	return http.FileServer(http.FS(Assets()))
}
