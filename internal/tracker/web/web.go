// Package web serves the embedded single-page frontend. The page talks to
// the JSON API with the same bearer token flow external clients use.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// Handler returns the handler for the frontend. Unknown paths fall through
// to the file server's 404; API routes are matched before this one.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// embed guarantees the directory exists at build time
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
