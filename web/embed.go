// Package web embeds the storefront shell: a small SPA talking to the
// JSON API, plus the RUM loader/polyfill the nginx layer used to inject.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Handler serves the embedded storefront at the root path.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// embed contents are fixed at build time
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
