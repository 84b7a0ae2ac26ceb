package web

import (
	"embed"
	"io/fs"
	"net/http"
)

// TemplatesFS embeds HTML templates for server-side rendering.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// Templates serves TemplatesFS rooted at templates/, so views are named "ventas"
// rather than "templates/ventas".
func Templates() http.FileSystem {
	sub, err := fs.Sub(TemplatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
