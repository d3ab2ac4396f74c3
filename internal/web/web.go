// Package web carries the embedded browser-facing assets: the HTML templates
// for the landing page, the admin listing, and the error pages, plus the
// static files served under /static.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every embedded template. Panics on a malformed template,
// which can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// StaticFS returns the embedded static asset tree rooted at "static", ready
// to be mounted under the /static route.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
