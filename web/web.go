// Package web holds the HTML pages served by the clinic desk.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page. Each page is addressed by its file name.
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}
