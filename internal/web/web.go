// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"icon": func(name string) string {
		return "icon icon-" + strings.ToLower(strings.TrimSpace(name))
	},
	"anchor": func(href string) string {
		return strings.TrimPrefix(href, "#")
	},
}

// Templates parses every embedded template. Fragments are addressed by
// their define name, full pages by file name.
func Templates() (*template.Template, error) {
	return template.New("portfolio").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// MustTemplates is Templates for program start-up.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Static is the static asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Render executes the named template into w.
func Render(w io.Writer, name string, data any) error {
	t, err := Templates()
	if err != nil {
		return err
	}
	return t.ExecuteTemplate(w, name, data)
}
