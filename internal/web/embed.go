package web

import (
	"embed"
	"io/fs"
	"path"
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templateEmbedFS roots the embedded templates at the templates directory so
// the view names match the ones used on disk in dev mode.
type templateEmbedFS struct {
	content embed.FS
}

// Open opens name below templates/.
func (e templateEmbedFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join("templates", name))
}
