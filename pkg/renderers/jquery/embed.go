package jquery

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle. Paths are rooted at
// "templates/".
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
