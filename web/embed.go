// Package web provides the embedded dashboard.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var webFS embed.FS

// GetFS returns the dashboard filesystem rooted at static/.
func GetFS() (fs.FS, error) {
	return fs.Sub(webFS, "static")
}
