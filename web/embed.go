// Package web holds the browser front end served by "quickdiff serve".
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Static returns the front end rooted at its index.html.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// The directory is compiled in; fs.Sub only fails on an invalid name.
		panic(err)
	}
	return sub
}
