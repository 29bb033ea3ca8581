package assets

import (
	"embed"
	"io/fs"
)

// BackgroundPNG is the 144x168 watchface backdrop behind the time and date.
//
//go:embed background.png
var BackgroundPNG []byte

//go:embed web/index.html
var webFS embed.FS

// WebUI holds the live preview page served at '/' next to the API.
var WebUI = mustSub(webFS, "web")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
