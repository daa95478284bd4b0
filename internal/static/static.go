// Package static embeds static files into the binary and copies them to the
// filesystem.
package static

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/focusboard/internal/osutil"
	"github.com/ayoisaiah/focusboard/internal/pathutil"
)

const (
	filesDir = "files"

	// IconFile is the notification icon installed in the data directory.
	IconFile = "icon.svg"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into the application data directory.
// Files that already exist are left untouched.
func Install() error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			// embed paths always use forward slashes
			stripped := strings.TrimPrefix(path, filesDir+"/")

			relPath := filepath.Join(pathutil.Dir(), stripped)

			destPath, err := xdg.DataFile(relPath)
			if err != nil {
				return err
			}

			if _, err := os.Stat(destPath); os.IsNotExist(err) {
				err = os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission)
				if err != nil {
					return err
				}

				return os.WriteFile(destPath, b, osutil.FilePermission)
			}

			return nil
		},
	)
}
