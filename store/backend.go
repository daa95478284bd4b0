package store

import (
	"github.com/ayoisaiah/focusboard/internal/config"
	"github.com/ayoisaiah/focusboard/internal/pathutil"
)

var backendExt = map[string]string{
	config.BackendBolt:   ".db",
	config.BackendSQLite: ".sqlite",
	config.BackendFile:   ".json",
}

// NewBackend opens the backend selected in cfg. Without an explicit
// storage path the file lives in the XDG data directory.
func NewBackend(cfg *config.Config) (Backend, error) {
	ext, ok := backendExt[cfg.Storage.Backend]
	if !ok {
		return nil, errUnknownBackend.Fmt(cfg.Storage.Backend)
	}

	path := cfg.Storage.Path
	if path == "" {
		path = pathutil.DataFilePath(ext)
	}

	var (
		backend Backend
		err     error
	)

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		backend, err = NewSQLiteBackend(path)
	case config.BackendFile:
		backend, err = NewFileBackend(path)
	default:
		backend, err = NewBoltBackend(path)
	}

	if err != nil {
		return nil, err
	}

	return backend, nil
}
