package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/ayoisaiah/focusboard/internal/osutil"
)

// FileBackend stores every key in one JSON object on disk. Writes replace
// the file atomically so a crash never leaves a half-written document.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend that keeps its data in the file at path.
func NewFileBackend(path string) (*FileBackend, error) {
	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, errOpenStore.Fmt("file", path).Wrap(err)
	}

	return &FileBackend{path: path}, nil
}

func (f *FileBackend) read() (map[string]json.RawMessage, error) {
	entries := make(map[string]json.RawMessage)

	b, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return entries, nil
	}

	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, errCorruptStore.Wrap(err)
	}

	return entries, nil
}

func (f *FileBackend) Get(key string) ([]byte, error) {
	entries, err := f.read()
	if err != nil {
		return nil, err
	}

	v, ok := entries[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return v, nil
}

// Put stores value under key. The value must be valid JSON.
func (f *FileBackend) Put(key string, value []byte) error {
	entries, err := f.read()
	if errors.Is(err, errCorruptStore) {
		entries = make(map[string]json.RawMessage)
	} else if err != nil {
		return err
	}

	entries[key] = json.RawMessage(value)

	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(f.path, bytes.NewReader(b)); err != nil {
		return err
	}

	// atomic.WriteFile doesn't set permissions for new files
	return os.Chmod(f.path, osutil.FilePermission)
}

func (f *FileBackend) Close() error {
	return nil
}
