package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusboard/internal/config"
	"github.com/ayoisaiah/focusboard/internal/logger"
	"github.com/ayoisaiah/focusboard/internal/models"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()

	dir := t.TempDir()

	bolt, err := NewBoltBackend(filepath.Join(dir, "focusboard.db"))
	require.NoError(t, err)

	sqlite, err := NewSQLiteMemory()
	require.NoError(t, err)

	file, err := NewFileBackend(filepath.Join(dir, "focusboard.json"))
	require.NoError(t, err)

	m := map[string]Backend{
		"bolt":   bolt,
		"sqlite": sqlite,
		"file":   file,
		"memory": NewMemoryBackend(),
	}

	t.Cleanup(func() {
		for _, b := range m {
			_ = b.Close()
		}
	})

	return m
}

func TestBackendGetPut(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := backend.Get(Key)
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, backend.Put(Key, []byte(`{"theme":"dark"}`)))
			require.NoError(t, backend.Put(Key, []byte(`{"theme":"light"}`)))

			got, err := backend.Get(Key)
			require.NoError(t, err)
			assert.JSONEq(t, `{"theme":"light"}`, string(got))
		})
	}
}

func TestBackendStorageRoundTrip(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(backend, logger.Discard())

			data := models.DefaultAppData()
			data.PomodoroSettings.SessionsBeforeLongBreak = 6

			require.NoError(t, s.Save(data, SliceSettings))

			got, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, 6, got.PomodoroSettings.SessionsBeforeLongBreak)
		})
	}
}

func TestBoltBackendRejectsSecondInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focusboard.db")

	first, err := NewBoltBackend(path)
	require.NoError(t, err)

	defer first.Close()

	_, err = NewBoltBackend(path)
	assert.ErrorIs(t, err, errAlreadyRunning)
}

func TestSQLiteBackendPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "focusboard.sqlite")

	first, err := NewSQLiteBackend(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(Key, []byte(`{}`)))
	require.NoError(t, first.Close())

	second, err := NewSQLiteBackend(path)
	require.NoError(t, err)

	defer second.Close()

	got, err := second.Get(Key)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))
}

func TestFileBackendCorruptFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focusboard.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	s := New(backend, logger.Discard())

	data, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAppData(), data)

	data.Theme = models.ThemeDark
	require.NoError(t, s.Save(data, SliceTheme))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, got.Theme)
}

func TestNewBackend(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		backend string
		path    string
		wantErr bool
	}{
		{backend: config.BackendBolt, path: filepath.Join(dir, "a.db")},
		{backend: config.BackendSQLite, path: filepath.Join(dir, "a.sqlite")},
		{backend: config.BackendFile, path: filepath.Join(dir, "a.json")},
		{backend: "redis", path: filepath.Join(dir, "a"), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.backend, func(t *testing.T) {
			cfg := &config.Config{
				Storage: config.StorageConfig{
					Backend: tc.backend,
					Path:    tc.path,
				},
			}

			b, err := NewBackend(cfg)
			if tc.wantErr {
				assert.ErrorIs(t, err, errUnknownBackend)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, b.Close())
		})
	}
}
