// Package store persists the focusboard document as a single JSON blob
// under a fixed key in a pluggable key/value backend.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"slices"

	"github.com/ayoisaiah/focusboard/internal/models"
)

// Key is the fixed key the document is stored under.
const Key = "productivity-app-data"

// Slice names one top-level part of the document.
type Slice string

const (
	SliceTasks    Slice = "tasks"
	SliceSettings Slice = "pomodoroSettings"
	SliceSessions Slice = "pomodoroSessions"
	SliceSprints  Slice = "sprints"
	SliceTheme    Slice = "theme"
)

// AllSlices lists every part of the document.
var AllSlices = []Slice{
	SliceTasks,
	SliceSettings,
	SliceSessions,
	SliceSprints,
	SliceTheme,
}

// Backend is a byte-oriented key/value store.
type Backend interface {
	// Get returns ErrKeyNotFound when nothing is stored under key.
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}

// Storage reads and writes the document through a Backend.
type Storage struct {
	backend Backend
	log     *slog.Logger
}

// New returns a Storage on top of backend.
func New(backend Backend, log *slog.Logger) *Storage {
	return &Storage{
		backend: backend,
		log:     log,
	}
}

// Close releases the backend.
func (s *Storage) Close() error {
	return s.backend.Close()
}

// Load returns the persisted document merged over the defaults. A missing
// or unreadable document yields the defaults; only backend failures are
// returned as errors.
func (s *Storage) Load() (models.AppData, error) {
	b, err := s.backend.Get(Key)
	if errors.Is(err, ErrKeyNotFound) {
		return models.DefaultAppData(), nil
	}

	if errors.Is(err, errCorruptStore) {
		s.log.Warn("discarding unreadable store", slog.Any("error", err))

		return models.DefaultAppData(), nil
	}

	if err != nil {
		return models.AppData{}, errLoad.Wrap(err)
	}

	data, err := Decode(b)
	if err != nil {
		s.log.Warn(
			"discarding malformed document",
			slog.String("key", Key),
			slog.Any("error", err),
		)

		return models.DefaultAppData(), nil
	}

	return data, nil
}

// Save writes the named slices of data over the currently persisted
// document. Slices that are not named keep their persisted value.
func (s *Storage) Save(data models.AppData, parts ...Slice) error {
	if len(parts) == 0 {
		return nil
	}

	current, err := s.Load()
	if err != nil {
		return err
	}

	for _, slice := range parts {
		switch slice {
		case SliceTasks:
			current.Tasks = data.Tasks
		case SliceSettings:
			current.PomodoroSettings = data.PomodoroSettings
		case SliceSessions:
			current.PomodoroSessions = data.PomodoroSessions
		case SliceSprints:
			current.Sprints = data.Sprints
		case SliceTheme:
			current.Theme = data.Theme
		}
	}

	b, err := json.Marshal(normalize(current))
	if err != nil {
		return errSave.Wrap(err)
	}

	if err := s.backend.Put(Key, b); err != nil {
		return errSave.Wrap(err)
	}

	s.log.Debug(
		"document saved",
		slog.Any("slices", parts),
		slog.Int("bytes", len(b)),
	)

	return nil
}

// Decode parses a persisted document. Fields absent from b, including
// individual settings fields, take their default values.
func Decode(b []byte) (models.AppData, error) {
	data := models.DefaultAppData()

	if err := json.Unmarshal(b, &data); err != nil {
		return models.AppData{}, err
	}

	return normalize(data), nil
}

// normalize replaces null lists with empty ones and unknown themes with the
// default theme.
func normalize(data models.AppData) models.AppData {
	if data.Tasks == nil {
		data.Tasks = []models.Task{}
	}

	if data.PomodoroSessions == nil {
		data.PomodoroSessions = []models.PomodoroSession{}
	}

	if data.Sprints == nil {
		data.Sprints = []models.Sprint{}
	}

	// The lists may be shared with the caller, so copy before fixing them.
	if slices.ContainsFunc(data.Tasks, func(t models.Task) bool { return t.Tags == nil }) {
		data.Tasks = slices.Clone(data.Tasks)

		for i := range data.Tasks {
			if data.Tasks[i].Tags == nil {
				data.Tasks[i].Tags = []string{}
			}
		}
	}

	if slices.ContainsFunc(data.Sprints, func(s models.Sprint) bool { return s.TaskIDs == nil }) {
		data.Sprints = slices.Clone(data.Sprints)

		for i := range data.Sprints {
			if data.Sprints[i].TaskIDs == nil {
				data.Sprints[i].TaskIDs = []string{}
			}
		}
	}

	if data.Theme != models.ThemeDark {
		data.Theme = models.ThemeLight
	}

	return data
}
