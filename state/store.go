package state

import (
	"context"
	"log/slog"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/focusboard/internal/models"
	"github.com/ayoisaiah/focusboard/store"
)

// dump renders dispatched actions for the debug log.
var dump = spew.Sdump

// Persister saves and restores the board.
type Persister interface {
	Load() (models.AppData, error)
	Save(data models.AppData, slices ...store.Slice) error
}

// Dispatcher accepts actions.
type Dispatcher interface {
	Dispatch(a Action)
}

// Store owns the current State. It is driven by a single goroutine.
type Store struct {
	persister   Persister
	now         func() time.Time
	newID       func() string
	log         *slog.Logger
	subscribers map[int]func(State)
	state       State
	nextSubID   int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides how new ids are created.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// NewStore returns a Store holding the default board.
func NewStore(p Persister, opts ...Option) *Store {
	s := &Store{
		persister:   p,
		now:         time.Now,
		log:         slog.Default(),
		subscribers: make(map[int]func(State)),
		state:       State{AppData: models.DefaultAppData()},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.newID == nil {
		s.newID = func() string {
			return NewID(s.now())
		}
	}

	return s
}

// Open returns a Store initialised with the persisted board.
func Open(p Persister, opts ...Option) (*Store, error) {
	s := NewStore(p, opts...)

	data, err := p.Load()
	if err != nil {
		return nil, err
	}

	s.Dispatch(SetInitialData{Data: data})

	return s, nil
}

// State returns the current board.
func (s *Store) State() State {
	return s.state
}

// Subscribe registers fn to be called with the new state after every
// dispatch. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	id := s.nextSubID
	s.nextSubID++

	s.subscribers[id] = fn

	return func() {
		delete(s.subscribers, id)
	}
}

// Dispatch applies a to the current state and runs the resulting effects.
// Persistence failures are logged; the in-memory state is kept.
func (s *Store) Dispatch(a Action) {
	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		s.log.Debug("dispatch", slog.String("action", dump(a)))
	}

	next, effects := Reduce(s.state, a, Env{
		Now:   s.now(),
		NewID: s.newID,
	})

	s.state = next

	for _, e := range effects {
		s.run(e)
	}

	for _, fn := range s.subscribers {
		fn(s.state)
	}
}

func (s *Store) run(e Effect) {
	switch e := e.(type) {
	case PersistEffect:
		err := s.persister.Save(s.state.AppData, e.Slices...)
		if err != nil {
			s.log.Error(
				"unable to persist state",
				slog.Any("slices", e.Slices),
				slog.Any("error", err),
			)
		}
	}
}
