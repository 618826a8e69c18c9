package state

import (
	"sync"
	"time"

	"github.com/theirongolddev/padma/internal/model"

	"go.uber.org/zap"
)

// Saver persists a state after every transition.
type Saver interface {
	Save(model.AppState) error
}

// Store is the single owner of the canonical AppState. It is constructed
// explicitly and handed to whatever needs it.
type Store struct {
	mu    sync.Mutex
	state model.AppState

	saver  Saver
	logger *zap.Logger
	now    func() time.Time

	nextSubID int
	subs      map[int]func(model.AppState)
}

// Option configures a Store.
type Option func(*Store)

// WithSaver persists every new state through saver.
func WithSaver(saver Saver) Option {
	return func(s *Store) { s.saver = saver }
}

// WithLogger sets the logger used for dispatch and save failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock overrides the time source handed to the reducer.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns a store seeded with initial.
func NewStore(initial model.AppState, opts ...Option) *Store {
	s := &Store{
		state:  initial.Clone(),
		logger: zap.NewNop(),
		now:    time.Now,
		subs:   make(map[int]func(model.AppState)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies a, persists the result and notifies subscribers. A save
// failure is logged and otherwise ignored; the next dispatch tries again.
func (s *Store) Dispatch(a Action) model.AppState {
	s.mu.Lock()
	next := ReduceAt(s.state, a, s.now())
	s.state = next

	if s.saver != nil {
		if err := s.saver.Save(next); err != nil {
			s.logger.Error("saving state", zap.String("action", a.Type()), zap.Error(err))
		}
	}

	subs := make([]func(model.AppState), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	s.logger.Debug("dispatched",
		zap.String("action", a.Type()),
		zap.Int("streams", len(next.Streams)),
		zap.Int("transactions", len(next.Transactions)),
	)

	for _, fn := range subs {
		fn(next.Clone())
	}
	return next.Clone()
}

// Subscribe registers fn to receive every new state. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(model.AppState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
