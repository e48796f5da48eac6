// Package memstore keeps todos in a mutex-guarded map for the lifetime of
// the process. Callers always receive copies; nothing returned aliases the
// map.
package memstore

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/idilsaglam/memtodo/internal/model"
	"github.com/idilsaglam/memtodo/internal/store"
)

var _ store.TodoStore = (*Store)(nil)

// Store is a concurrency-safe todo registry keyed by id.
type Store struct {
	mu    sync.RWMutex
	todos map[string]model.Todo

	logger *log.Logger
	newID  func() string
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes operation logs to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDFunc replaces the UUID generator.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock replaces time.Now for CreatedAt/UpdatedAt stamps.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) {
		if fn != nil {
			s.now = fn
		}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		todos:  make(map[string]model.Todo),
		logger: log.New(io.Discard),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates title and stores a new pending todo.
func (s *Store) Create(title, description string) (model.Todo, error) {
	s.logger.Debug("creating todo", "title", title)

	if err := ValidateTitle(title); err != nil {
		s.logger.Error("create rejected", "err", err)
		return model.Todo{}, err
	}

	now := s.now().UTC()
	t := model.Todo{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.todos[t.ID] = t
	s.mu.Unlock()

	s.logger.Info("created todo", "id", t.ID)
	return t, nil
}

// Get returns the todo stored under id. A missing id reports false, not an error.
func (s *Store) Get(id string) (model.Todo, bool) {
	s.logger.Debug("fetching todo", "id", id)

	s.mu.RLock()
	t, ok := s.todos[id]
	s.mu.RUnlock()

	if !ok {
		s.logger.Info("todo not found", "id", id)
		return model.Todo{}, false
	}
	return t, true
}

// List returns a snapshot of every todo in no particular order.
func (s *Store) List() []model.Todo {
	s.mu.RLock()
	out := make([]model.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		out = append(out, t)
	}
	s.mu.RUnlock()

	s.logger.Info("listed todos", "count", len(out))
	return out
}

// Len reports how many todos are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.todos)
}

// Update overwrites title and description. The title is validated before the
// id is looked up, so a blank title fails even for unknown ids.
func (s *Store) Update(id, title, description string) (bool, error) {
	s.logger.Debug("updating todo", "id", id)

	if err := ValidateTitle(title); err != nil {
		s.logger.Error("update rejected", "id", id, "err", err)
		return false, err
	}

	s.mu.Lock()
	t, ok := s.todos[id]
	if ok {
		t.Title = title
		t.Description = description
		t.UpdatedAt = s.now().UTC()
		s.todos[id] = t
	}
	s.mu.Unlock()

	if !ok {
		s.logger.Info("todo not found", "id", id)
		return false, nil
	}
	s.logger.Info("updated todo", "id", id)
	return true, nil
}

// Complete marks the todo done. Completing twice is not an error.
func (s *Store) Complete(id string) bool {
	s.logger.Debug("completing todo", "id", id)

	s.mu.Lock()
	t, ok := s.todos[id]
	if ok && !t.Completed {
		t.Completed = true
		t.UpdatedAt = s.now().UTC()
		s.todos[id] = t
	}
	s.mu.Unlock()

	if !ok {
		s.logger.Info("todo not found", "id", id)
		return false
	}
	s.logger.Info("completed todo", "id", id)
	return true
}

// Delete removes the todo and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.logger.Debug("deleting todo", "id", id)

	s.mu.Lock()
	_, ok := s.todos[id]
	if ok {
		delete(s.todos, id)
	}
	s.mu.Unlock()

	if !ok {
		s.logger.Info("todo not found", "id", id)
		return false
	}
	s.logger.Info("deleted todo", "id", id)
	return true
}
