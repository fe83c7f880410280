// Package store owns the canonical task collection. Every mutation goes
// through the pure functions in package task and is mirrored to the
// persistence slot.
package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"todo/internal/config"
	"todo/internal/logger"
	"todo/internal/slot"
	"todo/internal/task"
)

// Store implements service.Service over a persistence slot.
type Store struct {
	slot  slot.Slot
	key   string
	log   logrus.FieldLogger
	now   func() time.Time
	seq   task.Sequence
	tasks []task.Task
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the slot key. Defaults to config.StorageKey.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = logger.Component(log, "store") }
}

// WithClock sets the time source used for ids and creation times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store over sl. Call Load before use.
func New(sl slot.Slot, opts ...Option) *Store {
	s := &Store{
		slot:  sl,
		key:   config.StorageKey,
		log:   logger.Discard(),
		now:   time.Now,
		tasks: []task.Task{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the persisted snapshot.
func (s *Store) Load(ctx context.Context) {
	s.tasks = Load(ctx, s.slot, s.key, s.log)
}

// Tasks returns a copy of the full collection, newest first.
func (s *Store) Tasks(ctx context.Context) []task.Task {
	result := make([]task.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// View returns the projection of the collection for mode and query.
func (s *Store) View(ctx context.Context, mode task.FilterMode, query string) []task.Task {
	return task.Project(s.tasks, mode, query)
}

// Add creates a task from text. Returns false if text is blank.
func (s *Store) Add(ctx context.Context, text string) (task.Task, bool) {
	now := s.now()
	next := task.Add(s.tasks, text, s.seq.Next(s.tasks, now), now)
	if len(next) == len(s.tasks) {
		return task.Task{}, false
	}
	s.commit(ctx, next)
	return next[0], true
}

// Edit replaces the text of task id. Returns false if nothing changed.
func (s *Store) Edit(ctx context.Context, id int64, text string) bool {
	i, ok := task.Find(s.tasks, id)
	if !ok {
		return false
	}
	next := task.Edit(s.tasks, id, text)
	if next[i] == s.tasks[i] {
		return false
	}
	s.commit(ctx, next)
	return true
}

// Toggle flips completion of task id. Returns false if id is unknown.
func (s *Store) Toggle(ctx context.Context, id int64) bool {
	if _, ok := task.Find(s.tasks, id); !ok {
		return false
	}
	s.commit(ctx, task.Toggle(s.tasks, id))
	return true
}

// Delete removes task id. Returns false if id is unknown.
func (s *Store) Delete(ctx context.Context, id int64) bool {
	if _, ok := task.Find(s.tasks, id); !ok {
		return false
	}
	s.commit(ctx, task.Delete(s.tasks, id))
	return true
}

// Close closes the underlying slot.
func (s *Store) Close() error {
	return s.slot.Close()
}

func (s *Store) commit(ctx context.Context, next []task.Task) {
	s.tasks = next
	Save(ctx, s.slot, s.key, s.tasks, s.log)
}

// Open opens the slot selected by cfg and loads the collection from it.
func Open(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*Store, error) {
	sl, err := slot.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s := New(sl, WithKey(cfg.Key), WithLogger(log))
	s.Load(ctx)
	return s, nil
}
