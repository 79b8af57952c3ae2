package task

import (
	"fmt"
	"io"
	"time"

	"github.com/amonks/tt/internal/state"
	"github.com/charmbracelet/log"
)

// Store holds the tasks loaded from a single JSON file and writes the whole
// file back after every mutation.
type Store struct {
	file     *state.File
	tasks    []Task
	now      func() time.Time
	logger   *log.Logger
	readOnly bool
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time

	// Logger receives store diagnostics. If nil, logs are discarded.
	Logger *log.Logger

	// ReadOnly opens the store without ever writing the file.
	ReadOnly bool
}

// ErrReadOnlyStore is returned when writing through a read-only store.
var ErrReadOnlyStore = fmt.Errorf("%w: store is read-only", ErrPersistence)

// Open loads the task file at path and removes duplicate tasks.
// A missing or empty file opens as an empty store.
func Open(path string, opts OpenOptions) (*Store, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Store{
		file:     state.NewFile(path),
		now:      opts.Now,
		logger:   opts.Logger,
		readOnly: opts.ReadOnly,
	}

	data, err := s.file.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	tasks, err := Decode(data, s.now())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s.tasks = tasks
	s.logger.Debug("loaded tasks", "path", path, "count", len(tasks))

	if removed := s.RemoveDuplicates(); removed > 0 && !s.readOnly {
		if err := s.save(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Path returns the location of the task file.
func (s *Store) Path() string {
	return s.file.Path()
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Tasks returns a snapshot of every task with freshly computed status.
func (s *Store) Tasks() []Task {
	now := s.now()
	out := make([]Task, 0, len(s.tasks))
	for i := range s.tasks {
		s.tasks[i].Refresh(now)
		out = append(out, s.tasks[i].Clone())
	}
	return out
}

// RemoveDuplicates drops every task whose title, description and expiry
// match an earlier task. Titles and descriptions compare trimmed and
// case-insensitively. It returns the number of tasks removed.
func (s *Store) RemoveDuplicates() int {
	seen := make(map[dedupKey]struct{}, len(s.tasks))
	unique := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		key := newDedupKey(t)
		if _, ok := seen[key]; ok {
			removed++
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, t)
	}
	s.tasks = unique
	if removed > 0 {
		s.logger.Info("removed duplicate tasks", "count", removed)
	}
	return removed
}

func (s *Store) save() error {
	if s.readOnly {
		return ErrReadOnlyStore
	}
	data, err := Encode(s.tasks)
	if err != nil {
		return err
	}
	changed, err := s.file.Write(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if changed {
		s.logger.Debug("saved tasks", "path", s.file.Path(), "count", len(s.tasks))
	}
	return nil
}

func (s *Store) find(id int) (int, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
}
