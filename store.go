package tasklist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fmizzell/tasklist/internal/logger"
)

var ErrDuplicateID = errors.New("task id already exists")

// Store owns the task collection and the current filter.
// Every mutation runs under the store's lock and is followed by a save
// through the configured Repository when it changed something.
type Store struct {
	mu     sync.Mutex
	state  storeState
	repo   Repository
	log    *slog.Logger
	now    func() time.Time
	lastID int64
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithRepository sets the persistence collaborator. Defaults to a MemoryRepository.
func WithRepository(repo Repository) StoreOption {
	return func(s *Store) {
		if repo != nil {
			s.repo = repo
		}
	}
}

// WithLogger sets the logger used for store diagnostics
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides time.Now, mainly for tests
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty store with the "all" filter
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		state: storeState{Filter: FilterAll},
		repo:  NewMemoryRepository(),
		log:   logger.Discard(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("where", "store")
	return s
}

// Open creates a store and seeds it from the repository's Load
func Open(ctx context.Context, opts ...StoreOption) (*Store, error) {
	s := NewStore(opts...)

	tasks, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	s.Seed(tasks)

	s.log.Debug("store: tasks loaded", "count", len(tasks))
	return s, nil
}

// Seed replaces the collection without saving.
// Tasks with empty text or a repeated id are skipped.
func (s *Store) Seed(tasks []Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]bool, len(tasks))
	seeded := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		t.Text = strings.TrimSpace(t.Text)
		if t.Text == "" || seen[t.ID] {
			s.log.Warn("store: skipping invalid task", "id", t.ID)
			continue
		}
		seen[t.ID] = true
		seeded = append(seeded, t)
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	s.state.Tasks = seeded
}

// Add creates a task from text and priority.
// Text that is empty after trimming is ignored and reported as ok=false.
func (s *Store) Add(ctx context.Context, text string, priority Priority) (Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e := TaskAdded{TaskID: s.nextID(now), Text: text, Priority: priority, Time: now}
	n, err := s.process(ctx, e)
	if err != nil || n == 0 {
		return Task{}, false, err
	}
	return s.state.Tasks[len(s.state.Tasks)-1], true, nil
}

// Toggle flips the completed flag of the task with the given id
func (s *Store) Toggle(ctx context.Context, id int64) (bool, error) {
	return s.mutate(ctx, TaskToggled{TaskID: id})
}

// Delete removes the task with the given id
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	return s.mutate(ctx, TaskDeleted{TaskID: id})
}

// Edit replaces the text of a task. Empty text leaves the task unchanged.
func (s *Store) Edit(ctx context.Context, id int64, text string) (bool, error) {
	return s.mutate(ctx, TaskEdited{TaskID: id, Text: text})
}

// ClearCompleted removes every completed task and returns how many were removed
func (s *Store) ClearCompleted(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.process(ctx, CompletedCleared{})
}

// Process applies any store event. Events with a zero time are stamped with the store clock.
// It returns the number of tasks affected.
func (s *Store) Process(ctx context.Context, e Event) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if added, ok := e.(TaskAdded); ok && added.TaskID == 0 {
		now := s.now()
		if !added.Time.IsZero() {
			now = added.Time
		}
		added.TaskID = s.nextID(now)
		e = added
	}
	return s.process(ctx, e)
}

// SetFilter changes the current filter. Unknown filters are rejected.
func (s *Store) SetFilter(f Filter) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFilter, string(f))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filter = f
	return nil
}

// SetFilterName parses name and sets it as the current filter
func (s *Store) SetFilterName(name string) error {
	f, err := ParseFilter(name)
	if err != nil {
		return err
	}
	return s.SetFilter(f)
}

// Filter returns the current filter
func (s *Store) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Filter
}

// Tasks returns a copy of all tasks in insertion order
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.state.Tasks)
}

// Task returns the task with the given id
func (s *Store) Task(id int64) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return s.state.Tasks[i], true
}

// Len returns the number of tasks
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Tasks)
}

// View projects the current tasks through the current filter
func (s *Store) View() View {
	s.mu.Lock()
	tasks := cloneTasks(s.state.Tasks)
	filter := s.state.Filter
	s.mu.Unlock()

	return Project(tasks, filter)
}

func (s *Store) mutate(ctx context.Context, e Event) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.process(ctx, e)
	return n > 0, err
}

// process validates e, applies its reducer and saves when something changed.
// Callers must hold s.mu.
func (s *Store) process(ctx context.Context, e Event) (int, error) {
	var n int
	switch e := e.(type) {
	case TaskAdded:
		e.Text = strings.TrimSpace(e.Text)
		if e.Text == "" {
			s.log.Debug("store: ignoring empty task text")
			return 0, nil
		}
		if !e.Priority.Valid() {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, string(e.Priority))
		}
		if s.state.indexOf(e.TaskID) >= 0 {
			return 0, fmt.Errorf("%w: %d", ErrDuplicateID, e.TaskID)
		}
		if e.TaskID > s.lastID {
			s.lastID = e.TaskID
		}
		if e.Time.IsZero() {
			e.Time = s.now()
		}
		n = reduceTaskAdded(&s.state, e)
	case TaskToggled:
		n = reduceTaskToggled(&s.state, e)
	case TaskDeleted:
		n = reduceTaskDeleted(&s.state, e)
	case TaskEdited:
		e.Text = strings.TrimSpace(e.Text)
		n = reduceTaskEdited(&s.state, e)
	case CompletedCleared:
		n = reduceCompletedCleared(&s.state, e)
	default:
		return 0, fmt.Errorf("unsupported event type %q", e.Type())
	}

	if n == 0 {
		s.log.Debug("store: event had no effect", "event", e.Type())
		return 0, nil
	}
	s.log.Debug("store: event applied", "event", e.Type(), "affected", n)

	if err := s.repo.Save(ctx, cloneTasks(s.state.Tasks)); err != nil {
		s.log.Error("store: save failed", "event", e.Type(), "error", err)
		return n, fmt.Errorf("save tasks: %w", err)
	}
	return n, nil
}

// nextID derives an id from the clock, bumped past every id already issued
// so tasks created within the same millisecond stay unique. Callers must hold s.mu.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	return id
}
