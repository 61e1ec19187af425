package tasklist

import (
	"context"
	"sync"
)

// Repository is the save/load collaborator behind a Store.
// Load must return the most recently saved sequence.
type Repository interface {
	Load(ctx context.Context) ([]Task, error)
	Save(ctx context.Context, tasks []Task) error
}

// ThemeStore persists the dark theme preference
type ThemeStore interface {
	LoadDarkTheme(ctx context.Context) (bool, error)
	SaveDarkTheme(ctx context.Context, dark bool) error
}

// MemoryRepository keeps tasks for the lifetime of the process only
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks []Task
	dark  bool
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Load returns a copy of the last saved tasks
func (r *MemoryRepository) Load(ctx context.Context) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneTasks(r.tasks), nil
}

// Save keeps a copy of tasks
func (r *MemoryRepository) Save(ctx context.Context, tasks []Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = cloneTasks(tasks)
	return nil
}

// LoadDarkTheme returns the last saved theme preference
func (r *MemoryRepository) LoadDarkTheme(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dark, nil
}

// SaveDarkTheme stores the theme preference
func (r *MemoryRepository) SaveDarkTheme(ctx context.Context, dark bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dark = dark
	return nil
}
