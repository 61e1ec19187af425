package tasklist

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Test utilities - shared helpers for tests

var errSaveFailed = errors.New("disk full")

// stepClock returns a clock that advances by step on every call
func stepClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := now
		now = now.Add(step)
		return t
	}
}

// frozenClock always returns the same instant
func frozenClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// RecordingRepository is a test double counting Save calls
type RecordingRepository struct {
	MemoryRepository
	Saves   int
	FailOn  int // fail the Nth save (1-based), 0 never fails
	LoadErr error
}

func (r *RecordingRepository) Load(ctx context.Context) ([]Task, error) {
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	return r.MemoryRepository.Load(ctx)
}

func (r *RecordingRepository) Save(ctx context.Context, tasks []Task) error {
	r.Saves++
	if r.FailOn > 0 && r.Saves == r.FailOn {
		return errSaveFailed
	}
	return r.MemoryRepository.Save(ctx, tasks)
}

func ids(tasks []Task) []int64 {
	out := make([]int64, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
