package tasklist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDemoSeeding covers the first run: nothing saved, three demo tasks shown
func TestDemoSeeding(t *testing.T) {
	ctx := context.Background()
	repo := &RecordingRepository{}

	s, err := Open(ctx, WithRepository(repo))
	require.NoError(t, err)

	assert.True(t, SeedIfEmpty(s, t0))
	assert.ElementsMatch(t, []int64{1, 2, 3}, ids(s.Tasks()))
	assert.Equal(t, Stats{Total: 3, Completed: 1, Active: 2}, s.View().Stats)

	task, ok := s.Task(3)
	require.True(t, ok)
	assert.True(t, task.Completed)

	// Seeding does not save, and never runs twice
	assert.Equal(t, 0, repo.Saves)
	assert.False(t, SeedIfEmpty(s, t0))

	// New tasks never reuse seeded ids
	added, _, err := s.Add(ctx, "mine", PriorityLow)
	require.NoError(t, err)
	assert.Greater(t, added.ID, int64(3))
}

func TestDemoTasksDisplayOrder(t *testing.T) {
	got := DisplayOrder(DemoTasks(t0))
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}
