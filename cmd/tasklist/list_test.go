package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmizzell/tasklist"
)

// setupTestWorkspace points the global flags at a fresh workspace and restores them afterwards
func setupTestWorkspace(t *testing.T) string {
	tmpDir := t.TempDir()

	for _, k := range []string{"TASKLIST_BACKEND", "TASKLIST_DSN", "LOG_LEVEL", "LOG_FORMAT", "TASKLIST_SEED_DEMO"} {
		t.Setenv(k, "")
	}

	old := []string{workspaceFlag, configFlag, logLevelFlag, backendFlag, dsnFlag, filterFlag, addPriority, exportFormat, exportOut}
	t.Cleanup(func() {
		workspaceFlag, configFlag, logLevelFlag, backendFlag, dsnFlag = old[0], old[1], old[2], old[3], old[4]
		filterFlag, addPriority, exportFormat, exportOut = old[5], old[6], old[7], old[8]
	})

	workspaceFlag = tmpDir
	configFlag = ""
	logLevelFlag = ""
	backendFlag = ""
	dsnFlag = ""
	filterFlag = ""
	addPriority = ""
	exportFormat = "json"
	exportOut = "-"
	return tmpDir
}

// captureOutput captures stdout during command execution
func captureOutput(f func()) string {
	var buf bytes.Buffer
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old
	buf.ReadFrom(r)
	return buf.String()
}

// run invokes a command's Run function with a bare cobra command
func run(fn func(*cobra.Command, []string), args ...string) string {
	return captureOutput(func() {
		fn(&cobra.Command{}, args)
	})
}

// savedTasks reads the workspace snapshot directly
func savedTasks(t *testing.T, workspaceDir string) []tasklist.Task {
	repo, err := tasklist.NewFileRepository(workspaceDir, nil)
	require.NoError(t, err)
	tasks, err := repo.Load(context.Background())
	require.NoError(t, err)
	return tasks
}

func TestListFirstRunShowsDemoTasks(t *testing.T) {
	tmpDir := setupTestWorkspace(t)

	output := run(listTasks)

	assert.Contains(t, output, "📋 Tasks (all):")
	assert.Contains(t, output, "○ [1] Welcome to your new todo app! 🎉 (high)")
	assert.Contains(t, output, "✓ [3] Click the checkbox to mark as complete (low)")
	assert.Contains(t, output, "3 total · 1 completed · 2 active")
	assert.Contains(t, output, "tasklist clear")

	// Display order: active by priority, then completed
	first := strings.Index(output, "[1]")
	second := strings.Index(output, "[2]")
	third := strings.Index(output, "[3]")
	assert.True(t, first < second && second < third)

	// Seeding alone does not write anything
	assert.Empty(t, savedTasks(t, tmpDir))
}

func TestListWithFilter(t *testing.T) {
	setupTestWorkspace(t)

	filterFlag = "completed"
	output := run(listTasks)
	assert.Contains(t, output, "📋 Tasks (completed):")
	assert.Contains(t, output, "[3]")
	assert.NotContains(t, output, "[1]")
	assert.NotContains(t, output, "[2]")

	filterFlag = "high"
	output = run(listTasks)
	assert.Contains(t, output, "[1]")
	assert.NotContains(t, output, "[3]")
}

func TestListWithoutDemoSeeding(t *testing.T) {
	setupTestWorkspace(t)
	t.Setenv("TASKLIST_SEED_DEMO", "false")

	output := run(listTasks)
	assert.Contains(t, output, "No tasks here.")
	assert.Contains(t, output, "0 total · 0 completed · 0 active")
	assert.NotContains(t, output, "tasklist clear")
}

func TestAddToggleEditDelete(t *testing.T) {
	tmpDir := setupTestWorkspace(t)

	// Add
	addPriority = "high"
	output := run(addTask, "Write", "release", "notes")
	assert.Contains(t, output, "✓ Task created:")
	assert.Contains(t, output, "Text: Write release notes")
	assert.Contains(t, output, "Priority: high")

	tasks := savedTasks(t, tmpDir)
	require.Len(t, tasks, 4)
	added := tasks[3]
	assert.Equal(t, "Write release notes", added.Text)
	id := strconv.FormatInt(added.ID, 10)

	// Blank text adds nothing
	output = run(addTask, "   ")
	assert.Contains(t, output, "Nothing to add")
	assert.Len(t, savedTasks(t, tmpDir), 4)

	// Toggle
	output = run(toggleTask, id)
	assert.Contains(t, output, "✓ Task completed: "+id)
	output = run(toggleTask, id)
	assert.Contains(t, output, "○ Task reopened: "+id)

	// Edit with blank text keeps the old text
	output = run(editTask, id, "  ")
	assert.Contains(t, output, "Task unchanged")
	output = run(editTask, id, "Publish", "notes")
	assert.Contains(t, output, "Write release notes → Publish notes")

	// Delete twice: second time is a no-op
	output = run(deleteTask, id)
	assert.Contains(t, output, "✓ Task deleted: "+id)
	output = run(deleteTask, id)
	assert.Contains(t, output, "Task not found: "+id)

	assert.Len(t, savedTasks(t, tmpDir), 3)
}

func TestClearAndStats(t *testing.T) {
	tmpDir := setupTestWorkspace(t)

	output := run(showStats)
	assert.Contains(t, output, "3 total · 1 completed · 2 active")

	output = run(clearCompleted)
	assert.Contains(t, output, "✓ Cleared 1 completed task(s)")
	assert.ElementsMatch(t, []int64{1, 2}, idsOf(savedTasks(t, tmpDir)))

	output = run(clearCompleted)
	assert.Contains(t, output, "No completed tasks to clear.")

	output = run(showStats)
	assert.Contains(t, output, "2 total · 0 completed · 2 active")
}

func TestExportToFile(t *testing.T) {
	tmpDir := setupTestWorkspace(t)
	exportFormat = "csv"
	exportOut = filepath.Join(tmpDir, "tasks.csv")

	output := run(exportTasks)
	assert.Contains(t, output, "✓ Exported 3 task(s)")

	data, err := os.ReadFile(exportOut)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "id,text,completed,priority,created_at\n"))
	assert.Contains(t, string(data), "Double-click any task to edit it")
}

func TestThemeCommand(t *testing.T) {
	setupTestWorkspace(t)

	assert.Contains(t, run(themeCommand), "Light theme")
	assert.Contains(t, run(themeCommand, "toggle"), "Dark theme")
	assert.Contains(t, run(themeCommand, "show"), "Dark theme")
}

func TestMemoryBackendForgetsBetweenRuns(t *testing.T) {
	tmpDir := setupTestWorkspace(t)
	backendFlag = "memory"

	run(addTask, "Ephemeral")
	output := run(listTasks)
	assert.NotContains(t, output, "Ephemeral")
	assert.NoFileExists(t, filepath.Join(tmpDir, tasklist.StateDir, "tasks.json"))
}

func TestInitWritesConfig(t *testing.T) {
	tmpDir := setupTestWorkspace(t)

	output := run(initWorkspace)
	assert.Contains(t, output, "✓ Wrote config:")
	assert.FileExists(t, filepath.Join(tmpDir, tasklist.StateDir, "config.toml"))

	output = run(initWorkspace)
	assert.Contains(t, output, "Config already exists")
}

func TestConfigFileSelectsDefaults(t *testing.T) {
	tmpDir := setupTestWorkspace(t)
	path := filepath.Join(tmpDir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("default_priority = \"low\"\ndefault_filter = \"active\"\n"), 0644))
	configFlag = path

	output := run(listTasks)
	assert.Contains(t, output, "📋 Tasks (active):")
	assert.NotContains(t, output, "[3]")

	output = run(addTask, "Low by default")
	assert.Contains(t, output, "Priority: low")
}

func TestOpenAppRejectsBadFilterConfig(t *testing.T) {
	tmpDir := setupTestWorkspace(t)
	path := filepath.Join(tmpDir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("default_filter = \"urgent\"\n"), 0644))
	configFlag = path

	_, err := openApp(&cobra.Command{})
	assert.ErrorIs(t, err, tasklist.ErrInvalidFilter)
}

func TestOpenAppRejectsBadBackend(t *testing.T) {
	setupTestWorkspace(t)
	backendFlag = "cassandra"

	_, err := openApp(&cobra.Command{})
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("abc")
	assert.Error(t, err)
}

func idsOf(tasks []tasklist.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
