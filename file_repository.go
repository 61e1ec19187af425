package tasklist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/fmizzell/tasklist/internal/logger"
)

const (
	// StateDir is the directory inside a workspace holding tasklist state
	StateDir      = ".tasklist"
	tasksFileName = "tasks.json"
	themeFileName = "theme.json"
)

// snapshot is the on-disk document written by FileRepository
type snapshot struct {
	Session string    `json:"session"`
	SavedAt time.Time `json:"saved_at"`
	Tasks   []Task    `json:"tasks"`
}

type themeDocument struct {
	DarkTheme bool `json:"dark_theme"`
}

// FileRepository stores tasks as a JSON snapshot inside a workspace.
// No caching - always reads/writes the file. File locking prevents races
// between processes sharing a workspace.
type FileRepository struct {
	tasksPath string
	themePath string
	session   string
	log       *slog.Logger
}

// NewFileRepository creates a file repository under workspaceDir/.tasklist
func NewFileRepository(workspaceDir string, log *slog.Logger) (*FileRepository, error) {
	dir := filepath.Join(workspaceDir, StateDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", StateDir, err)
	}
	if log == nil {
		log = logger.Discard()
	}

	return &FileRepository{
		tasksPath: filepath.Join(dir, tasksFileName),
		themePath: filepath.Join(dir, themeFileName),
		session:   uuid.NewString(),
		log:       log.With("where", "file_repository"),
	}, nil
}

// Path returns the location of the tasks snapshot
func (r *FileRepository) Path() string {
	return r.tasksPath
}

// Load returns the tasks from the last snapshot. A missing or empty file loads as no tasks.
func (r *FileRepository) Load(ctx context.Context) ([]Task, error) {
	var snap snapshot
	err := withFileLock(r.tasksPath, func(file *os.File) error {
		return readJSON(file, &snap)
	})
	if err != nil {
		return nil, err
	}

	r.log.Debug("file_repository: snapshot loaded", "count", len(snap.Tasks), "session", snap.Session)
	if snap.Tasks == nil {
		return []Task{}, nil
	}
	return snap.Tasks, nil
}

// Save replaces the snapshot with tasks
// Lock → Truncate → Write → Unlock
func (r *FileRepository) Save(ctx context.Context, tasks []Task) error {
	snap := snapshot{
		Session: r.session,
		SavedAt: time.Now().UTC(),
		Tasks:   tasks,
	}
	if snap.Tasks == nil {
		snap.Tasks = []Task{}
	}

	err := withFileLock(r.tasksPath, func(file *os.File) error {
		return writeJSON(file, snap)
	})
	if err != nil {
		return err
	}

	r.log.Debug("file_repository: snapshot saved", "count", len(tasks), "session", r.session)
	return nil
}

// LoadDarkTheme reads the theme preference, defaulting to light
func (r *FileRepository) LoadDarkTheme(ctx context.Context) (bool, error) {
	var doc themeDocument
	err := withFileLock(r.themePath, func(file *os.File) error {
		return readJSON(file, &doc)
	})
	return doc.DarkTheme, err
}

// SaveDarkTheme writes the theme preference
func (r *FileRepository) SaveDarkTheme(ctx context.Context, dark bool) error {
	return withFileLock(r.themePath, func(file *os.File) error {
		return writeJSON(file, themeDocument{DarkTheme: dark})
	})
}

// withFileLock executes a function with the file locked
func withFileLock(path string, fn func(*os.File) error) error {
	// Open file for read/write, create if not exists
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Acquire exclusive lock
	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("failed to lock file: %w", err)
	}
	defer syscall.Flock(int(file.Fd()), syscall.LOCK_UN)

	return fn(file)
}

// readJSON decodes the whole file into v. An empty file leaves v untouched.
func readJSON(file *os.File, v any) error {
	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if fileInfo.Size() == 0 {
		return nil
	}

	data := make([]byte, fileInfo.Size())
	if _, err := file.ReadAt(data, 0); err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filepath.Base(file.Name()), err)
	}
	return nil
}

// writeJSON truncates the file and writes v as indented JSON
func writeJSON(file *os.File, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
