package tasklist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/fmizzell/tasklist/internal/logger"
)

const darkThemeKey = "dark_theme"

// SQLRepository stores tasks in a MySQL database.
// Save replaces the whole table inside one transaction; position keeps insertion order.
type SQLRepository struct {
	db  *sql.DB
	log *slog.Logger
}

// NewSQLRepository connects to dsn and creates the schema when missing.
// The DSN needs parseTime=true so created_at scans into time.Time.
func NewSQLRepository(ctx context.Context, dsn string, log *slog.Logger) (*SQLRepository, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r, err := NewSQLRepositoryFromDB(ctx, db, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// NewSQLRepositoryFromDB wraps an open database handle and migrates it
func NewSQLRepositoryFromDB(ctx context.Context, db *sql.DB, log *slog.Logger) (*SQLRepository, error) {
	if log == nil {
		log = logger.Discard()
	}
	r := &SQLRepository{db: db, log: log.With("where", "sql_repository")}
	if err := r.migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

// Close closes the underlying database
func (r *SQLRepository) Close() error { return r.db.Close() }

func (r *SQLRepository) migrate(ctx context.Context) error {
	createTasks := `CREATE TABLE IF NOT EXISTS tasks (
    id BIGINT PRIMARY KEY,
    text TEXT NOT NULL,
    completed BOOLEAN NOT NULL DEFAULT FALSE,
    priority VARCHAR(10) NOT NULL,
    created_at DATETIME(3) NOT NULL,
    position INT NOT NULL
)`
	if _, err := r.db.ExecContext(ctx, createTasks); err != nil {
		return err
	}
	createPreferences := `CREATE TABLE IF NOT EXISTS preferences (
    name VARCHAR(64) PRIMARY KEY,
    value VARCHAR(255) NOT NULL
)`
	if _, err := r.db.ExecContext(ctx, createPreferences); err != nil {
		return err
	}
	return nil
}

// Load returns all tasks in insertion order
func (r *SQLRepository) Load(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, text, completed, priority, created_at
    FROM tasks
    ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	out := []Task{}
	for rows.Next() {
		var (
			t        Task
			priority string
		)
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &priority, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Priority = Priority(priority)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	r.log.Debug("sql_repository: tasks loaded", "count", len(out))
	return out, nil
}

// Save replaces the stored tasks with tasks
func (r *SQLRepository) Save(ctx context.Context, tasks []Task) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	for i, t := range tasks {
		_, err = tx.ExecContext(ctx, `INSERT INTO tasks (id, text, completed, priority, created_at, position)
    VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.Text, t.Completed, string(t.Priority), t.CreatedAt.UTC().Truncate(time.Millisecond), i)
		if err != nil {
			return fmt.Errorf("insert task %d: %w", t.ID, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.log.Debug("sql_repository: tasks saved", "count", len(tasks))
	return nil
}

// LoadDarkTheme reads the theme preference, defaulting to light
func (r *SQLRepository) LoadDarkTheme(ctx context.Context) (bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE name = ?`, darkThemeKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query preference: %w", err)
	}
	dark, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse preference %s: %w", darkThemeKey, err)
	}
	return dark, nil
}

// SaveDarkTheme writes the theme preference
func (r *SQLRepository) SaveDarkTheme(ctx context.Context, dark bool) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO preferences (name, value) VALUES (?, ?)
    ON DUPLICATE KEY UPDATE value=VALUES(value)`, darkThemeKey, strconv.FormatBool(dark))
	if err != nil {
		return fmt.Errorf("save preference: %w", err)
	}
	return nil
}
