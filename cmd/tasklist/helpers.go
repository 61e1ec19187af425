package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fmizzell/tasklist"
	"github.com/fmizzell/tasklist/internal/config"
	"github.com/fmizzell/tasklist/internal/logger"
)

// backend is what every storage option provides: tasks plus the theme preference
type backend interface {
	tasklist.Repository
	tasklist.ThemeStore
}

// app bundles what a command needs after startup
type app struct {
	ctx    context.Context
	cfg    config.Config
	log    *slog.Logger
	store  *tasklist.Store
	themes tasklist.ThemeStore
	close  func() error
}

// fatal prints an error and exits
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// getWorkspaceDir returns the --workspace flag or the current directory
func getWorkspaceDir() (string, error) {
	if workspaceFlag != "" {
		return workspaceFlag, nil
	}
	return os.Getwd()
}

// loadConfig reads the config file and environment, then applies flags
func loadConfig(workspaceDir string) (config.Config, error) {
	path := configFlag
	if path == "" {
		path = config.DefaultPath(workspaceDir)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	if backendFlag != "" {
		cfg.Backend = backendFlag
	}
	if dsnFlag != "" {
		cfg.DSN = dsnFlag
	}
	return cfg, cfg.Validate()
}

// openBackend builds the storage selected by cfg
func openBackend(ctx context.Context, cfg config.Config, workspaceDir string, log *slog.Logger) (backend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		return tasklist.NewMemoryRepository(), noop, nil
	case config.BackendMySQL:
		repo, err := tasklist.NewSQLRepository(ctx, cfg.DSN, log)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		repo, err := tasklist.NewFileRepository(workspaceDir, log)
		if err != nil {
			return nil, nil, err
		}
		return repo, noop, nil
	}
}

// openApp loads config, opens storage and the store, and seeds demo tasks on first run
func openApp(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workspaceDir, err := getWorkspaceDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace directory: %w", err)
	}

	cfg, err := loadConfig(workspaceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(os.Stderr, logger.Config{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
	})
	ctx = logger.NewContext(ctx, log)

	repo, closeRepo, err := openBackend(ctx, cfg, workspaceDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s backend: %w", cfg.Backend, err)
	}

	store, err := tasklist.Open(ctx, tasklist.WithRepository(repo), tasklist.WithLogger(log))
	if err != nil {
		closeRepo()
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	if cfg.SeedDemo && tasklist.SeedIfEmpty(store, time.Now()) {
		log.Debug("cli: seeded demo tasks")
	}

	if err := store.SetFilterName(cfg.DefaultFilter); err != nil {
		closeRepo()
		return nil, fmt.Errorf("default_filter: %w", err)
	}

	return &app{
		ctx:    ctx,
		cfg:    cfg,
		log:    log,
		store:  store,
		themes: repo,
		close:  closeRepo,
	}, nil
}

// mustOpenApp is openApp for commands, exiting on failure
func mustOpenApp(cmd *cobra.Command) *app {
	a, err := openApp(cmd)
	if err != nil {
		fatal("%v", err)
	}
	return a
}

// parseID converts a task id argument
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}
