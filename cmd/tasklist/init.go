package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fmizzell/tasklist/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file into the workspace",
	Args:  cobra.NoArgs,
	Run:   initWorkspace,
}

func initWorkspace(cmd *cobra.Command, args []string) {
	workspaceDir, err := getWorkspaceDir()
	if err != nil {
		fatal("Failed to get workspace directory: %v", err)
	}

	path := configFlag
	if path == "" {
		path = config.DefaultPath(workspaceDir)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config already exists: %s\n", path)
		return
	} else if !errors.Is(err, os.ErrNotExist) {
		fatal("Failed to check %s: %v", path, err)
	}

	if err := config.Write(path, config.Default()); err != nil {
		fatal("Failed to write config: %v", err)
	}
	fmt.Printf("✓ Wrote config: %s\n", path)
}
