package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	workspaceFlag string
	configFlag    string
	logLevelFlag  string
	backendFlag   string
	dsnFlag       string
)

var rootCmd = &cobra.Command{
	Use:   "tasklist",
	Short: "A small task list with priorities, filters and a terminal UI",
	Long: `tasklist keeps short text tasks tagged high, medium or low.
State lives in the workspace's .tasklist directory unless another backend is configured.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: <workspace>/.tasklist/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Storage backend: file, memory, mysql")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "MySQL DSN for the mysql backend")

	rootCmd.AddCommand(addCmd, toggleCmd, deleteCmd, editCmd, clearCmd, listCmd, statsCmd, exportCmd, themeCmd, tuiCmd, initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
