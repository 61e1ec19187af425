package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fmizzell/tasklist"
)

var addPriority string

var addCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a new task",
	Long:  `Add a new task to the current workspace. Priority defaults to the configured default_priority.`,
	Args:  cobra.MinimumNArgs(1),
	Run:   addTask,
}

func init() {
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Task priority: high, medium, low")
}

func addTask(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.close()

	name := addPriority
	if name == "" {
		name = a.cfg.DefaultPriority
	}
	priority, err := tasklist.ParsePriority(name)
	if err != nil {
		fatal("%v", err)
	}

	task, ok, err := a.store.Add(a.ctx, strings.Join(args, " "), priority)
	if err != nil {
		fatal("Failed to add task: %v", err)
	}
	if !ok {
		fmt.Println("Nothing to add: task text is empty.")
		return
	}

	fmt.Printf("✓ Task created: %d\n", task.ID)
	fmt.Printf("  Text: %s\n", task.Text)
	fmt.Printf("  Priority: %s\n", task.Priority)
}
