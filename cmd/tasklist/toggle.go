package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:     "toggle <task-id>",
	Aliases: []string{"complete"},
	Short:   "Mark a task completed, or active again",
	Long:    `Flip the completed flag of a task in the current workspace.`,
	Args:    cobra.ExactArgs(1),
	Run:     toggleTask,
}

func toggleTask(cmd *cobra.Command, args []string) {
	id, err := parseID(args[0])
	if err != nil {
		fatal("%v", err)
	}

	a := mustOpenApp(cmd)
	defer a.close()

	changed, err := a.store.Toggle(a.ctx, id)
	if err != nil {
		fatal("Failed to toggle task: %v", err)
	}
	if !changed {
		fmt.Printf("Task not found: %d\n", id)
		return
	}

	task, _ := a.store.Task(id)
	if task.Completed {
		fmt.Printf("✓ Task completed: %d\n", id)
	} else {
		fmt.Printf("○ Task reopened: %d\n", id)
	}
	fmt.Printf("  %s\n", task.Text)
}
