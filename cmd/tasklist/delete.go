package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <task-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	Run:     deleteTask,
}

func deleteTask(cmd *cobra.Command, args []string) {
	id, err := parseID(args[0])
	if err != nil {
		fatal("%v", err)
	}

	a := mustOpenApp(cmd)
	defer a.close()

	task, found := a.store.Task(id)
	changed, err := a.store.Delete(a.ctx, id)
	if err != nil {
		fatal("Failed to delete task: %v", err)
	}
	if !found || !changed {
		fmt.Printf("Task not found: %d\n", id)
		return
	}

	fmt.Printf("✓ Task deleted: %d\n", id)
	fmt.Printf("  %s\n", task.Text)
}
