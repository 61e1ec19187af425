package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <task-id> <text...>",
	Short: "Change the text of a task",
	Long:  `Replace a task's text. Empty text is refused and the task keeps its old text.`,
	Args:  cobra.MinimumNArgs(2),
	Run:   editTask,
}

func editTask(cmd *cobra.Command, args []string) {
	id, err := parseID(args[0])
	if err != nil {
		fatal("%v", err)
	}
	text := strings.Join(args[1:], " ")

	a := mustOpenApp(cmd)
	defer a.close()

	before, found := a.store.Task(id)
	if !found {
		fmt.Printf("Task not found: %d\n", id)
		return
	}

	changed, err := a.store.Edit(a.ctx, id, text)
	if err != nil {
		fatal("Failed to edit task: %v", err)
	}
	if !changed {
		fmt.Printf("Task unchanged: %d\n", id)
		fmt.Printf("  %s\n", before.Text)
		return
	}

	after, _ := a.store.Task(id)
	fmt.Printf("✓ Task edited: %d\n", id)
	fmt.Printf("  %s → %s\n", before.Text, after.Text)
}
