package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed tasks",
	Args:  cobra.NoArgs,
	Run:   clearCompleted,
}

func clearCompleted(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.close()

	removed, err := a.store.ClearCompleted(a.ctx)
	if err != nil {
		fatal("Failed to clear completed tasks: %v", err)
	}
	if removed == 0 {
		fmt.Println("No completed tasks to clear.")
		return
	}
	fmt.Printf("✓ Cleared %d completed task(s)\n", removed)
}
