package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmizzell/tasklist"
)

var filterFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  `List tasks in display order: active before completed, then by priority. Use --filter to narrow the list.`,
	Args:  cobra.NoArgs,
	Run:   listTasks,
}

func init() {
	listCmd.Flags().StringVarP(&filterFlag, "filter", "f", "", "Filter: all, active, completed, high (default: configured default_filter)")
}

func listTasks(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.close()

	if filterFlag != "" {
		if err := a.store.SetFilterName(filterFlag); err != nil {
			fatal("%v", err)
		}
	}

	printView(a.store.View())
}

// printView renders a projection the way the list command shows it
func printView(v tasklist.View) {
	fmt.Printf("📋 Tasks (%s):\n", v.Filter)
	fmt.Println()

	if v.Empty() {
		fmt.Println("  No tasks here.")
	}
	for _, task := range v.Tasks {
		displayTask(task)
	}

	fmt.Println()
	printStats(v.Stats)
}

func displayTask(task tasklist.Task) {
	// Status icon
	statusIcon := "○"
	if task.Completed {
		statusIcon = "✓"
	}
	fmt.Printf("  %s [%d] %s (%s)\n", statusIcon, task.ID, task.Text, task.Priority)
}

func printStats(st tasklist.Stats) {
	fmt.Printf("%d total · %d completed · %d active\n", st.Total, st.Completed, st.Active)
	if st.HasCompleted() {
		fmt.Println("Run 'tasklist clear' to remove completed tasks.")
	}
}
