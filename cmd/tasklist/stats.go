package main

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts",
	Args:  cobra.NoArgs,
	Run:   showStats,
}

func showStats(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.close()

	printStats(a.store.View().Stats)
}
