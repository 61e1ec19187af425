package main

import (
	"github.com/spf13/cobra"

	"github.com/fmizzell/tasklist"
	"github.com/fmizzell/tasklist/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive task list",
	Args:  cobra.NoArgs,
	Run:   runTUI,
}

func runTUI(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.close()

	var opts []tui.Option
	if p, err := tasklist.ParsePriority(a.cfg.DefaultPriority); err == nil {
		opts = append(opts, tui.WithPriority(p))
	}

	if err := tui.Run(a.ctx, a.store, a.themes, opts...); err != nil {
		fatal("%v", err)
	}
}
