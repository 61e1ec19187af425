package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [show|toggle]",
	Short:     "Show or toggle the dark theme used by the TUI",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"show", "toggle"},
	Run:       themeCommand,
}

func themeCommand(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.close()

	dark, err := a.themes.LoadDarkTheme(a.ctx)
	if err != nil {
		fatal("Failed to load theme: %v", err)
	}

	if len(args) == 1 && args[0] == "toggle" {
		dark = !dark
		if err := a.themes.SaveDarkTheme(a.ctx, dark); err != nil {
			fatal("Failed to save theme: %v", err)
		}
	}

	if dark {
		fmt.Println("☀️  Dark theme")
	} else {
		fmt.Println("🌙 Light theme")
	}
}
