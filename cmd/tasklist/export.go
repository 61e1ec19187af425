package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fmizzell/tasklist"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks as json, yaml, csv or pdf",
	Args:  cobra.NoArgs,
	Run:   exportTasks,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: "+strings.Join(tasklist.ExportFormats, ", "))
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "-", "Output path, - for stdout")
}

func exportTasks(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.close()

	var w io.Writer = os.Stdout
	if exportOut != "-" && exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			fatal("Failed to create %s: %v", exportOut, err)
		}
		defer f.Close()
		w = f
	}

	if err := tasklist.Export(w, a.store.Tasks(), exportFormat); err != nil {
		fatal("Failed to export: %v", err)
	}

	if exportOut != "-" && exportOut != "" {
		fmt.Printf("✓ Exported %d task(s) -> %s\n", a.store.Len(), exportOut)
	}
}
