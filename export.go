package tasklist

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ExportFormats lists the formats Export understands
var ExportFormats = []string{"json", "yaml", "csv", "pdf"}

// exportDocument is the shape of structured exports
type exportDocument struct {
	Stats Stats  `json:"stats" yaml:"stats"`
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

// Export writes tasks to w in the given format
func Export(w io.Writer, tasks []Task, format string) error {
	doc := exportDocument{Stats: ComputeStats(tasks), Tasks: tasks}
	if doc.Tasks == nil {
		doc.Tasks = []Task{}
	}

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "csv":
		return exportCSV(w, tasks)
	case "pdf":
		return exportPDF(w, doc)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func exportCSV(w io.Writer, tasks []Task) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "text", "completed", "priority", "created_at"})
	for _, t := range tasks {
		_ = cw.Write([]string{
			strconv.FormatInt(t.ID, 10),
			t.Text,
			strconv.FormatBool(t.Completed),
			string(t.Priority),
			t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	cw.Flush()
	return cw.Error()
}

func exportPDF(w io.Writer, doc exportDocument) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task List")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%d total, %d completed, %d active", doc.Stats.Total, doc.Stats.Completed, doc.Stats.Active))
	pdf.Ln(10)

	for _, t := range DisplayOrder(doc.Tasks) {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s (%s) #%d", mark, t.Text, t.Priority, t.ID)
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}
	return pdf.Output(w)
}
