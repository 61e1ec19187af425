package tasklist

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func exportFixture() []Task {
	return []Task{
		{ID: 1, Text: "Write report", Priority: PriorityHigh, CreatedAt: t0},
		{ID: 2, Text: "File, taxes", Completed: true, Priority: PriorityLow, CreatedAt: t0},
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, exportFixture(), "json"))

	var doc struct {
		Stats Stats  `json:"stats"`
		Tasks []Task `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, Stats{Total: 2, Completed: 1, Active: 1}, doc.Stats)
	assert.Equal(t, []int64{1, 2}, ids(doc.Tasks))
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, exportFixture(), "YAML"))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Contains(t, doc, "stats")
	assert.Contains(t, buf.String(), "text: Write report")
	assert.Contains(t, buf.String(), "priority: high")
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, exportFixture(), "csv"))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "text", "completed", "priority", "created_at"}, records[0])
	assert.Equal(t, []string{"2", "File, taxes", "true", "low", "2026-10-18T09:00:00Z"}, records[2])
}

func TestExportPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, exportFixture(), "pdf"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, exportFixture(), "docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Zero(t, buf.Len())
}
