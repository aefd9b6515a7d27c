package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabwise/reconcile/pkg/analyzer"
	"github.com/tabwise/reconcile/pkg/completeness"
	"github.com/tabwise/reconcile/pkg/dateformat"
	"github.com/tabwise/reconcile/pkg/fieldmap"
)

func sampleReport() *analyzer.Report {
	return &analyzer.Report{
		RunID:       "run-1",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Mapping: fieldmap.Mapping{
			Entries:  []fieldmap.Entry{{Field: "pt_cause_no", Headers: []string{"pt cause no"}}},
			Unmapped: []string{"folio no"},
		},
		DateFormats: map[dateformat.Tag]int{
			dateformat.ISODate:      4,
			dateformat.SlashNumeric: 2,
		},
		Completeness: completeness.Distribution{
			{Field: "pt cause no", Files: []completeness.Record{
				{File: "a.csv", Field: "pt cause no", Filled: 7, Total: 10, Percent: 70},
			}},
		},
		HeaderFiles:  map[string][]string{"pt cause no": {"a.csv"}},
		FileFailures: []analyzer.FileFailure{{File: "bad.csv", Reason: "unreadable"}},
		Stats:        analyzer.Stats{FilesAnalyzed: 1, FilesFailed: 1, TotalRows: 10, UniqueHeaders: 2},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if tt.wantErr {
			assert.Error(t, err, "format %q", tt.name)
			continue
		}
		require.NoError(t, err, "format %q", tt.name)
		assert.Equal(t, tt.want, got)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), FormatText))
	out := buf.String()

	assert.Contains(t, out, "Analysis run-1")
	assert.Contains(t, out, "1 analyzed, 1 failed")
	assert.Contains(t, out, "pt_cause_no")
	assert.Contains(t, out, "Unmapped: folio no")
	assert.Contains(t, out, "iso_date")
	assert.Contains(t, out, "70.0%")
	assert.Contains(t, out, "bad.csv: unreadable")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded["run_id"])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), FormatYAML))

	assert.True(t, strings.Contains(buf.String(), "run_id: run-1"))
}
