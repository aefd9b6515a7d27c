package analyzer

import (
	"time"

	"github.com/tabwise/reconcile/pkg/completeness"
	"github.com/tabwise/reconcile/pkg/dateformat"
	"github.com/tabwise/reconcile/pkg/fieldmap"
)

// FileFailure records a file that never reached analysis.
type FileFailure struct {
	File   string `yaml:"file" json:"file"`
	Reason string `yaml:"reason" json:"reason"`
}

// InvalidDateSample records one semantically or structurally impossible date
// value. Only the ISO failure tags produce samples; they are the
// operationally actionable ones.
type InvalidDateSample struct {
	File   string `yaml:"file" json:"file"`
	Field  string `yaml:"field" json:"field"`
	Value  string `yaml:"value" json:"value"`
	Reason string `yaml:"reason" json:"reason"`
}

// Stats summarizes one run.
type Stats struct {
	FilesAnalyzed int `yaml:"files_analyzed" json:"files_analyzed"`
	FilesFailed   int `yaml:"files_failed" json:"files_failed"`
	TotalRows     int `yaml:"total_rows" json:"total_rows"`
	UniqueHeaders int `yaml:"unique_headers" json:"unique_headers"`
}

// Report is the terminal artifact of a run. It is plain data with no
// dependency on how tables were loaded or how it will be rendered.
type Report struct {
	// RunID uniquely identifies this analysis run for batch tracking.
	RunID string `yaml:"run_id" json:"run_id"`

	// GeneratedAt is when the report was assembled.
	GeneratedAt time.Time `yaml:"generated_at" json:"generated_at"`

	// Mapping associates canonical fields with observed headers.
	Mapping fieldmap.Mapping `yaml:"mapping" json:"mapping"`

	// DateFormats counts classified date samples per format tag.
	DateFormats map[dateformat.Tag]int `yaml:"date_formats" json:"date_formats"`

	// InvalidDates lists impossible ISO-shaped values with their origin.
	InvalidDates []InvalidDateSample `yaml:"invalid_dates,omitempty" json:"invalid_dates,omitempty"`

	// Completeness is the per-field, per-file fill-rate view.
	Completeness completeness.Distribution `yaml:"completeness" json:"completeness"`

	// HeaderFiles is the field-variation index: which files each normalized
	// header was observed in, ordered by file identifier.
	HeaderFiles map[string][]string `yaml:"header_files" json:"header_files"`

	// FileFailures names every file that could not be analyzed. Failed
	// files are reported, never silently omitted.
	FileFailures []FileFailure `yaml:"file_failures,omitempty" json:"file_failures,omitempty"`

	// Stats summarizes the run.
	Stats Stats `yaml:"stats" json:"stats"`
}
