// Package ddl emits SQL schema recommendations from an analysis report. The
// output is advisory text for a data engineer, not something executed against
// a live database.
package ddl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tabwise/reconcile/pkg/analyzer"
	"github.com/tabwise/reconcile/pkg/fieldmap"
)

// indexCoverage is the share of analyzed files a field must appear in before
// an index is recommended for it.
const indexCoverage = 0.5

// integerFields are canonical fields whose values are whole numbers.
var integerFields = map[string]bool{
	"file_year":     true,
	"serial_number": true,
}

// Generate renders a CREATE TABLE recommendation for the canonical registry,
// informed by the report. Date fields stay TEXT because source values arrive
// in too many shapes to parse at load time.
func Generate(table string, report *analyzer.Report, registry fieldmap.Registry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "-- Schema recommendation for run %s\n", report.RunID)
	fmt.Fprintf(&b, "-- Derived from %d analyzed files (%d failed)\n\n",
		report.Stats.FilesAnalyzed, report.Stats.FilesFailed)

	fmt.Fprintf(&b, "CREATE TABLE %s (\n", table)
	b.WriteString("    id INTEGER PRIMARY KEY,\n")

	for _, f := range registry.Fields {
		coverage := fileCoverage(report, f.Name)
		fmt.Fprintf(&b, "    %s %s,%s\n", f.Name, columnType(f.Name), coverageComment(report, coverage))
	}

	b.WriteString("    source_file TEXT NOT NULL,\n")
	b.WriteString("    source_row INTEGER,\n")
	b.WriteString("    import_batch_id TEXT NOT NULL,\n")
	b.WriteString("    imported_at TEXT NOT NULL\n")
	b.WriteString(");\n")

	indexed := indexCandidates(report, registry)
	if len(indexed) > 0 {
		b.WriteString("\n")
		for _, name := range indexed {
			fmt.Fprintf(&b, "CREATE INDEX idx_%s_%s ON %s (%s);\n", table, name, table, name)
		}
	}

	return b.String()
}

func columnType(field string) string {
	if integerFields[field] {
		return "INTEGER"
	}
	return "TEXT"
}

// fileCoverage counts how many analyzed files mapped at least one header onto
// the field.
func fileCoverage(report *analyzer.Report, field string) int {
	seen := make(map[string]bool)
	for _, header := range report.Mapping.Headers(field) {
		for _, file := range report.HeaderFiles[header] {
			seen[file] = true
		}
	}
	return len(seen)
}

func coverageComment(report *analyzer.Report, coverage int) string {
	if report.Stats.FilesAnalyzed == 0 || coverage == 0 {
		return " -- not observed in any file"
	}
	return fmt.Sprintf(" -- present in %d of %d files", coverage, report.Stats.FilesAnalyzed)
}

// indexCandidates returns registry fields observed in at least half of the
// analyzed files, sorted by name.
func indexCandidates(report *analyzer.Report, registry fieldmap.Registry) []string {
	if report.Stats.FilesAnalyzed == 0 {
		return nil
	}
	var out []string
	for _, f := range registry.Fields {
		share := float64(fileCoverage(report, f.Name)) / float64(report.Stats.FilesAnalyzed)
		if share >= indexCoverage {
			out = append(out, f.Name)
		}
	}
	sort.Strings(out)
	return out
}
