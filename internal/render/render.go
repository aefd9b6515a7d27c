// Package render turns an analysis report into terminal text, JSON, or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/tabwise/reconcile/pkg/analyzer"
	"github.com/tabwise/reconcile/pkg/dateformat"
)

// Format names an output encoding.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name, defaulting to text for "".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// Write encodes the report in the given format.
func Write(w io.Writer, report *analyzer.Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(report)
	default:
		return writeText(w, report)
	}
}

func writeText(w io.Writer, r *analyzer.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Analysis %s (%s)\n", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Files: %d analyzed, %d failed, %d rows, %d unique headers\n\n",
		r.Stats.FilesAnalyzed, r.Stats.FilesFailed, r.Stats.TotalRows, r.Stats.UniqueHeaders)

	writeMapping(&b, r)
	writeDateFormats(&b, r)
	writeCompleteness(&b, r)
	writeFailures(&b, r)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMapping(b *strings.Builder, r *analyzer.Report) {
	b.WriteString("Field mapping\n")
	for _, e := range r.Mapping.Entries {
		fmt.Fprintf(b, "  %-25s %s\n", e.Field, strings.Join(e.Headers, ", "))
	}
	if len(r.Mapping.Ambiguous) > 0 {
		b.WriteString("  Ambiguous headers:\n")
		for _, a := range r.Mapping.Ambiguous {
			fmt.Fprintf(b, "    %-23s -> %s\n", a.Header, strings.Join(a.Fields, ", "))
		}
	}
	if len(r.Mapping.Unmapped) > 0 {
		fmt.Fprintf(b, "  Unmapped: %s\n", strings.Join(r.Mapping.Unmapped, ", "))
	}
	b.WriteString("\n")
}

func writeDateFormats(b *strings.Builder, r *analyzer.Report) {
	if len(r.DateFormats) == 0 {
		return
	}
	b.WriteString("Date formats\n")
	for _, tag := range dateformat.Tags() {
		if n := r.DateFormats[tag]; n > 0 {
			fmt.Fprintf(b, "  %-25s %d\n", tag, n)
		}
	}
	if len(r.InvalidDates) > 0 {
		fmt.Fprintf(b, "  Invalid samples: %d (e.g. %q in %s)\n",
			len(r.InvalidDates), r.InvalidDates[0].Value, r.InvalidDates[0].File)
	}
	b.WriteString("\n")
}

func writeCompleteness(b *strings.Builder, r *analyzer.Report) {
	if len(r.Completeness) == 0 {
		return
	}
	b.WriteString("Completeness (mean, worst file)\n")
	for _, fc := range r.Completeness {
		mean := r.Completeness.Mean(fc.Field)
		line := fmt.Sprintf("  %-25s %6.1f%%", fc.Field, mean)
		if worst, ok := r.Completeness.Worst(fc.Field); ok {
			line += fmt.Sprintf("  worst %.1f%% (%s)", worst.Percent, worst.File)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func writeFailures(b *strings.Builder, r *analyzer.Report) {
	if len(r.FileFailures) == 0 {
		return
	}
	b.WriteString("Failed files\n")
	for _, f := range r.FileFailures {
		fmt.Fprintf(b, "  %s: %s\n", f.File, f.Reason)
	}
}
