// Package completeness computes per-field, per-file fill rates and merges
// them into a cross-file quality view. Records are derived facts: created
// once per (file, field) pair and never mutated.
package completeness

import (
	"sort"

	"github.com/tabwise/reconcile/pkg/normalize"
	"github.com/tabwise/reconcile/pkg/tables"
)

// Record is the fill rate of one normalized field in one file.
type Record struct {
	File    string  `yaml:"file" json:"file"`
	Field   string  `yaml:"field" json:"field"`
	Filled  int     `yaml:"filled" json:"filled"`
	Total   int     `yaml:"total" json:"total"`
	Percent float64 `yaml:"percent" json:"percent"`
}

// NoData reports whether the file had no non-blank rows to measure against.
// It is a defined result, not an error.
func (r Record) NoData() bool { return r.Total == 0 }

// Compute derives one Record per normalized non-empty header of the table.
// The denominator is the file's count of non-blank rows; rows that are blank
// across every column do not count against any field. When the same
// normalized header appears in several columns, the last column wins.
func Compute(t *tables.Table) []Record {
	total := t.NonBlankRows()

	filled := make(map[string]int, len(t.Headers))
	order := make([]string, 0, len(t.Headers))

	for col, raw := range t.Headers {
		field := normalize.Header(raw)
		if field == "" {
			continue
		}
		if _, seen := filled[field]; !seen {
			order = append(order, field)
		}

		n := 0
		for row := 0; row < len(t.Rows); row++ {
			if t.RowBlank(row) {
				continue
			}
			if t.Cell(row, col) != "" {
				n++
			}
		}
		filled[field] = n
	}

	records := make([]Record, 0, len(order))
	for _, field := range order {
		r := Record{
			File:   t.File,
			Field:  field,
			Filled: filled[field],
			Total:  total,
		}
		if total > 0 {
			r.Percent = float64(r.Filled) / float64(total) * 100
		}
		records = append(records, r)
	}
	return records
}

// FieldCompleteness is the per-file completeness of one field across the
// whole file set, ordered by file identifier.
type FieldCompleteness struct {
	Field string   `yaml:"field" json:"field"`
	Files []Record `yaml:"files" json:"files"`
}

// Distribution is the cross-file completeness view, one entry per field in
// sorted field order. No averaging is applied; Mean and Worst are offered to
// presentation callers only.
type Distribution []FieldCompleteness

// Merge groups records by field and orders each group by file identifier.
func Merge(records []Record) Distribution {
	byField := make(map[string][]Record)
	for _, r := range records {
		byField[r.Field] = append(byField[r.Field], r)
	}

	fields := make([]string, 0, len(byField))
	for f := range byField {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	dist := make(Distribution, 0, len(fields))
	for _, f := range fields {
		group := byField[f]
		sort.SliceStable(group, func(i, j int) bool { return group[i].File < group[j].File })
		dist = append(dist, FieldCompleteness{Field: f, Files: group})
	}
	return dist
}

// Field returns the per-file records for one field.
func (d Distribution) Field(name string) ([]Record, bool) {
	for _, fc := range d {
		if fc.Field == name {
			return fc.Files, true
		}
	}
	return nil, false
}

// Mean returns the mean completeness percentage for a field across the files
// that had data. Files with no measurable rows are excluded.
func (d Distribution) Mean(field string) float64 {
	records, ok := d.Field(field)
	if !ok {
		return 0
	}
	sum, n := 0.0, 0
	for _, r := range records {
		if r.NoData() {
			continue
		}
		sum += r.Percent
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Worst returns the record with the lowest completeness percentage for a
// field, preferring earlier files on ties.
func (d Distribution) Worst(field string) (Record, bool) {
	records, ok := d.Field(field)
	if !ok || len(records) == 0 {
		return Record{}, false
	}
	worst := records[0]
	for _, r := range records[1:] {
		if r.Percent < worst.Percent {
			worst = r
		}
	}
	return worst, true
}
