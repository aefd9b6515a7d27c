package analyzer

import (
	"sort"

	"github.com/tabwise/reconcile/pkg/completeness"
	"github.com/tabwise/reconcile/pkg/dateformat"
)

// fileResult is the partial result of analyzing one file. It is produced in
// the fan-out phase with no shared mutation and folded into the accumulator
// by the single-threaded fan-in phase.
type fileResult struct {
	file         string
	headers      []string // normalized, deduplicated, column order
	histogram    map[dateformat.Tag]int
	invalid      []InvalidDateSample
	completeness []completeness.Record
	failure      *FileFailure
	rows         int
}

// accumulator is the explicit global state of one run, threaded through the
// fan-in fold. Nothing writes to it concurrently.
type accumulator struct {
	headerFiles map[string][]string
	histogram   map[dateformat.Tag]int
	invalid     []InvalidDateSample
	records     []completeness.Record
	failures    []FileFailure
	analyzed    int
	rows        int
}

func newAccumulator() *accumulator {
	return &accumulator{
		headerFiles: make(map[string][]string),
		histogram:   make(map[dateformat.Tag]int),
	}
}

// fold merges one file's partial result. A failed file contributes nothing
// but its failure note.
func (acc *accumulator) fold(r *fileResult) {
	if r.failure != nil {
		acc.failures = append(acc.failures, *r.failure)
		return
	}

	acc.analyzed++
	acc.rows += r.rows

	for _, h := range r.headers {
		acc.headerFiles[h] = append(acc.headerFiles[h], r.file)
	}
	for tag, n := range r.histogram {
		acc.histogram[tag] += n
	}
	acc.invalid = append(acc.invalid, r.invalid...)
	acc.records = append(acc.records, r.completeness...)
}

// headers returns the accumulated normalized-header set in sorted order.
func (acc *accumulator) headers() []string {
	out := make([]string, 0, len(acc.headerFiles))
	for h := range acc.headerFiles {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}
