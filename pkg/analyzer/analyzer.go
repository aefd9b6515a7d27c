// Package analyzer drives reconciliation across a collection of tabular
// extracts. Per-file analysis is purely local (header normalization, date
// sampling, completeness), so files fan out to a bounded worker pool; a
// single-threaded fan-in folds partial results in file-identifier order, and
// the field mapper runs once over the merged header set. The final report is
// identical regardless of worker count.
package analyzer

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tabwise/reconcile/pkg/completeness"
	"github.com/tabwise/reconcile/pkg/dateformat"
	"github.com/tabwise/reconcile/pkg/errors"
	"github.com/tabwise/reconcile/pkg/fieldmap"
	"github.com/tabwise/reconcile/pkg/logging"
	"github.com/tabwise/reconcile/pkg/normalize"
	"github.com/tabwise/reconcile/pkg/tables"
)

// Defaults for analyzer configuration.
const (
	DefaultWorkers    = 4
	DefaultSampleSize = 10
)

// DefaultDateKeywords flag a normalized header as date-bearing when any of
// them appears as a substring.
var DefaultDateKeywords = []string{"date", "reg_date", "registration_date", "exemption_date"}

// Config holds analyzer settings. Zero values take the package defaults.
type Config struct {
	// Registry is the canonical field registry for the run.
	Registry fieldmap.Registry

	// Workers bounds the fan-out pool. 1 means sequential.
	Workers int

	// SampleSize bounds how many values of a date-bearing column are
	// classified per file.
	SampleSize int

	// DateKeywords override DefaultDateKeywords.
	DateKeywords []string
}

// Analyzer runs reconciliation over a source of tables.
type Analyzer struct {
	cfg Config
}

// New creates an Analyzer, filling unset config fields with defaults.
func New(cfg Config) *Analyzer {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = DefaultSampleSize
	}
	if len(cfg.DateKeywords) == 0 {
		cfg.DateKeywords = DefaultDateKeywords
	}
	if len(cfg.Registry.Fields) == 0 {
		cfg.Registry = fieldmap.Default()
	}
	return &Analyzer{cfg: cfg}
}

// Run analyzes every file of the source and assembles the combined report.
// Per-file problems never escape: unreadable files are recorded in the
// report's FileFailures and malformed cell values become classification data.
// Run fails only when the source cannot be enumerated, the collection is
// empty, or the context is canceled.
func (a *Analyzer) Run(ctx context.Context, src Source) (*Report, error) {
	ctx = logging.WithOperation(ctx, "analyze")
	logger := logging.FromContext(ctx)
	start := time.Now()

	files, err := src.Files(ctx)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.ErrNoFiles
	}

	logger.Info().Int("files", len(files)).Int("workers", a.cfg.Workers).Msg("Starting analysis")

	results := a.fanOut(ctx, src, files)
	if err := ctx.Err(); err != nil {
		logger.Warn().Int("completed", len(results)).Msg("Analysis aborted, discarding partial results")
		return nil, errors.ErrCanceled
	}

	// Fan-in: fold in file-identifier order so the report does not depend
	// on completion order.
	sort.Slice(results, func(i, j int) bool { return results[i].file < results[j].file })
	acc := newAccumulator()
	for _, r := range results {
		acc.fold(r)
	}

	report := a.report(acc)

	logger.Info().
		Int("analyzed", report.Stats.FilesAnalyzed).
		Int("failed", report.Stats.FilesFailed).
		Int("unique_headers", report.Stats.UniqueHeaders).
		Dur("elapsed", time.Since(start)).
		Msg("Analysis complete")

	return report, nil
}

// fanOut analyzes files concurrently with a bounded worker pool. Aborted
// files produce no partial result at all.
func (a *Analyzer) fanOut(ctx context.Context, src Source, files []string) []*fileResult {
	results := make(chan *fileResult, len(files))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, a.cfg.Workers)

	for _, file := range files {
		wg.Add(1)
		go func(file string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if ctx.Err() != nil {
				return
			}
			results <- a.analyzeFile(ctx, src, file)
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]*fileResult, 0, len(files))
	for r := range results {
		collected = append(collected, r)
	}
	return collected
}

// analyzeFile computes one file's partial result. Load errors fail the file,
// not the run; every cell value classifies into some tag.
func (a *Analyzer) analyzeFile(ctx context.Context, src Source, file string) *fileResult {
	ctx = logging.WithFile(ctx, file)
	logger := logging.FromContext(ctx)

	tbl, err := src.Load(ctx, file)
	if err != nil {
		logger.Warn().Err(err).Msg("Skipping unreadable file")
		return &fileResult{
			file:    file,
			failure: &FileFailure{File: file, Reason: err.Error()},
		}
	}

	r := &fileResult{
		file:      file,
		histogram: make(map[dateformat.Tag]int),
		rows:      tbl.RowCount(),
	}

	seen := make(map[string]bool, len(tbl.Headers))
	for col, raw := range tbl.Headers {
		field := normalize.Header(raw)
		if field == "" {
			continue
		}
		if !seen[field] {
			seen[field] = true
			r.headers = append(r.headers, field)
		}

		if !a.dateColumn(field) {
			continue
		}
		for _, value := range sampleValues(tbl, col, a.cfg.SampleSize) {
			tag := dateformat.Classify(value)
			r.histogram[tag]++
			if tag == dateformat.ISODateInvalidRange || tag == dateformat.ISODateMalformed {
				r.invalid = append(r.invalid, InvalidDateSample{
					File:   file,
					Field:  field,
					Value:  value,
					Reason: dateformat.Reason(tag),
				})
			}
		}
	}

	r.completeness = completeness.Compute(tbl)

	logger.Debug().
		Int("rows", r.rows).
		Int("headers", len(r.headers)).
		Msg("Analyzed file")

	return r
}

// dateColumn reports whether a normalized header suggests a date-bearing
// column.
func (a *Analyzer) dateColumn(field string) bool {
	for _, kw := range a.cfg.DateKeywords {
		if strings.Contains(field, kw) {
			return true
		}
	}
	return false
}

// sampleValues returns up to limit non-empty values from one column.
func sampleValues(t *tables.Table, col, limit int) []string {
	values := make([]string, 0, limit)
	for row := 0; row < len(t.Rows) && len(values) < limit; row++ {
		if v := t.Cell(row, col); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// report assembles the final artifact from the folded accumulator.
func (a *Analyzer) report(acc *accumulator) *Report {
	headers := acc.headers()
	return &Report{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Mapping:      fieldmap.Build(headers, a.cfg.Registry),
		DateFormats:  acc.histogram,
		InvalidDates: acc.invalid,
		Completeness: completeness.Merge(acc.records),
		HeaderFiles:  acc.headerFiles,
		FileFailures: acc.failures,
		Stats: Stats{
			FilesAnalyzed: acc.analyzed,
			FilesFailed:   len(acc.failures),
			TotalRows:     acc.rows,
			UniqueHeaders: len(headers),
		},
	}
}
