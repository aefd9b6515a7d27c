// Package reconcile analyzes collections of heterogeneous tabular extracts:
// it normalizes header variations, maps them onto a canonical field registry,
// classifies date formats, and measures per-field completeness across files.
package reconcile

import (
	"context"

	"github.com/tabwise/reconcile/pkg/analyzer"
	"github.com/tabwise/reconcile/pkg/logging"
)

// Source yields the files of one collection of tabular extracts.
type Source = analyzer.Source

// Client runs reconciliation analyses.
type Client interface {
	// Analyze processes every file of the source and returns the combined
	// report. Per-file failures are recorded in the report; Analyze returns
	// an error only when the source cannot be enumerated, the collection is
	// empty, or the context is canceled.
	Analyze(ctx context.Context, src Source) (*analyzer.Report, error)
}

// client is the internal implementation of the Client interface.
type client struct {
	config *config
}

// New creates a new Client with the given options.
func New(opts ...Option) (Client, error) {
	c := &client{config: defaultConfig()}

	for _, opt := range opts {
		if err := opt(c.config); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Analyze processes the source's files and assembles the combined report.
func (c *client) Analyze(ctx context.Context, src Source) (*analyzer.Report, error) {
	ctx = logging.WithLogger(ctx, c.config.logger)

	a := analyzer.New(analyzer.Config{
		Registry:     c.config.registry,
		Workers:      c.config.workers,
		SampleSize:   c.config.sampleSize,
		DateKeywords: c.config.dateKeywords,
	})
	return a.Run(ctx, src)
}
