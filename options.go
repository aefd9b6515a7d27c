package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/tabwise/reconcile/pkg/analyzer"
	"github.com/tabwise/reconcile/pkg/errors"
	"github.com/tabwise/reconcile/pkg/fieldmap"
	"github.com/tabwise/reconcile/pkg/logging"
)

// Option is a function that configures a Client instance.
type Option func(*config) error

// config holds the resolved client settings.
type config struct {
	registry     fieldmap.Registry
	workers      int
	sampleSize   int
	dateKeywords []string
	logger       *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		registry:     fieldmap.Default(),
		workers:      analyzer.DefaultWorkers,
		sampleSize:   analyzer.DefaultSampleSize,
		dateKeywords: analyzer.DefaultDateKeywords,
		logger:       logging.Default(),
	}
}

// WithRegistry configures the canonical field registry. The registry is
// validated before use.
func WithRegistry(r fieldmap.Registry) Option {
	return func(c *config) error {
		if err := r.Validate(); err != nil {
			return err
		}
		c.registry = r
		return nil
	}
}

// WithWorkers bounds the number of files analyzed concurrently.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return &errors.ValidationError{Field: "workers", Message: "must be positive"}
		}
		c.workers = n
		return nil
	}
}

// WithSampleSize bounds how many values of a date-bearing column are
// classified per file.
func WithSampleSize(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return &errors.ValidationError{Field: "sample_size", Message: "must be positive"}
		}
		c.sampleSize = n
		return nil
	}
}

// WithDateKeywords replaces the substrings that flag a header as
// date-bearing.
func WithDateKeywords(keywords ...string) Option {
	return func(c *config) error {
		if len(keywords) == 0 {
			return &errors.ValidationError{Field: "date_keywords", Message: "at least one keyword required"}
		}
		c.dateKeywords = keywords
		return nil
	}
}

// WithLogger configures the logger used during analysis.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return &errors.ValidationError{Field: "logger", Message: "must not be nil"}
		}
		c.logger = logger
		return nil
	}
}
