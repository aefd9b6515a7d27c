// Package app wires configuration, logging, and the reconcile client for the
// CLI. Commands reach their dependencies through the App rather than package
// globals.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/tabwise/reconcile"
	"github.com/tabwise/reconcile/pkg/errors"
	"github.com/tabwise/reconcile/pkg/fieldmap"
)

// App holds the CLI's dependencies.
type App struct {
	version string
	commit  string
	date    string

	config *Config
	logger *zerolog.Logger

	// Client is lazy-initialized so flag parsing can adjust config first.
	mu     sync.Mutex
	client reconcile.Client
}

// New creates an App with configuration loaded from the environment.
func New(version, commit, date string, opts ...Option) (*App, error) {
	a := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapConfig("load", err)
	}
	a.config = config

	logger := NewLogger(config)
	a.logger = &logger

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Version returns the version string.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Registry resolves the canonical field registry: the configured file if set,
// otherwise the built-in default.
func (a *App) Registry() (fieldmap.Registry, error) {
	if a.config.RegistryFile == "" {
		return fieldmap.Default(), nil
	}
	return fieldmap.LoadFile(a.config.RegistryFile)
}

// Client returns the reconcile client, creating it on first use.
func (a *App) Client() (reconcile.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	registry, err := a.Registry()
	if err != nil {
		return nil, err
	}

	client, err := reconcile.New(
		reconcile.WithRegistry(registry),
		reconcile.WithWorkers(a.config.Workers),
		reconcile.WithSampleSize(a.config.SampleSize),
		reconcile.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}

	a.client = client
	return client, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client (useful for testing).
func WithClient(client reconcile.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
