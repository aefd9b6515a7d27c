package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/tabwise/reconcile"
	"github.com/tabwise/reconcile/pkg/fieldmap"
	"github.com/tabwise/reconcile/pkg/logging"
)

// Mock is a test implementation of Interface. Zero values fall back to
// sensible defaults.
type Mock struct {
	MockClient   reconcile.Client
	MockRegistry fieldmap.Registry
	MockFormat   string
	MockVersion  string

	ClientErr   error
	RegistryErr error
}

var _ Interface = (*Mock)(nil)

// Client returns the mock client or the configured error.
func (m *Mock) Client() (reconcile.Client, error) {
	if m.ClientErr != nil {
		return nil, m.ClientErr
	}
	if m.MockClient != nil {
		return m.MockClient, nil
	}
	return reconcile.New()
}

// Registry returns the mock registry or the configured error.
func (m *Mock) Registry() (fieldmap.Registry, error) {
	if m.RegistryErr != nil {
		return fieldmap.Registry{}, m.RegistryErr
	}
	if len(m.MockRegistry.Fields) > 0 {
		return m.MockRegistry, nil
	}
	return fieldmap.Default(), nil
}

// Logger returns a no-op logger.
func (m *Mock) Logger() *zerolog.Logger { return &logging.Nop }

// OutputFormat returns the configured format.
func (m *Mock) OutputFormat() string { return m.MockFormat }

// Version returns the mock version.
func (m *Mock) Version() string {
	if m.MockVersion == "" {
		return "test"
	}
	return m.MockVersion
}

// Commit returns a placeholder commit hash.
func (m *Mock) Commit() string { return "none" }

// Date returns a placeholder build date.
func (m *Mock) Date() string { return "unknown" }
