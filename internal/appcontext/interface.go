// Package appcontext provides the shared application context interface used
// by all commands. Commands accept this interface rather than the concrete
// App type, allowing for easier testing with mock implementations.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/tabwise/reconcile"
	"github.com/tabwise/reconcile/pkg/fieldmap"
)

// Interface defines the application context that commands need. The App
// struct from cmd/reconcile/app implements it.
type Interface interface {
	// Client returns the reconcile client, creating it lazily if needed.
	Client() (reconcile.Client, error)

	// Registry resolves the canonical field registry in effect.
	Registry() (fieldmap.Registry, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (text, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string
}
