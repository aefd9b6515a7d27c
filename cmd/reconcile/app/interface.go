package app

import (
	"github.com/tabwise/reconcile/internal/appcontext"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}
