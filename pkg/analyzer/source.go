package analyzer

import (
	"context"

	"github.com/tabwise/reconcile/pkg/tables"
)

// Source yields the files of one collection of tabular extracts. The analyzer
// is agnostic to where tables come from; delimiter detection and encoding
// fallback are the source's concern.
type Source interface {
	// Files lists the identifiers of the files in the collection. An error
	// here is the one caller-facing hard failure of a run.
	Files(ctx context.Context) ([]string, error)

	// Load parses one file into a raw table. A load error fails that file
	// only; the analyzer records it and continues.
	Load(ctx context.Context, file string) (*tables.Table, error)
}
