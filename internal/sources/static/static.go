// Package static serves pre-built tables from memory. It backs tests and the
// registry inspection command, where no filesystem is involved.
package static

import (
	"context"

	"github.com/tabwise/reconcile/pkg/errors"
	"github.com/tabwise/reconcile/pkg/tables"
)

// Source serves a fixed set of tables keyed by file identifier.
type Source struct {
	order  []string
	tables map[string]*tables.Table
}

// New creates a static source. File order follows the argument order.
func New(tbls ...*tables.Table) *Source {
	s := &Source{tables: make(map[string]*tables.Table, len(tbls))}
	for _, t := range tbls {
		if _, ok := s.tables[t.File]; !ok {
			s.order = append(s.order, t.File)
		}
		s.tables[t.File] = t
	}
	return s
}

// Files lists the table identifiers in insertion order.
func (s *Source) Files(_ context.Context) ([]string, error) {
	return append([]string(nil), s.order...), nil
}

// Load returns the table for file, or ErrNotFound.
func (s *Source) Load(_ context.Context, file string) (*tables.Table, error) {
	t, ok := s.tables[file]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return t, nil
}
