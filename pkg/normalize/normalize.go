// Package normalize canonicalizes raw column names into a comparable token
// form. Normalization is a pure function of the input string: two headers
// from different files compare equal exactly when their normalized forms do.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Header normalizes a raw column name: trims surrounding whitespace, applies
// Unicode canonical decomposition (NFD), collapses internal whitespace runs
// to a single ASCII space, and lowercases the result.
//
// Diacritics are decomposed into combining marks but not stripped, so both
// sides of any comparison must pass through Header. An empty result means
// "no header" and callers skip the column.
//
// Header is idempotent: Header(Header(s)) == Header(s).
func Header(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = norm.NFD.String(s)
	s = strings.Join(strings.Fields(s), " ")
	return strings.ToLower(s)
}
