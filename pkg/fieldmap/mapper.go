package fieldmap

import (
	"sort"
	"strings"
)

// SimilarityThreshold is the minimum token-overlap similarity for a fuzzy
// alias match.
const SimilarityThreshold = 0.7

// stopWords are removed from both sides before token-overlap similarity.
var stopWords = map[string]bool{
	"of": true, "the": true, "and": true, "or": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "with": true, "by": true,
}

// Entry associates one canonical field with the normalized headers judged
// equivalent to it, in match order.
type Entry struct {
	Field   string   `yaml:"field" json:"field"`
	Headers []string `yaml:"headers" json:"headers"`
}

// HeaderFields records a header that matched more than one canonical field.
// The ambiguity is preserved, not resolved; every association stays in the
// mapping and the caller decides what to do with it.
type HeaderFields struct {
	Header string   `yaml:"header" json:"header"`
	Fields []string `yaml:"fields" json:"fields"`
}

// Mapping is the result of matching observed headers against a registry.
// Entries follow registry order; fields are independent targets, so one
// header may appear under several entries.
type Mapping struct {
	Entries   []Entry        `yaml:"entries" json:"entries"`
	Unmapped  []string       `yaml:"unmapped" json:"unmapped"`
	Ambiguous []HeaderFields `yaml:"ambiguous,omitempty" json:"ambiguous,omitempty"`
}

// Headers returns the matched headers for a canonical field.
func (m Mapping) Headers(field string) []string {
	for _, e := range m.Entries {
		if e.Field == field {
			return e.Headers
		}
	}
	return nil
}

// Build matches the set of observed normalized headers against the registry.
//
// Headers are considered in sorted order so results do not depend on how the
// set was accumulated. Per canonical field, in registry order: an exact pass
// adds every header equal to a normalized alias, then a fuzzy pass tests the
// remaining headers against each alias in turn (substring containment either
// direction, or token overlap at or above SimilarityThreshold) and stops at
// the first satisfying alias.
func Build(headers []string, registry Registry) Mapping {
	observed := dedupeSorted(headers)

	matchedFields := make(map[string][]string, len(observed))
	mapping := Mapping{}

	for _, field := range registry.Fields {
		aliases := field.normalizedAliases()
		entry := Entry{Field: field.Name}
		taken := make(map[string]bool, len(observed))

		// Exact pass.
		exact := make(map[string]bool, len(aliases))
		for _, a := range aliases {
			exact[a] = true
		}
		for _, h := range observed {
			if exact[h] {
				entry.Headers = append(entry.Headers, h)
				taken[h] = true
			}
		}

		// Fuzzy pass over headers this field has not claimed yet.
		for _, h := range observed {
			if taken[h] {
				continue
			}
			for _, a := range aliases {
				if fuzzyMatch(h, a) {
					entry.Headers = append(entry.Headers, h)
					taken[h] = true
					break
				}
			}
		}

		for _, h := range entry.Headers {
			matchedFields[h] = append(matchedFields[h], field.Name)
		}
		mapping.Entries = append(mapping.Entries, entry)
	}

	for _, h := range observed {
		switch len(matchedFields[h]) {
		case 0:
			mapping.Unmapped = append(mapping.Unmapped, h)
		case 1:
		default:
			mapping.Ambiguous = append(mapping.Ambiguous, HeaderFields{
				Header: h,
				Fields: matchedFields[h],
			})
		}
	}

	return mapping
}

// fuzzyMatch reports whether a header satisfies an alias: substring
// containment in either direction, or sufficient token overlap. Both sides
// are compared in folded token form so punctuation variants of the same
// name ("pt_cause_no_(station)" vs "pt cause no") still match.
func fuzzyMatch(header, alias string) bool {
	h := foldTokens(header)
	a := foldTokens(alias)
	if h == "" || a == "" {
		return false
	}
	if strings.Contains(h, a) || strings.Contains(a, h) {
		return true
	}
	return Similarity(h, a) >= SimilarityThreshold
}

// foldTokens maps every non-alphanumeric rune to a space and collapses the
// result, reducing underscore and bracket spellings to plain words.
func foldTokens(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' {
			return r
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

// Similarity computes token-overlap similarity between two normalized
// strings: both are split on whitespace into word sets, stop words removed,
// and |intersection| / |union| taken over what remains. If either side is
// empty after stop-word removal the similarity is 0.
func Similarity(a, b string) float64 {
	wordsA := contentWords(a)
	wordsB := contentWords(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if wordsB[w] {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

// contentWords splits a string into its word set minus stop words.
func contentWords(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		if !stopWords[w] {
			words[w] = true
		}
	}
	return words
}

// dedupeSorted returns the unique non-empty values in sorted order.
func dedupeSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
