// Package dateformat classifies raw date-like strings into format tags.
// It labels values without ever resolving them into calendar dates; downstream
// consumers keep the raw text and decide what to do with each tag.
//
// Classification is total: every input, including empty and garbage strings,
// maps to exactly one Tag. Patterns are evaluated in a fixed priority order
// because some shapes are prefixes of others (an ISO date is also the start
// of an ISO timestamp, a truncated date is the start of a full one).
package dateformat

import (
	"regexp"
	"strconv"
	"strings"
)

// Tag labels the detected shape of one date-like value.
type Tag string

// Known format tags, in classification priority order.
const (
	// SlashNumeric is D/M/Y with one- or two-digit day and month and a
	// two- to four-digit year, e.g. "4/4/2024" or "06/11/00".
	SlashNumeric Tag = "slash_numeric"

	// DashNumeric is the same shape with "-" separators.
	DashNumeric Tag = "dash_numeric"

	// DotNumeric is the same shape with "." separators.
	DotNumeric Tag = "dot_numeric"

	// ISODate is a YYYY-MM-DD prefix; a trailing time-of-day is ignored.
	ISODate Tag = "iso_date"

	// ISODateInvalidRange is an ISO-shaped value whose month or day is
	// outside the possible calendar range, e.g. "1954-20-20".
	ISODateInvalidRange Tag = "iso_date_invalid_range"

	// ISODateMalformed is an ISO-shaped value whose date components could
	// not be read as integers.
	ISODateMalformed Tag = "iso_date_malformed"

	// TextualLong is weekday-month-day-year free text, e.g. "Mon Nov 06 2000".
	TextualLong Tag = "textual_long"

	// DayMonthTextYear is "06 Nov 2000".
	DayMonthTextYear Tag = "day_month_text_year"

	// MonthTextDayYear is "Nov 06, 2000"; the comma is optional.
	MonthTextDayYear Tag = "month_text_day_year"

	// Incomplete is a truncated value ending in its separator, e.g. "25/6/"
	// or a bare "/".
	Incomplete Tag = "incomplete"

	// MalformedMultiPart has more than three numeric groups, e.g. "4/4/24/23".
	MalformedMultiPart Tag = "malformed_multi_part"

	// Unknown covers everything else, including empty strings.
	Unknown Tag = "unknown"
)

// String returns the tag's wire label.
func (t Tag) String() string { return string(t) }

// Invalid reports whether the tag marks a semantically or structurally
// impossible date. These are the operationally actionable classifications.
func (t Tag) Invalid() bool {
	switch t {
	case ISODateInvalidRange, ISODateMalformed, Incomplete, MalformedMultiPart:
		return true
	}
	return false
}

// Tags lists every tag the classifier can produce, in priority order.
func Tags() []Tag {
	return []Tag{
		SlashNumeric,
		DashNumeric,
		DotNumeric,
		ISODate,
		ISODateInvalidRange,
		ISODateMalformed,
		TextualLong,
		DayMonthTextYear,
		MonthTextDayYear,
		Incomplete,
		MalformedMultiPart,
		Unknown,
	}
}

var (
	slashNumericRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`)
	dashNumericRe  = regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{2,4}$`)
	dotNumericRe   = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{2,4}$`)
	isoDateRe      = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	textualLongRe  = regexp.MustCompile(`^[A-Za-z]{3}\s+[A-Za-z]{3}\s+\d{1,2}\s+\d{4}`)
	dayMonthTextRe = regexp.MustCompile(`^\d{1,2}\s+[A-Za-z]{3}\s+\d{4}`)
	monthTextDayRe = regexp.MustCompile(`^[A-Za-z]{3}\s+\d{1,2},?\s+\d{4}`)
	incompleteRe   = regexp.MustCompile(`^\d{1,2}/\d{1,2}/$`)
	multiPartRe    = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}(?:[/-]\d{1,4}){2,}$`)
)

// Classify labels one raw value with a format tag. It never fails; values
// that match no pattern, including the empty string, classify as Unknown.
func Classify(raw string) Tag {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Unknown
	}

	switch {
	case slashNumericRe.MatchString(value):
		return SlashNumeric
	case dashNumericRe.MatchString(value):
		return DashNumeric
	case dotNumericRe.MatchString(value):
		return DotNumeric
	}

	if m := isoDateRe.FindStringSubmatch(value); m != nil {
		return validateISO(m)
	}

	switch {
	case textualLongRe.MatchString(value):
		return TextualLong
	case dayMonthTextRe.MatchString(value):
		return DayMonthTextYear
	case monthTextDayRe.MatchString(value):
		return MonthTextDayYear
	case incompleteRe.MatchString(value), value == "/":
		return Incomplete
	case multiPartRe.MatchString(value):
		return MalformedMultiPart
	}

	return Unknown
}

// validateISO downgrades an ISO-shaped match when the extracted month or day
// is outside the possible calendar range. A regex match alone accepts values
// like "1954-20-20", which are date-shaped but not dates.
func validateISO(match []string) Tag {
	_, yErr := strconv.Atoi(match[1])
	month, mErr := strconv.Atoi(match[2])
	day, dErr := strconv.Atoi(match[3])
	if yErr != nil || mErr != nil || dErr != nil {
		return ISODateMalformed
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ISODateInvalidRange
	}
	return ISODate
}

// Reason returns a short human-readable explanation for an invalid tag, or
// "" for tags that are not invalid.
func Reason(t Tag) string {
	switch t {
	case ISODateInvalidRange:
		return "month or day outside calendar range"
	case ISODateMalformed:
		return "date components are not numeric"
	case Incomplete:
		return "value truncated at separator"
	case MalformedMultiPart:
		return "more than three numeric date groups"
	}
	return ""
}
