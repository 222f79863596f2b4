// Package appointmentdate classifies appointments in time: it parses the
// human readable appointment date ("Monday, 15 Jan 2024"), decides whether an
// appointment already belongs to the past and orders appointments
// most-recent-first.
//
// Every function is total. Malformed input never produces an error, it
// degrades to the epoch date instead. All functions are pure given the "now"
// passed by the caller and are safe for concurrent use.
package appointmentdate

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	LabelCompleted = "Completed"
	LabelUpcoming  = "Upcoming"

	// DisplayLayout renders a date the way appointment records store it.
	DisplayLayout = "Monday, 2 Jan 2006"
)

// Source tells which parsing stage produced a date.
type Source int

const (
	SourceEpoch Source = iota
	SourcePattern
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourcePattern:
		return "pattern"
	case SourceFallback:
		return "fallback"
	default:
		return "epoch"
	}
}

// Dated is anything carrying an appointment date string. ok is false when the
// record has no date at all.
type Dated interface {
	AppointmentDate() (date string, ok bool)
}

var appointmentDatePattern = regexp.MustCompile(`^(\w+),\s*(\d+)\s+(\w+)\s+(\d+)$`)

var monthAbbreviations = map[string]time.Month{
	"Jan": time.January,
	"Feb": time.February,
	"Mar": time.March,
	"Apr": time.April,
	"May": time.May,
	"Jun": time.June,
	"Jul": time.July,
	"Aug": time.August,
	"Sep": time.September,
	"Oct": time.October,
	"Nov": time.November,
	"Dec": time.December,
}

// Epoch is the fallback date for missing or unparseable input.
func Epoch() time.Time {
	return time.Date(1970, time.January, 1, 0, 0, 0, 0, time.Local)
}

// MonthFromAbbreviation maps "Jan".."Dec" to its month. Anything else,
// including numeric months, is rejected.
func MonthFromAbbreviation(abbreviation string) (time.Month, bool) {
	month, ok := monthAbbreviations[abbreviation]
	return month, ok
}

// Parse returns the calendar date of an appointment date string in local time.
func Parse(dateString string) time.Time {
	parsed, _ := ParseResult(dateString)
	return parsed
}

// ParseResult is Parse plus the stage that produced the date.
func ParseResult(dateString string) (time.Time, Source) {
	if dateString == "" {
		return Epoch(), SourceEpoch
	}

	switch parsed, result := parsePattern(dateString); result {
	case patternParsed:
		return parsed, SourcePattern
	case patternInvalid:
		return Epoch(), SourceEpoch
	}

	if parsed, ok := parseFallback(dateString); ok {
		return parsed, SourceFallback
	}

	return Epoch(), SourceEpoch
}

type patternResult int

const (
	patternUnmatched patternResult = iota
	patternInvalid
	patternParsed
)

// parsePattern reports patternInvalid when the string has the structured
// shape and a known month but its day or year cannot form a real date.
// Years must be written with four digits.
func parsePattern(dateString string) (time.Time, patternResult) {
	matches := appointmentDatePattern.FindStringSubmatch(strings.TrimSpace(dateString))
	if matches == nil {
		return time.Time{}, patternUnmatched
	}
	month, ok := MonthFromAbbreviation(matches[3])
	if !ok {
		return time.Time{}, patternUnmatched
	}

	day, err := strconv.Atoi(matches[2])
	if err != nil {
		return time.Time{}, patternInvalid
	}
	if len(matches[4]) != 4 {
		return time.Time{}, patternInvalid
	}
	year, err := strconv.Atoi(matches[4])
	if err != nil {
		return time.Time{}, patternInvalid
	}

	parsed := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	// time.Date normalises 31 Feb into March; such dates do not exist.
	if parsed.Year() != year || parsed.Month() != month || parsed.Day() != day {
		return time.Time{}, patternInvalid
	}
	return parsed, patternParsed
}

// parseFallback accepts a string only when the layout detected by dateparse
// parses the whole string and formats back to it. Partial matches are
// rejected instead of producing a different calendar day.
func parseFallback(dateString string) (parsed time.Time, ok bool) {
	defer func() {
		if recover() != nil {
			parsed, ok = time.Time{}, false
		}
	}()

	dateString = strings.TrimSpace(dateString)
	layout, err := dateparse.ParseFormat(dateString)
	if err != nil || layout == "" {
		return time.Time{}, false
	}

	parsed, err = time.ParseInLocation(layout, dateString, time.Local)
	if err != nil || parsed.Year() < 1 {
		return time.Time{}, false
	}
	if !strings.EqualFold(parsed.Format(layout), dateString) {
		return time.Time{}, false
	}
	return parsed.In(time.Local), true
}

// EndOfDay returns 23:59:59.999 local time on the calendar day of t.
func EndOfDay(t time.Time) time.Time {
	local := t.In(time.Local)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, int(999*time.Millisecond), time.Local)
}

// IsPast reports whether the whole calendar day of the appointment has
// elapsed before now. An empty date is unknown, not expired, and is never
// past; an unparseable one degrades to the epoch and is past.
func IsPast(dateString string, now time.Time) bool {
	if dateString == "" {
		return false
	}
	return EndOfDay(Parse(dateString)).Before(now)
}

// StatusLabel is the user facing classification of an appointment.
func StatusLabel(dateString string, now time.Time) string {
	if IsPast(dateString, now) {
		return LabelCompleted
	}
	return LabelUpcoming
}

// CompareDescending orders later appointments first. Records without a date
// compare equal to everything.
func CompareDescending(a, b Dated) int {
	dateA, okA := a.AppointmentDate()
	dateB, okB := b.AppointmentDate()
	if !okA || !okB || dateA == "" || dateB == "" {
		return 0
	}

	return Parse(dateB).Compare(Parse(dateA))
}

// SortDescending sorts records most-recent-first in place. Records without a
// date keep their positions; dated records are stably sorted into the
// remaining slots, so equal dates keep their relative order.
func SortDescending[T Dated](records []T) {
	sortDated(records, func(a, b T) int { return CompareDescending(a, b) })
}

// SortAscending sorts records soonest-first with the same placement rules as
// SortDescending.
func SortAscending[T Dated](records []T) {
	sortDated(records, func(a, b T) int { return CompareDescending(b, a) })
}

func sortDated[T Dated](records []T, cmp func(a, b T) int) {
	slots := make([]int, 0, len(records))
	dated := make([]T, 0, len(records))
	for i, record := range records {
		if date, ok := record.AppointmentDate(); ok && date != "" {
			slots = append(slots, i)
			dated = append(dated, record)
		}
	}

	slices.SortStableFunc(dated, cmp)

	for i, slot := range slots {
		records[slot] = dated[i]
	}
}
