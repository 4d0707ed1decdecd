// Package dates converts between instants and canonical YYYY-MM-DD calendar
// dates. All conversions are in UTC. Nothing here reads the wall clock: the
// reference time is always passed in.
package dates

import (
	"fmt"
	"math"
	"time"
)

const (
	Layout = "2006-01-02"
	Day    = 24 * time.Hour

	// ArcLength is the number of numbered days in a winter arc.
	ArcLength = 90
)

// Relation classifies a date against a reference day.
type Relation int

const (
	Past Relation = iota - 1
	Today
	Future
)

func (r Relation) String() string {
	switch r {
	case Past:
		return "past"
	case Today:
		return "today"
	default:
		return "future"
	}
}

// Format truncates t to its UTC calendar date.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Parse parses a canonical date into UTC midnight.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Valid reports whether s is a canonical date.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) time.Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// DaysBetween returns ceil((end - start) / 1 day). The result is negative
// when end precedes start.
func DaysBetween(start, end string) (int, error) {
	s, err := Parse(start)
	if err != nil {
		return 0, err
	}
	e, err := Parse(end)
	if err != nil {
		return 0, err
	}
	return CeilDays(e.Sub(s)), nil
}

// CeilDays rounds a duration up to whole days.
func CeilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}

// DaysUntil returns ceil((t - now) / 1 day) on instants.
func DaysUntil(now, t time.Time) int {
	return CeilDays(t.Sub(now))
}

// Compare classifies date relative to the calendar day of now. Canonical dates
// order lexically, so no parsing is needed.
func Compare(date string, now time.Time) Relation {
	today := Format(now)
	switch {
	case date < today:
		return Past
	case date > today:
		return Future
	default:
		return Today
	}
}

func IsToday(date string, now time.Time) bool {
	return Compare(date, now) == Today
}

func IsPast(date string, now time.Time) bool {
	return Compare(date, now) == Past
}

func IsFuture(date string, now time.Time) bool {
	return Compare(date, now) == Future
}

// AddDays shifts a canonical date by n days.
func AddDays(date string, n int) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// ArcStart is October 1 of now's year.
func ArcStart(now time.Time) time.Time {
	return time.Date(now.UTC().Year(), time.October, 1, 0, 0, 0, 0, time.UTC)
}

// NextNewYear is January 1 of the year after now.
func NextNewYear(now time.Time) time.Time {
	return time.Date(now.UTC().Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// ArcDay is the 1-based day number of now inside the arc, clamped to
// [1, ArcLength].
func ArcDay(now time.Time) int {
	day := CeilDays(now.Sub(ArcStart(now)))
	return max(1, min(day, ArcLength))
}
