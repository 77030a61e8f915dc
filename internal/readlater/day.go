package readlater

import (
	"fmt"
	"strings"
	"time"
)

const (
	LabelToday     = "Today"
	LabelYesterday = "Yesterday"

	// dayLabelLayout renders e.g. "Monday, March 3, 2025".
	dayLabelLayout = "Monday, January 2, 2006"
	dateLayout     = "January 2, 2006"
)

// StartOfDay returns local midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayLabel names the calendar day of t relative to now, using now's location
// for day boundaries.
func DayLabel(t, now time.Time) string {
	loc := now.Location()
	return labelForDay(StartOfDay(t, loc), newDayRef(now, loc))
}

// date is a calendar day without a clock. Days are matched by date rather
// than by instant since local midnight is skipped where DST starts at 00:00.
type date struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time, loc *time.Location) date {
	y, m, d := t.In(loc).Date()
	return date{y, m, d}
}

type dayRef struct {
	loc       *time.Location
	today     date
	yesterday date
}

func newDayRef(now time.Time, loc *time.Location) dayRef {
	today := dateOf(now, loc)
	// noon always exists, so normalising through it never lands on a skipped hour
	yesterday := dateOf(time.Date(today.year, today.month, today.day-1, 12, 0, 0, 0, loc), loc)
	return dayRef{loc: loc, today: today, yesterday: yesterday}
}

func labelForDay(day time.Time, ref dayRef) string {
	switch dateOf(day, ref.loc) {
	case ref.today:
		return LabelToday
	case ref.yesterday:
		return LabelYesterday
	default:
		return FormatDayLabel(day)
	}
}

// FormatDayLabel renders the absolute label for a day.
func FormatDayLabel(day time.Time) string {
	return day.Format(dayLabelLayout)
}

// ParseDayLabel is the inverse of FormatDayLabel. The weekday prefix is
// stripped and the remaining date is parsed in loc.
func ParseDayLabel(label string, loc *time.Location) (time.Time, error) {
	if label == LabelToday || label == LabelYesterday {
		return time.Time{}, ErrRelativeLabel
	}

	_, rest, ok := strings.Cut(label, ", ")
	if !ok {
		return time.Time{}, fmt.Errorf("parse day label %q: missing weekday", label)
	}

	day, err := time.ParseInLocation(dateLayout, rest, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day label %q: %w", label, err)
	}
	if FormatDayLabel(day) != label {
		return time.Time{}, fmt.Errorf("parse day label %q: weekday does not match date", label)
	}
	return day, nil
}
