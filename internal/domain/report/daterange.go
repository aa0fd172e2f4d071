package report

import (
	"strings"
	"time"
)

// DateFilter is a named reporting window keyword.
type DateFilter string

const (
	DateFilterToday       DateFilter = "TODAY"
	DateFilterThisWeek    DateFilter = "THIS_WEEK"
	DateFilterThisMonth   DateFilter = "THIS_MONTH"
	DateFilterLast6Months DateFilter = "LAST_6_MONTHS"
	DateFilterThisYear    DateFilter = "THIS_YEAR"
	DateFilterCustom      DateFilter = "CUSTOM"
)

// isoDateLayout is the wire format for custom range bounds.
const isoDateLayout = "2006-01-02"

// DateRange is an inclusive [From, To] calendar-date interval.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateFilter maps a request keyword to a DateFilter. Matching is
// case-insensitive; unrecognized values fall back to THIS_YEAR.
func ParseDateFilter(s string) DateFilter {
	switch DateFilter(strings.ToUpper(strings.TrimSpace(s))) {
	case DateFilterToday:
		return DateFilterToday
	case DateFilterThisWeek:
		return DateFilterThisWeek
	case DateFilterThisMonth:
		return DateFilterThisMonth
	case DateFilterLast6Months:
		return DateFilterLast6Months
	case DateFilterThisYear:
		return DateFilterThisYear
	case DateFilterCustom:
		return DateFilterCustom
	default:
		return DateFilterThisYear
	}
}

// Resolve anchors the filter to the given "today" and returns the concrete
// inclusive interval. The from/to arguments are only consulted for CUSTOM;
// unparsable or missing bounds silently default to the first of the current
// month and today respectively, and inverted bounds are swapped so the
// interval is always non-decreasing.
func (f DateFilter) Resolve(today time.Time, from, to string) DateRange {
	today = truncateToDate(today)

	switch f {
	case DateFilterToday:
		return DateRange{From: today, To: today}
	case DateFilterThisWeek:
		return DateRange{From: previousOrSameMonday(today), To: today}
	case DateFilterThisMonth:
		return DateRange{From: firstOfMonth(today), To: today}
	case DateFilterLast6Months:
		return DateRange{From: firstOfMonth(today).AddDate(0, -5, 0), To: today}
	case DateFilterCustom:
		fromDate := parseISODate(from, firstOfMonth(today))
		toDate := parseISODate(to, today)
		if toDate.Before(fromDate) {
			fromDate, toDate = toDate, fromDate
		}
		return DateRange{From: fromDate, To: toDate}
	default: // THIS_YEAR and anything unexpected
		return DateRange{From: firstOfYear(today), To: today}
	}
}

// parseISODate parses an ISO-8601 date, falling back silently on blank or
// malformed input.
func parseISODate(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	d, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return fallback
	}
	return d.UTC()
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func firstOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

func previousOrSameMonday(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
