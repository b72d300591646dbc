package plan

import (
	"math"
	"time"
)

// DateOnly strips the time-of-day component so day-count arithmetic is
// exact. All other functions in this package normalise their inputs
// through it.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysInclusive(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours()/24)) + 1
}

// DaysBetween is the inclusive day count of [a, b]. Inverted or
// zero-length ranges clamp to 1 so a same-day project still occupies a
// day.
func DaysBetween(a, b time.Time) int {
	days := daysInclusive(DateOnly(a), DateOnly(b))
	if days < 1 {
		return 1
	}
	return days
}

// OverlapDays is the number of days two closed day-intervals share.
// Zero means no overlap.
func OverlapDays(aStart, aEnd, bStart, bEnd time.Time) int {
	start := DateOnly(aStart)
	if s := DateOnly(bStart); s.After(start) {
		start = s
	}
	end := DateOnly(aEnd)
	if e := DateOnly(bEnd); e.Before(end) {
		end = e
	}
	if end.Before(start) {
		return 0
	}
	return daysInclusive(start, end)
}

// IsWorkday reports whether t falls Monday through Friday.
func IsWorkday(t time.Time) bool {
	day := t.Weekday()
	return day >= time.Monday && day <= time.Friday
}

// WeekdaysBetween counts the Mon-Fri days in the inclusive range [a, b].
func WeekdaysBetween(a, b time.Time) int {
	start, end := DateOnly(a), DateOnly(b)
	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if IsWorkday(day) {
			count++
		}
	}
	return count
}

// StartOfWeek returns the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	t = DateOnly(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
