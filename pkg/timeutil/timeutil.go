// Package timeutil implements Gregorian calendar arithmetic for local time
// values: leap years, month and year lengths, weekday occurrences within a
// month, and clamped stepping by whole months and years.
package timeutil

import "time"

// BeginningOfDate returns local midnight (00:00:00) of the given date
func BeginningOfDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDate returns 23:59:59 of the given date
func EndOfDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func monthDays(year int, month time.Month) int {
	if IsLeap(year) {
		return leapYearMonthDays[month-1]
	}
	return commonYearMonthDays[month-1]
}

func yearDays(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// daysBeforeMonth returns the number of days in the months of year that
// precede month.
func daysBeforeMonth(year int, month time.Month) int {
	sum := 0
	for m := time.January; m < month; m++ {
		sum += monthDays(year, m)
	}
	return sum
}

// DaysInMonth returns the number of days in the month of t
func DaysInMonth(t time.Time) int {
	return monthDays(t.Year(), t.Month())
}

// DaysInYear returns the number of days in the year of t
func DaysInYear(t time.Time) int {
	return yearDays(t.Year())
}

// WhichOccurrenceInMonth returns which occurrence of weekday in its month t
// falls on, and how many times weekday occurs in that month.
// For weekday == t.Weekday() this is the "2nd Tuesday of 4" pair; for any
// other weekday nth counts the occurrences on or before t and may be 0.
func WhichOccurrenceInMonth(t time.Time, weekday time.Weekday) (nth, count int) {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday()
	firstOccurrence := ((7-int(firstOfMonth))+int(weekday))%7 + 1

	// ceil((days - first + 1) / 7)
	count = (DaysInMonth(t) - firstOccurrence + 7) / 7

	if t.Day() < firstOccurrence {
		return 0, count
	}
	nth = (t.Day()-firstOccurrence)/7 + 1
	return nth, count
}

// DaysInNYears returns the number of days covered by stepping n years from t.
// Each step adds the length of the year the marker is in, so leap years are
// counted as the marker crosses them. A negative n steps backward and yields
// a negative count; each backward step uses the length of the year entered.
func DaysInNYears(t time.Time, n int) int {
	sum := 0
	mark := t
	for i := 0; i < n; i++ {
		diy := DaysInYear(mark)
		sum += diy
		mark = mark.AddDate(0, 0, diy)
	}
	for i := 0; i > n; i-- {
		diy := yearDays(mark.Year() - 1)
		sum -= diy
		mark = mark.AddDate(0, 0, -diy)
	}
	return sum
}

// DaysInNMonths returns the day delta that moves t by n months, keeping the
// day of month. When the target month is shorter than t's day of month the
// delta lands on the target month's last day instead of overflowing into the
// following month (Jan 31 + 1 month = Feb 28/29).
// A negative n steps backward and yields a negative delta.
func DaysInNMonths(t time.Time, n int) int {
	desiredDay := t.Day()
	mark := t
	// move to a day every month has, so stepping never rolls over
	if desiredDay >= 28 {
		mark = mark.AddDate(0, 0, -(desiredDay - 27))
	}

	sum := 0
	for i := 0; i < n; i++ {
		dim := DaysInMonth(mark)
		sum += dim
		mark = mark.AddDate(0, 0, dim)
	}
	for i := 0; i > n; i-- {
		dim := DaysInMonth(mark.AddDate(0, 0, -mark.Day()))
		sum -= dim
		mark = mark.AddDate(0, 0, -dim)
	}

	if dim := DaysInMonth(mark); desiredDay > dim {
		sum -= desiredDay - dim
	}
	return sum
}
