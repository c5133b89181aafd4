package timeutil

import (
	"time"

	"golang.org/x/text/cases"
)

var (
	leapYearMonthDays   = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	commonYearMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	weekdayNames = [7]string{
		"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
	}
	monthNames = [12]string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
)

// foldName normalizes a symbolic name for table lookup.
// A new caser is created per call since cases.Caser is not safe for concurrent use.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// indexOf returns the position of name in table, or -1.
func indexOf(table []string, name string) int {
	folded := foldName(name)
	for i, v := range table {
		if v == folded {
			return i
		}
	}
	return -1
}

// SymbolToMonth converts a month name to its number (1..12).
func SymbolToMonth(name string) (time.Month, error) {
	i := indexOf(monthNames[:], name)
	if i == -1 {
		return 0, unknownMonthError(name)
	}
	return time.Month(i + 1), nil
}

// SymbolToDay converts a weekday name to its number (0..6, Sunday first).
func SymbolToDay(name string) (time.Weekday, error) {
	i := indexOf(weekdayNames[:], name)
	if i == -1 {
		return 0, unknownWeekdayError(name)
	}
	return time.Weekday(i), nil
}

// MonthNames returns the recognized month names in calendar order.
func MonthNames() []string {
	return append([]string(nil), monthNames[:]...)
}

// WeekdayNames returns the recognized weekday names, Sunday first.
func WeekdayNames() []string {
	return append([]string(nil), weekdayNames[:]...)
}
