package calendar

import (
	"fmt"
	"time"

	"github.com/username/calstep/pkg/timeutil"
)

// DayInfo represents information about a specific day
type DayInfo struct {
	Date    time.Time
	Weekday time.Weekday
	// Occurrence is the 1-based ordinal of Weekday within the month ("2nd Tuesday")
	Occurrence int
	// Occurrences is how many times Weekday occurs in the month
	Occurrences int
}

// IsLastOccurrence reports whether the day is the last of its weekday in the month
func (d DayInfo) IsLastOccurrence() bool {
	return d.Occurrence == d.Occurrences
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year        int
	Month       time.Month
	Leap        bool
	DaysInMonth int
	DaysInYear  int
	Days        []DayInfo
}

// BuildMonth returns calendar info for the entire month in loc
func BuildMonth(year int, month time.Month, loc *time.Location) (*MonthInfo, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	if loc == nil {
		loc = time.Local
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	info := &MonthInfo{
		Year:        year,
		Month:       month,
		Leap:        timeutil.IsLeap(year),
		DaysInMonth: timeutil.DaysInMonth(first),
		DaysInYear:  timeutil.DaysInYear(first),
		Days:        make([]DayInfo, 0, 31),
	}

	for day := 1; day <= info.DaysInMonth; day++ {
		date := timeutil.BeginningOfDate(time.Date(year, month, day, 12, 0, 0, 0, loc))
		nth, count := timeutil.WhichOccurrenceInMonth(date, date.Weekday())
		info.Days = append(info.Days, DayInfo{
			Date:        date,
			Weekday:     date.Weekday(),
			Occurrence:  nth,
			Occurrences: count,
		})
	}

	return info, nil
}

// Weekdays returns the days of the month falling on weekday, in order
func (m *MonthInfo) Weekdays(weekday time.Weekday) []DayInfo {
	var days []DayInfo
	for _, d := range m.Days {
		if d.Weekday == weekday {
			days = append(days, d)
		}
	}
	return days
}

// NthWeekday returns the nth occurrence of weekday in the month.
// Negative n counts from the end, so -1 is the last occurrence.
func (m *MonthInfo) NthWeekday(weekday time.Weekday, n int) (DayInfo, bool) {
	days := m.Weekdays(weekday)
	switch {
	case n > 0 && n <= len(days):
		return days[n-1], true
	case n < 0 && -n <= len(days):
		return days[len(days)+n], true
	}
	return DayInfo{}, false
}
