package timeutil

import (
	"time"

	"go.uber.org/zap"
)

// Lengths holds the fixed durations the wrapper uses for one day, hour and
// minute.
type Lengths struct {
	Day    time.Duration
	Hour   time.Duration
	Minute time.Duration
}

// DefaultLengths returns 24h days, 60m hours and 60s minutes.
func DefaultLengths() Lengths {
	return Lengths{
		Day:    24 * time.Hour,
		Hour:   time.Hour,
		Minute: time.Minute,
	}
}

var clearOrder = []Unit{UnitSecond, UnitMinute, UnitHour, UnitDay, UnitMonth, UnitYear}

// TimeWrapper owns a single time value and moves it around by calendar units.
//
// Day, hour and minute steps are fixed multiples of Lengths added with
// time.Time.Add, i.e. absolute elapsed time. Across a daylight saving change
// the wall clock of a zoned value shifts by the offset difference; use UTC or
// a fixed zone when wall-clock continuity matters.
//
// A TimeWrapper is not safe for concurrent use.
type TimeWrapper struct {
	t       time.Time
	lengths Lengths
	logger  *zap.Logger
}

// NewTimeWrapper wraps t using the default unit lengths.
func NewTimeWrapper(t time.Time) *TimeWrapper {
	return NewTimeWrapperWith(t, DefaultLengths(), nil)
}

// NewTimeWrapperWith wraps t using the given unit lengths and logger.
// A zero Lengths selects DefaultLengths, a nil logger discards output.
func NewTimeWrapperWith(t time.Time, lengths Lengths, logger *zap.Logger) *TimeWrapper {
	if lengths == (Lengths{}) {
		lengths = DefaultLengths()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimeWrapper{
		t:       t,
		lengths: lengths,
		logger:  logger,
	}
}

// Time returns the current wrapped time
func (w *TimeWrapper) Time() time.Time {
	return w.t
}

// Add moves the wrapped time by amount units. Months and years are clamped
// to the last day of a shorter target month.
func (w *TimeWrapper) Add(unit Unit, amount int) error {
	var delta time.Duration
	switch unit.normalize() {
	case UnitYear:
		delta = time.Duration(DaysInNYears(w.t, amount)) * w.lengths.Day
	case UnitMonth:
		delta = time.Duration(DaysInNMonths(w.t, amount)) * w.lengths.Day
	case UnitDay:
		delta = time.Duration(amount) * w.lengths.Day
	case UnitHour:
		delta = time.Duration(amount) * w.lengths.Hour
	case UnitMinute:
		delta = time.Duration(amount) * w.lengths.Minute
	case UnitSecond:
		delta = time.Duration(amount) * time.Second
	default:
		return unknownUnitError(unit)
	}

	from := w.t
	w.t = w.t.Add(delta)

	w.logger.Debug("Advanced time",
		zap.Stringer("unit", unit),
		zap.Int("amount", amount),
		zap.Time("from", from),
		zap.Time("to", w.t))
	return nil
}

// ClearBelow truncates every field finer than unit to its minimum:
// UnitDay yields midnight, UnitMonth the 1st of the month, UnitYear January 1st.
func (w *TimeWrapper) ClearBelow(unit Unit) error {
	if !unit.Valid() {
		return unknownUnitError(unit)
	}
	target := unit.normalize()

	from := w.t
	for _, u := range clearOrder {
		if u == target {
			break
		}
		w.clear(u)
	}

	w.logger.Debug("Cleared time",
		zap.Stringer("unit", unit),
		zap.Time("from", from),
		zap.Time("to", w.t))
	return nil
}

func (w *TimeWrapper) clear(unit Unit) {
	switch unit {
	case UnitSecond:
		w.t = w.t.Add(-(time.Duration(w.t.Second())*time.Second + time.Duration(w.t.Nanosecond())))
	case UnitMinute:
		w.t = w.t.Add(-time.Duration(w.t.Minute()) * w.lengths.Minute)
	case UnitHour:
		w.t = w.t.Add(-time.Duration(w.t.Hour()) * w.lengths.Hour)
	case UnitDay:
		// first of the month
		w.t = w.t.Add(-time.Duration(w.t.Day()-1) * w.lengths.Day)
	case UnitMonth:
		// January 1st; runs after the day is already cleared
		w.t = w.t.Add(-time.Duration(daysBeforeMonth(w.t.Year(), w.t.Month())) * w.lengths.Day)
	case UnitYear:
	}
}
