package timeutil

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrUnknownMonth   = errors.New("no such month")
	ErrUnknownWeekday = errors.New("no such day")
	ErrUnknownUnit    = errors.New("unknown time unit")
)

// unknownMonthError returns an error for the given month name,
// which unwraps to ErrUnknownMonth.
func unknownMonthError(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownMonth, name)
}

// unknownWeekdayError returns an error for the given weekday name,
// which unwraps to ErrUnknownWeekday.
func unknownWeekdayError(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownWeekday, name)
}

func unknownUnitError(unit any) error {
	return fmt.Errorf("%w: %v", ErrUnknownUnit, unit)
}
