package timeutil

import "fmt"

// Unit is a calendar granularity used to step and truncate time values.
// Units are ordered from finest to coarsest.
type Unit int

const (
	UnitSecond Unit = iota
	UnitMinute
	UnitHour
	UnitDay
	// UnitWeekday steps and truncates exactly like UnitDay.
	UnitWeekday
	UnitMonth
	UnitYear
)

var unitNames = map[Unit]string{
	UnitSecond:  "second",
	UnitMinute:  "minute",
	UnitHour:    "hour",
	UnitDay:     "day",
	UnitWeekday: "weekday",
	UnitMonth:   "month",
	UnitYear:    "year",
}

// short tags accepted in addition to the unit names
var unitAliases = map[string]Unit{
	"sec":  UnitSecond,
	"min":  UnitMinute,
	"wday": UnitWeekday,
}

// String returns the unit name
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool {
	return u >= UnitSecond && u <= UnitYear
}

func (u Unit) normalize() Unit {
	if u == UnitWeekday {
		return UnitDay
	}
	return u
}

// ParseUnit converts a unit name or short tag ("sec", "min", "wday") to a Unit.
func ParseUnit(name string) (Unit, error) {
	folded := foldName(name)
	if u, ok := unitAliases[folded]; ok {
		return u, nil
	}
	for u, n := range unitNames {
		if n == folded {
			return u, nil
		}
	}
	return 0, unknownUnitError(name)
}
