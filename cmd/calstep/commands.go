package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/calstep/internal/calendar"
	"github.com/username/calstep/pkg/timeutil"
	"go.uber.org/zap"
)

const outputLayout = "2006-01-02 15:04:05 Mon MST"

var inputLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTime reads a local time in the configured location
func parseTime(value string) (time.Time, error) {
	loc, err := cfg.GetLocation()
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, expected YYYY-MM-DD[THH:MM[:SS]]", value)
}

func newWrapper(t time.Time) *timeutil.TimeWrapper {
	return timeutil.NewTimeWrapperWith(t, cfg.Units.Lengths(), logger)
}

func addCmd() *cobra.Command {
	var clearUnit string

	cmd := &cobra.Command{
		Use:   "add <time> <unit> <amount>",
		Short: "Advance a time by whole calendar units (clamped for months and years)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTime(args[0])
			if err != nil {
				return err
			}
			unit, err := timeutil.ParseUnit(args[1])
			if err != nil {
				return err
			}
			amount, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[2], err)
			}

			w := newWrapper(t)
			if clearUnit != "" {
				cu, err := timeutil.ParseUnit(clearUnit)
				if err != nil {
					return err
				}
				if err := w.ClearBelow(cu); err != nil {
					return err
				}
			}
			if err := w.Add(unit, amount); err != nil {
				return err
			}

			logger.Info("Added interval",
				zap.Time("from", t),
				zap.Stringer("unit", unit),
				zap.Int("amount", amount),
				zap.Time("to", w.Time()))

			outPrintln(w.Time().Format(outputLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&clearUnit, "clear-below", "", "Truncate below this unit before adding")

	return cmd
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <time> <unit>",
		Short: "Truncate every field finer than unit to its minimum",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTime(args[0])
			if err != nil {
				return err
			}
			unit, err := timeutil.ParseUnit(args[1])
			if err != nil {
				return err
			}

			w := newWrapper(t)
			if err := w.ClearBelow(unit); err != nil {
				return err
			}

			outPrintln(w.Time().Format(outputLayout))
			return nil
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <time>",
		Short: "Show leap year, month length and weekday occurrence of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTime(args[0])
			if err != nil {
				return err
			}

			nth, count := timeutil.WhichOccurrenceInMonth(t, t.Weekday())

			outPrintf("Date:           %s\n", t.Format(outputLayout))
			outPrintf("Beginning:      %s\n", timeutil.BeginningOfDate(t).Format(outputLayout))
			outPrintf("End:            %s\n", timeutil.EndOfDate(t).Format(outputLayout))
			outPrintf("Leap year:      %v\n", timeutil.IsLeap(t.Year()))
			outPrintf("Days in month:  %d\n", timeutil.DaysInMonth(t))
			outPrintf("Days in year:   %d\n", timeutil.DaysInYear(t))
			outPrintf("Occurrence:     %s %s of %d\n", ordinal(nth), t.Weekday(), count)
			return nil
		},
	}
}

func monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month <year> <month>",
		Short: "Print every day of a month with its weekday occurrence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			month, err := parseMonth(args[1])
			if err != nil {
				return err
			}
			loc, err := cfg.GetLocation()
			if err != nil {
				return err
			}

			info, err := calendar.BuildMonth(year, month, loc)
			if err != nil {
				return err
			}

			outPrintf("%s %d: %d days (%d in year)\n", info.Month, info.Year, info.DaysInMonth, info.DaysInYear)
			outPrintln("  Date       | Weekday   | Occurrence")
			outPrintln("-------------+-----------+------------")
			for _, day := range info.Days {
				last := ""
				if day.IsLastOccurrence() {
					last = " (last)"
				}
				outPrintf("  %s | %-9s | %s of %d%s\n",
					day.Date.Format("2006-01-02"),
					day.Weekday,
					ordinal(day.Occurrence),
					day.Occurrences,
					last)
			}
			return nil
		},
	}
}

func spanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "span <time> <month|year> <n>",
		Short: "Count the days covered by stepping n months or years",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTime(args[0])
			if err != nil {
				return err
			}
			unit, err := timeutil.ParseUnit(args[1])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[2], err)
			}

			var days int
			switch unit {
			case timeutil.UnitMonth:
				days = timeutil.DaysInNMonths(t, n)
			case timeutil.UnitYear:
				days = timeutil.DaysInNYears(t, n)
			default:
				return fmt.Errorf("span supports month and year, got %s", unit)
			}

			outPrintf("%d\n", days)
			return nil
		},
	}
}

func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "lookup <month|day> <name>",
		Short:     "Convert a month or weekday name to its number",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"month", "day"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "month":
				month, err := timeutil.SymbolToMonth(args[1])
				if err != nil {
					return err
				}
				outPrintf("%d\n", int(month))
			case "day":
				day, err := timeutil.SymbolToDay(args[1])
				if err != nil {
					return err
				}
				outPrintf("%d\n", int(day))
			default:
				return fmt.Errorf("lookup kind must be 'month' or 'day', got '%s'", args[0])
			}
			return nil
		},
	}
}

// parseMonth accepts a month number or name
func parseMonth(value string) (time.Month, error) {
	if n, err := strconv.Atoi(value); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month must be between 1 and 12, got %d", n)
		}
		return time.Month(n), nil
	}
	return timeutil.SymbolToMonth(value)
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
