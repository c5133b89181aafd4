package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/calstep/pkg/timeutil"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("location: UTC\nlog:\n  level: error\n"), 0o644))

	var b bytes.Buffer
	outWriter = &b
	t.Cleanup(func() { outWriter = os.Stdout })

	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", path}, args...))
	err := cmd.Execute()
	return b.String(), err
}

func TestAddCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"month clamps", []string{"add", "2023-01-31T09:30:00", "month", "1"}, "2023-02-28 09:30:00 Tue UTC"},
		{"short unit tag", []string{"add", "2024-02-28", "wday", "2"}, "2024-03-01 00:00:00 Fri UTC"},
		{"negative years", []string{"add", "2025-01-15", "year", "-1"}, "2024-01-15 00:00:00 Mon UTC"},
		{"clear then add", []string{"add", "2024-05-17T13:14:15", "day", "1", "--clear-below", "day"}, "2024-05-18 00:00:00 Sat UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestClearCommand(t *testing.T) {
	out, err := runCLI(t, "clear", "2023-08-17T13:45:27", "year")
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01 00:00:00 Sun UTC", strings.TrimSpace(out))

	_, err = runCLI(t, "clear", "2023-08-17", "fortnight")
	assert.ErrorIs(t, err, timeutil.ErrUnknownUnit)
}

func TestInfoCommand(t *testing.T) {
	out, err := runCLI(t, "info", "2023-02-14")
	require.NoError(t, err)

	assert.Contains(t, out, "Leap year:      false")
	assert.Contains(t, out, "Days in month:  28")
	assert.Contains(t, out, "Days in year:   365")
	assert.Contains(t, out, "Occurrence:     2nd Tuesday of 4")
	assert.Contains(t, out, "End:            2023-02-14 23:59:59 Tue UTC")
}

func TestMonthCommand(t *testing.T) {
	out, err := runCLI(t, "month", "2024", "February")
	require.NoError(t, err)

	assert.Contains(t, out, "February 2024: 29 days (366 in year)")
	assert.Contains(t, out, "2024-02-29 | Thursday  | 5th of 5 (last)")

	_, err = runCLI(t, "month", "2024", "13")
	assert.Error(t, err)
}

func TestSpanCommand(t *testing.T) {
	out, err := runCLI(t, "span", "2024-01-31", "month", "1")
	require.NoError(t, err)
	assert.Equal(t, "29", strings.TrimSpace(out))

	out, err = runCLI(t, "span", "2023-01-01", "year", "4")
	require.NoError(t, err)
	assert.Equal(t, "1461", strings.TrimSpace(out))

	_, err = runCLI(t, "span", "2023-01-01", "hour", "4")
	assert.Error(t, err)
}

func TestLookupCommand(t *testing.T) {
	out, err := runCLI(t, "lookup", "month", "october")
	require.NoError(t, err)
	assert.Equal(t, "10", strings.TrimSpace(out))

	out, err = runCLI(t, "lookup", "day", "Saturday")
	require.NoError(t, err)
	assert.Equal(t, "6", strings.TrimSpace(out))

	_, err = runCLI(t, "lookup", "month", "smarch")
	assert.ErrorIs(t, err, timeutil.ErrUnknownMonth)

	_, err = runCLI(t, "lookup", "day", "caturday")
	assert.ErrorIs(t, err, timeutil.ErrUnknownWeekday)
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 0: "0th"}
	for n, want := range tests {
		assert.Equal(t, want, ordinal(n))
	}
}
