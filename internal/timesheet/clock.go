// Package timesheet implements the weekly timesheet export pipeline:
// date-range selection, record collection, per-record summarization with
// graceful fallback, billable-hour computation and report assembly.
package timesheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Lunch deduction policy. A working day of nine hours or more includes an
// unpaid one-hour lunch break.
const (
	LunchThresholdHours = 9.0
	LunchDeductionHours = 1.0
)

// Default wall-clock times substituted when a record has none.
// Used for hour computation only; the stored record is never changed.
const (
	DefaultStartTime = "09:00"
	DefaultEndTime   = "18:00"
)

// ErrMalformedTime is returned for wall-clock strings not in HH:MM format.
var ErrMalformedTime = errors.New("time must be in HH:MM format")

// Duration computes end minus start in fractional hours.
// A negative result (malformed or overnight-wrapping input) is clamped to zero.
func Duration(start, end string) (float64, error) {
	s, err := parseClock(start)
	if err != nil {
		return 0, fmt.Errorf("start time %q: %w", start, err)
	}
	e, err := parseClock(end)
	if err != nil {
		return 0, fmt.Errorf("end time %q: %w", end, err)
	}

	d := e - s
	if d < 0 {
		return 0, nil
	}
	return d, nil
}

// BillableHours applies the lunch deduction policy to a duration in hours.
func BillableHours(duration float64) float64 {
	if duration >= LunchThresholdHours {
		return duration - LunchDeductionHours
	}
	return duration
}

// parseClock converts "HH:MM" to fractional hours since midnight.
func parseClock(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, ErrMalformedTime
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, ErrMalformedTime
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, ErrMalformedTime
	}

	return float64(hours) + float64(minutes)/60, nil
}
