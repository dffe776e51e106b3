package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-03-14")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseDate_Empty(t *testing.T) {
	got, err := ParseDate("")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if !SameDay(got, time.Now()) {
		t.Errorf("expected today, got %v", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"14-03-2025", "2025/03/14", "not-a-date"} {
		if _, err := ParseDate(input); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("ParseDate(%q) expected ErrInvalidDateFormat, got %v", input, err)
		}
	}
}

func TestNewDateRange(t *testing.T) {
	r, err := NewDateRange("2025-01-13", "2025-01-19")
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}
	if r.Start.Day() != 13 || r.End.Day() != 19 {
		t.Errorf("unexpected range %v - %v", r.Start, r.End)
	}
}

func TestNewDateRange_EndDefaultsToStart(t *testing.T) {
	r, err := NewDateRange("2025-01-13", "")
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}
	if !r.Start.Equal(r.End) {
		t.Errorf("expected end == start, got %v - %v", r.Start, r.End)
	}
}

func TestNewDateRange_Inverted(t *testing.T) {
	_, err := NewDateRange("2025-01-19", "2025-01-13")
	if !errors.Is(err, ErrEndDateBeforeStart) {
		t.Errorf("expected ErrEndDateBeforeStart, got %v", err)
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		monday time.Time
	}{
		{
			name:   "wednesday",
			date:   time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
			monday: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "monday",
			date:   time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
			monday: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "sunday",
			date:   time.Date(2025, 1, 19, 23, 0, 0, 0, time.UTC),
			monday: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekRange(tt.date)
			if !monday.Equal(tt.monday) {
				t.Errorf("expected monday %v, got %v", tt.monday, monday)
			}
			wantSunday := tt.monday.AddDate(0, 0, 6)
			if !sunday.Equal(wantSunday) {
				t.Errorf("expected sunday %v, got %v", wantSunday, sunday)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	got := EndOfDay(time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC))
	want := time.Date(2025, 1, 15, 23, 59, 59, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 1, 15, 23, 59, 59, 0, time.UTC)
	c := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("expected same day for a and b")
	}
	if SameDay(a, c) {
		t.Error("expected different days for a and c")
	}
}
