package timesheet

import (
	"fmt"
	"time"

	"github.com/hsinyuc/worklog/internal/record"
)

// Entry is a journal record enriched for one export run.
// Entries are created fresh per export and discarded after rendering.
type Entry struct {
	Record   *record.Record
	Feedback string // newline-joined comment bodies, "" when none or fetch failed
	Summary  string // always non-empty after Build
}

// Row is one printed line of the timesheet table.
type Row struct {
	DateLabel     string // "M/D"
	WeekdayLabel  string
	StartTime     string
	EndTime       string
	BillableHours float64
	SummaryItems  []string
	FeedbackText  string
}

// Document is the assembled report, ready for rendering.
type Document struct {
	Rows               []Row
	TotalBillableHours float64
	PeriodLabel        string // year and month of the reference date
	Department         string
	InternName         string
}

// weekdayLabels is indexed by time.Weekday (Sunday = 0).
var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayLabel returns the fixed table label for the date's day of week.
func WeekdayLabel(date time.Time) string {
	return weekdayLabels[int(date.Weekday())]
}

// DateLabel returns the "M/D" table label for a date.
func DateLabel(date time.Time) string {
	return fmt.Sprintf("%d/%d", int(date.Month()), date.Day())
}

// PeriodLabel returns the report period derived from a reference date.
func PeriodLabel(ref time.Time) string {
	return ref.Format("January 2006")
}
