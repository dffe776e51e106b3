package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hsinyuc/worklog/internal/dateutil"
	"github.com/hsinyuc/worklog/internal/record"
)

// Pipeline outcomes that are not failures of the pipeline itself.
var (
	// ErrCancelled signals the user backed out at the range prompt.
	// Nothing was fetched and nothing is rendered.
	ErrCancelled = errors.New("export cancelled")

	// ErrNoRecords signals the selected range matched no records.
	// The pipeline stops before summarization and rendering.
	ErrNoRecords = errors.New("no records in the selected date range")
)

// RangePicker acquires a date range from the caller. ok is false when the
// caller cancels, which is a normal early exit rather than an error.
type RangePicker interface {
	Pick(ctx context.Context, def dateutil.DateRange) (r dateutil.DateRange, ok bool, err error)
}

// PrintHandle exposes a rendered document for host materialization
// (print-to-PDF or direct file use). Close is idempotent.
type PrintHandle interface {
	Path() string
	Open() error
	Close() error
}

// Renderer turns a document into a printable surface.
type Renderer interface {
	Render(doc *Document) (PrintHandle, error)
}

// StaticRange is a RangePicker that returns a fixed range without
// interaction, for flag-driven exports.
type StaticRange dateutil.DateRange

// Pick returns the fixed range, ignoring the default.
func (s StaticRange) Pick(_ context.Context, _ dateutil.DateRange) (dateutil.DateRange, bool, error) {
	if s.Start.IsZero() || s.End.IsZero() {
		return dateutil.DateRange{}, false, errors.New("both start and end dates are required")
	}
	return dateutil.DateRange(s), true, nil
}

// Exporter wires the full export pipeline:
// range selection, collection, building and rendering.
type Exporter struct {
	repo       record.Repository
	picker     RangePicker
	builder    *Builder
	renderer   Renderer
	department string
}

// NewExporter creates an Exporter. summarizer may be nil to skip the
// remote summarization and use local fallback summaries throughout.
func NewExporter(repo record.Repository, picker RangePicker, summarizer Summarizer, renderer Renderer, department string) *Exporter {
	return &Exporter{
		repo:       repo,
		picker:     picker,
		builder:    NewBuilder(summarizer),
		renderer:   renderer,
		department: department,
	}
}

// DefaultRange returns the Monday-Sunday week containing the reference
// date, with the end bound normalized to end of day.
func DefaultRange(ref time.Time) dateutil.DateRange {
	monday, sunday := dateutil.WeekRange(ref)
	return dateutil.DateRange{Start: monday, End: dateutil.EndOfDay(sunday)}
}

// Export runs the pipeline for the week containing ref. It returns
// ErrCancelled if the picker is dismissed and ErrNoRecords if the chosen
// range is empty; both leave no partial output behind.
func (e *Exporter) Export(ctx context.Context, ref time.Time) (*Document, PrintHandle, error) {
	selected, ok, err := e.picker.Pick(ctx, DefaultRange(ref))
	if err != nil {
		return nil, nil, fmt.Errorf("selecting date range: %w", err)
	}
	if !ok {
		return nil, nil, ErrCancelled
	}

	entries, err := NewCollector(e.repo).Collect(ctx, selected.Start, selected.End)
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, nil, ErrNoRecords
	}

	// Profile is optional report metadata; absence degrades to placeholders.
	profile, err := e.repo.GetProfile(ctx)
	if err != nil {
		profile = nil
	}

	doc, err := e.builder.Build(ctx, entries, BuildOptions{
		ReferenceDate: selected.Start,
		Department:    e.department,
		Profile:       profile,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("building report: %w", err)
	}

	handle, err := e.renderer.Render(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("rendering report: %w", err)
	}

	return doc, handle, nil
}
