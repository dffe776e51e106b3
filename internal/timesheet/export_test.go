package timesheet

import (
	"context"
	"errors"
	"testing"

	"github.com/hsinyuc/worklog/internal/dateutil"
	"github.com/hsinyuc/worklog/internal/record"
)

type cancelPicker struct{}

func (cancelPicker) Pick(_ context.Context, _ dateutil.DateRange) (dateutil.DateRange, bool, error) {
	return dateutil.DateRange{}, false, nil
}

// defaultPicker accepts whatever default range it is offered.
type defaultPicker struct{}

func (defaultPicker) Pick(_ context.Context, def dateutil.DateRange) (dateutil.DateRange, bool, error) {
	return def, true, nil
}

type fakeHandle struct {
	path   string
	opened bool
	closed bool
}

func (h *fakeHandle) Path() string { return h.path }
func (h *fakeHandle) Open() error  { h.opened = true; return nil }
func (h *fakeHandle) Close() error { h.closed = true; return nil }

type fakeRenderer struct {
	handle  *fakeHandle
	err     error
	calls   int
	lastDoc *Document
}

func (f *fakeRenderer) Render(doc *Document) (PrintHandle, error) {
	f.calls++
	f.lastDoc = doc
	if f.err != nil {
		return nil, f.err
	}
	return f.handle, nil
}

func TestExport_HappyPath(t *testing.T) {
	repo := &fakeRepo{
		records: []*record.Record{
			rec(1, day(2025, 3, 10), "09:00", "18:00", "monday work"),
			rec(2, day(2025, 3, 12), "09:00", "18:00", "wednesday work"),
		},
		comments: map[int64][]*record.Comment{
			1: {{RecordID: 1, Content: "Nice."}},
		},
		profile: &record.Profile{Name: "Hsin-Yu", Company: "Acme"},
	}
	renderer := &fakeRenderer{handle: &fakeHandle{path: "/tmp/timesheet.html"}}
	exporter := NewExporter(repo, defaultPicker{}, nil, renderer, "")

	doc, handle, err := exporter.Export(context.Background(), day(2025, 3, 12))
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if len(doc.Rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(doc.Rows))
	}
	if doc.InternName != "Hsin-Yu" {
		t.Errorf("unexpected intern name %q", doc.InternName)
	}
	if doc.Department != "Acme" {
		t.Errorf("unexpected department %q", doc.Department)
	}
	if !almostEqual(doc.TotalBillableHours, 16.0) {
		t.Errorf("expected total 16.0, got %v", doc.TotalBillableHours)
	}
	if doc.Rows[0].FeedbackText != "Nice." {
		t.Errorf("unexpected feedback %q", doc.Rows[0].FeedbackText)
	}
	if handle.Path() != "/tmp/timesheet.html" {
		t.Errorf("unexpected handle path %q", handle.Path())
	}
	if renderer.calls != 1 {
		t.Errorf("expected one render, got %d", renderer.calls)
	}
}

func TestExport_CancelledPicker(t *testing.T) {
	repo := &fakeRepo{
		records: []*record.Record{rec(1, day(2025, 3, 10), "09:00", "18:00", "work")},
	}
	renderer := &fakeRenderer{handle: &fakeHandle{}}
	exporter := NewExporter(repo, cancelPicker{}, nil, renderer, "")

	_, _, err := exporter.Export(context.Background(), day(2025, 3, 12))
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if repo.listCalls != 0 || repo.commentCalls != 0 {
		t.Errorf("cancel must reach the store zero times, got %d list and %d comment calls",
			repo.listCalls, repo.commentCalls)
	}
	if renderer.calls != 0 {
		t.Errorf("cancel must not render, got %d calls", renderer.calls)
	}
}

func TestExport_NoRecordsInRange(t *testing.T) {
	repo := &fakeRepo{
		records: []*record.Record{rec(1, day(2025, 2, 3), "09:00", "18:00", "old work")},
	}
	renderer := &fakeRenderer{handle: &fakeHandle{}}
	exporter := NewExporter(repo, defaultPicker{}, nil, renderer, "")

	_, _, err := exporter.Export(context.Background(), day(2025, 3, 12))
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
	if renderer.calls != 0 {
		t.Errorf("empty range must not render, got %d calls", renderer.calls)
	}
}

func TestExport_FetchFailureIsFatal(t *testing.T) {
	wantErr := errors.New("disk error")
	repo := &fakeRepo{listErr: wantErr}
	renderer := &fakeRenderer{handle: &fakeHandle{}}
	exporter := NewExporter(repo, defaultPicker{}, nil, renderer, "")

	_, _, err := exporter.Export(context.Background(), day(2025, 3, 12))
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected fetch error to propagate, got %v", err)
	}
	if renderer.calls != 0 {
		t.Errorf("failed fetch must not render, got %d calls", renderer.calls)
	}
}

func TestExport_ProfileFailureDegrades(t *testing.T) {
	repo := &fakeRepo{
		records:    []*record.Record{rec(1, day(2025, 3, 10), "09:00", "18:00", "work")},
		profileErr: errors.New("corrupt row"),
	}
	renderer := &fakeRenderer{handle: &fakeHandle{}}
	exporter := NewExporter(repo, defaultPicker{}, nil, renderer, "")

	doc, _, err := exporter.Export(context.Background(), day(2025, 3, 12))
	if err != nil {
		t.Fatalf("expected profile failure to degrade, got %v", err)
	}
	if doc.InternName != "Your Name" {
		t.Errorf("expected placeholder name, got %q", doc.InternName)
	}
}

func TestExport_RenderFailure(t *testing.T) {
	repo := &fakeRepo{
		records: []*record.Record{rec(1, day(2025, 3, 10), "09:00", "18:00", "work")},
	}
	renderer := &fakeRenderer{err: errors.New("permission denied")}
	exporter := NewExporter(repo, defaultPicker{}, nil, renderer, "")

	_, _, err := exporter.Export(context.Background(), day(2025, 3, 12))
	if err == nil {
		t.Fatal("expected render error")
	}
}

func TestDefaultRange(t *testing.T) {
	// Wednesday March 12 2025 sits in the Monday 10th to Sunday 16th week.
	r := DefaultRange(day(2025, 3, 12))

	if !dateutil.SameDay(r.Start, day(2025, 3, 10)) {
		t.Errorf("unexpected start %v", r.Start)
	}
	if !dateutil.SameDay(r.End, day(2025, 3, 16)) {
		t.Errorf("unexpected end %v", r.End)
	}
	if r.End.Hour() != 23 || r.End.Minute() != 59 {
		t.Errorf("expected end of day bound, got %v", r.End)
	}
}

func TestStaticRange(t *testing.T) {
	t.Run("complete range is returned as-is", func(t *testing.T) {
		s := StaticRange{Start: day(2025, 3, 3), End: day(2025, 3, 9)}
		got, ok, err := s.Pick(context.Background(), DefaultRange(day(2025, 3, 12)))
		if err != nil {
			t.Fatalf("Pick failed: %v", err)
		}
		if !ok {
			t.Fatal("expected ok")
		}
		if !got.Start.Equal(s.Start) || !got.End.Equal(s.End) {
			t.Errorf("unexpected range %v", got)
		}
	})

	t.Run("missing bound is an error", func(t *testing.T) {
		s := StaticRange{Start: day(2025, 3, 3)}
		_, _, err := s.Pick(context.Background(), DefaultRange(day(2025, 3, 12)))
		if err == nil {
			t.Error("expected error for incomplete range")
		}
	})
}
