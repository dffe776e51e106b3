package timesheet

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hsinyuc/worklog/internal/record"
)

// NoWorkSummary is the sentinel used when summarization succeeds but
// returns nothing of substance.
const NoWorkSummary = "(no concrete work items this period)"

// Summarizer produces a natural-language summary of free-text content.
// It models an unreliable remote call; failures are isolated per call.
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}

// Builder assembles a report document from collected entries.
type Builder struct {
	summarizer Summarizer
}

// NewBuilder creates a Builder. A nil summarizer skips the remote call and
// uses the local fallback summary for every entry.
func NewBuilder(summarizer Summarizer) *Builder {
	return &Builder{summarizer: summarizer}
}

// BuildOptions carries per-export metadata for the report header.
type BuildOptions struct {
	ReferenceDate time.Time
	Department    string
	Profile       *record.Profile // nil falls back to placeholder metadata
}

// Build summarizes every entry concurrently, computes billable hours, and
// assembles the rows in chronological order.
//
// Summarization calls are issued one per entry with no ordering between
// them; the builder waits for all of them to settle. A failed or empty
// summary degrades that entry only. Row order comes solely from the sort
// by date, never from completion order; entries on the same date keep
// their input order.
func (b *Builder) Build(ctx context.Context, entries []*Entry, opts BuildOptions) (*Document, error) {
	var wg sync.WaitGroup
	for _, e := range entries {
		wg.Add(1)
		go func(e *Entry) {
			defer wg.Done()
			e.Summary = b.summarize(ctx, e.Record.Content)
		}(e)
	}
	wg.Wait()

	sorted := make([]*Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Record.Date.Before(sorted[j].Record.Date)
	})

	doc := &Document{
		Rows:        make([]Row, 0, len(sorted)),
		PeriodLabel: PeriodLabel(opts.ReferenceDate),
	}

	profile := opts.Profile
	if profile == nil {
		profile = record.DefaultProfile()
	}
	doc.InternName = profile.Name
	doc.Department = opts.Department
	if doc.Department == "" {
		doc.Department = profile.Company
	}

	for _, e := range sorted {
		row, err := buildRow(e)
		if err != nil {
			return nil, err
		}
		doc.Rows = append(doc.Rows, row)
		doc.TotalBillableHours += row.BillableHours
	}

	return doc, nil
}

func buildRow(e *Entry) (Row, error) {
	start := e.Record.StartTime
	if start == "" {
		start = DefaultStartTime
	}
	end := e.Record.EndTime
	if end == "" {
		end = DefaultEndTime
	}

	duration, err := Duration(start, end)
	if err != nil {
		return Row{}, fmt.Errorf("record %d: %w", e.Record.ID, err)
	}

	return Row{
		DateLabel:     DateLabel(e.Record.Date),
		WeekdayLabel:  WeekdayLabel(e.Record.Date),
		StartTime:     start,
		EndTime:       end,
		BillableHours: BillableHours(duration),
		SummaryItems:  SummaryItems(e.Summary),
		FeedbackText:  e.Feedback,
	}, nil
}

// summarize resolves an entry's summary, never returning an empty string:
// a real summary, the no-work sentinel for blank results, or the local
// fallback when the call fails.
func (b *Builder) summarize(ctx context.Context, content string) string {
	if b.summarizer == nil {
		return fallbackOrSentinel(content)
	}

	result, err := b.summarizer.Summarize(ctx, content)
	if err != nil {
		return fallbackOrSentinel(content)
	}
	if strings.TrimSpace(result) == "" {
		return NoWorkSummary
	}
	return normalizeSummary(result)
}

func fallbackOrSentinel(content string) string {
	fallback := normalizeSummary(FallbackSummary(content))
	if fallback == "" {
		return NoWorkSummary
	}
	return fallback
}

// FallbackSummary restates content as a bullet list of its non-empty lines.
// It is deterministic and local, used when the remote summarization fails.
func FallbackSummary(content string) string {
	var bullets []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, "• "+line)
	}
	return strings.Join(bullets, "\n")
}

var blankRuns = regexp.MustCompile(`\n\s*\n`)

// normalizeSummary collapses runs of blank lines to single newlines and trims.
func normalizeSummary(s string) string {
	return strings.TrimSpace(blankRuns.ReplaceAllString(s, "\n"))
}

// SummaryItems splits a summary into display items, stripping bullet markers.
func SummaryItems(summary string) []string {
	var items []string
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "• ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}
