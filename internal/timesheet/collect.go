package timesheet

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hsinyuc/worklog/internal/dateutil"
	"github.com/hsinyuc/worklog/internal/record"
)

// Collector gathers the records for a date range and enriches them with
// their comments as feedback text.
type Collector struct {
	repo record.Repository
}

// NewCollector creates a Collector backed by the given repository.
func NewCollector(repo record.Repository) *Collector {
	return &Collector{repo: repo}
}

// Collect fetches the full record set, filters it to the inclusive date
// range at day granularity, and attaches each record's comments as feedback.
//
// A failed comment fetch degrades that record to empty feedback and never
// aborts collection. A failed record fetch is fatal: there is nothing to
// report without it. An empty result is not an error here; callers decide
// how to surface it.
func (c *Collector) Collect(ctx context.Context, start, end time.Time) ([]*Entry, error) {
	records, err := c.repo.ListRecords(ctx, record.SortDateAsc)
	if err != nil {
		return nil, fmt.Errorf("fetching records: %w", err)
	}

	startDay := dateutil.TruncateToDay(start)
	endDay := dateutil.TruncateToDay(end)

	var entries []*Entry
	for _, r := range records {
		day := dateutil.TruncateToDay(r.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		entries = append(entries, &Entry{Record: r})
	}

	// Comment fetches are independent; none may block or fail another.
	var wg sync.WaitGroup
	for _, e := range entries {
		wg.Add(1)
		go func(e *Entry) {
			defer wg.Done()
			comments, err := c.repo.ListComments(ctx, e.Record.ID)
			if err != nil {
				e.Feedback = ""
				return
			}
			e.Feedback = joinComments(comments)
		}(e)
	}
	wg.Wait()

	return entries, nil
}

func joinComments(comments []*record.Comment) string {
	bodies := make([]string, 0, len(comments))
	for _, c := range comments {
		bodies = append(bodies, c.Content)
	}
	return strings.Join(bodies, "\n")
}
