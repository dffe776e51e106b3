package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hsinyuc/worklog/internal/dateutil"
	"github.com/hsinyuc/worklog/internal/record"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		search    string
		sortOrder string
		all       bool
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work records",
		Long: `List work records, newest first by default.

With no flags, lists the current week's records (Monday to Sunday).
--all lists everything; --start/--end narrow to a date range.`,
		Example: `  worklog list
  worklog list --all
  worklog list --start=2025-03-10 --end=2025-03-16
  worklog list --search=pagination --sort=asc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			order := record.SortDateDesc
			switch sortOrder {
			case "asc", "date-asc":
				order = record.SortDateAsc
			case "desc", "date-desc", "":
			default:
				return fmt.Errorf("invalid sort order %q (use asc or desc)", sortOrder)
			}

			ctx := context.Background()
			records, err := a.listRecordsFor(ctx, cmd, startDate, endDate, all, order)
			if err != nil {
				return err
			}

			if search != "" {
				matched := records[:0]
				for _, r := range records {
					if r.Matches(search) {
						matched = append(matched, r)
					}
				}
				records = matched
			}

			if len(records) == 0 {
				fmt.Println("No records found.")
				return nil
			}

			// Leave room for the id, clock and tags columns.
			maxTitle := termWidth() - 30

			var currentDate string
			for _, r := range records {
				date := r.Date.Format("2006-01-02")
				if date != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					fmt.Printf("=== %s ===\n", formatDate(date))
					currentDate = date
				}

				clock := "           "
				if r.StartTime != "" && r.EndTime != "" {
					clock = fmt.Sprintf("%s-%s", r.StartTime, r.EndTime)
				}
				fmt.Printf("  #%d %s %s%s\n",
					r.ID,
					formatMuted(clock),
					truncate(r.Title, maxTitle),
					formatTag(tagSuffix(r.Tags)),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")
	cmd.Flags().StringVar(&search, "search", "", "Filter by title, content or tag")
	cmd.Flags().StringVar(&sortOrder, "sort", "desc", "Date order: asc or desc")
	cmd.Flags().BoolVar(&all, "all", false, "List all records regardless of date")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

// listRecordsFor resolves the listing scope: explicit range, everything,
// or the current week when neither is asked for.
func (a *App) listRecordsFor(ctx context.Context, cmd *cobra.Command, startDate, endDate string, all bool, order record.SortOrder) ([]*record.Record, error) {
	if all {
		records, err := a.repo.ListRecords(ctx, order)
		if err != nil {
			return nil, fmt.Errorf("listing records: %w", err)
		}
		return records, nil
	}

	var start, end time.Time
	if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
		dateRange, err := dateutil.NewDateRange(startDate, endDate)
		if err != nil {
			return nil, err
		}
		start, end = dateRange.Start, dateRange.End
	} else {
		start, end = dateutil.WeekRange(time.Now())
	}

	records, err := a.repo.ListRecordsByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	if order == record.SortDateDesc {
		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}
	}
	return records, nil
}
