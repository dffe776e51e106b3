package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hsinyuc/worklog/internal/record"
)

func (a *App) addCmd() *cobra.Command {
	var (
		content string
		date    string
		start   string
		end     string
		tags    []string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new work record",
		Long: `Add a new work record to your journal.

Example:
  worklog add "API pagination" --content="Implemented cursor pagination for /records" --date=2025-03-10 --start=09:00 --end=18:00 --tags=backend,api`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if content == "-" {
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading content from stdin: %w", err)
				}
				content = strings.TrimSpace(string(raw))
			}

			r, err := record.New(args[0], content, date, start, end, tags)
			if err != nil {
				return err
			}

			ctx := context.Background()
			if err := a.repo.CreateRecord(ctx, r); err != nil {
				return fmt.Errorf("creating record: %w", err)
			}

			clock := ""
			if r.StartTime != "" || r.EndTime != "" {
				clock = fmt.Sprintf(" %s-%s", r.StartTime, r.EndTime)
			}
			fmt.Printf("Created record #%d: %s %s%s%s\n",
				r.ID,
				r.Title,
				r.Date.Format("2006-01-02"),
				clock,
				tagSuffix(r.Tags),
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "What you worked on; \"-\" reads from stdin (required)")
	cmd.Flags().StringVar(&date, "date", "", "Record date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")

	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func tagSuffix(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return " [" + strings.Join(tags, ", ") + "]"
}
