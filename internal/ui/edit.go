package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsinyuc/worklog/internal/dateutil"
	"github.com/hsinyuc/worklog/internal/record"
)

func (a *App) editCmd() *cobra.Command {
	var (
		title   string
		content string
		date    string
		start   string
		end     string
		tags    []string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing record",
		Long: `Edit fields of an existing record. Only the flags you pass change.

Example:
  worklog edit 12 --end=17:30 --tags=backend,review`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			r, err := a.repo.GetRecord(ctx, id)
			if err != nil {
				return fmt.Errorf("fetching record: %w", err)
			}

			if cmd.Flags().Changed("title") {
				r.Title = title
			}
			if cmd.Flags().Changed("content") {
				r.Content = content
			}
			if cmd.Flags().Changed("date") {
				d, err := dateutil.ParseDate(date)
				if err != nil {
					return err
				}
				r.Date = d
			}
			if cmd.Flags().Changed("start") {
				r.StartTime = start
			}
			if cmd.Flags().Changed("end") {
				r.EndTime = end
			}
			if cmd.Flags().Changed("tags") {
				r.Tags = tags
			}

			// Revalidate through the constructor so edits obey the same rules
			// as creation.
			updated, err := record.New(r.Title, r.Content, r.Date.Format("2006-01-02"), r.StartTime, r.EndTime, r.Tags)
			if err != nil {
				return err
			}
			updated.ID = r.ID
			updated.CreatedAt = r.CreatedAt

			if err := a.repo.UpdateRecord(ctx, updated); err != nil {
				return fmt.Errorf("updating record: %w", err)
			}

			fmt.Printf("Updated record #%d: %s\n", updated.ID, updated.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&content, "content", "", "New content")
	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM, empty to clear)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM, empty to clear)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "New tags (replaces existing)")

	return cmd
}

func (a *App) deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record and its feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			r, err := a.repo.GetRecord(ctx, id)
			if err != nil {
				return fmt.Errorf("fetching record: %w", err)
			}

			if !yes && !promptYesNo(fmt.Sprintf("Delete record #%d %q and its feedback?", r.ID, r.Title)) {
				fmt.Println("Aborted.")
				return nil
			}

			if err := a.repo.DeleteRecord(ctx, id); err != nil {
				return fmt.Errorf("deleting record: %w", err)
			}

			fmt.Printf("Deleted record #%d: %s\n", r.ID, r.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
