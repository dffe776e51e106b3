package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsinyuc/worklog/internal/record"
)

func (a *App) commentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Manage supervisor feedback on records",
	}

	cmd.AddCommand(a.commentAddCmd())
	cmd.AddCommand(a.commentListCmd())

	return cmd
}

func (a *App) commentAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <record-id> [text]",
		Short:   "Attach feedback to a record",
		Example: `  worklog comment add 12 "Good error handling, add tests for the edge cases."`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			if _, err := a.repo.GetRecord(ctx, id); err != nil {
				return fmt.Errorf("fetching record: %w", err)
			}

			c, err := record.NewComment(id, args[1])
			if err != nil {
				return err
			}
			if err := a.repo.AddComment(ctx, c); err != nil {
				return fmt.Errorf("adding comment: %w", err)
			}

			fmt.Printf("Added comment #%d to record #%d\n", c.ID, id)
			return nil
		},
	}
}

func (a *App) commentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <record-id>",
		Short: "List a record's feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			if _, err := a.repo.GetRecord(ctx, id); err != nil {
				return fmt.Errorf("fetching record: %w", err)
			}

			comments, err := a.repo.ListComments(ctx, id)
			if err != nil {
				return fmt.Errorf("listing comments: %w", err)
			}

			if len(comments) == 0 {
				fmt.Println("No feedback on this record.")
				return nil
			}

			for _, c := range comments {
				fmt.Printf("#%d %s\n  %s\n",
					c.ID,
					formatMuted(c.CreatedAt.Format("2006-01-02 15:04")),
					formatFeedback(c.Content),
				)
			}
			return nil
		},
	}
}
