package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	var (
		copyContent bool
		noColor     bool
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a record with its feedback",
		Long: `Display a single record in full, including supervisor feedback.

--copy puts the record content on the system clipboard.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			r, err := a.repo.GetRecord(ctx, id)
			if err != nil {
				return fmt.Errorf("fetching record: %w", err)
			}

			fmt.Printf("#%d %s\n", r.ID, formatHeader(r.Title))
			fmt.Printf("%s", formatDate(r.Date.Format("Monday, January 2, 2006")))
			if r.StartTime != "" && r.EndTime != "" {
				fmt.Printf("  %s", formatDate(r.StartTime+"-"+r.EndTime))
			}
			fmt.Println()
			if len(r.Tags) > 0 {
				fmt.Println(formatTag(tagSuffix(r.Tags)))
			}
			fmt.Println()
			fmt.Println(r.Content)

			comments, err := a.repo.ListComments(ctx, r.ID)
			if err != nil {
				return fmt.Errorf("fetching comments: %w", err)
			}
			if len(comments) > 0 {
				fmt.Printf("\n%s\n", formatHeader("Feedback"))
				for _, c := range comments {
					fmt.Printf("  %s %s\n",
						formatMuted(c.CreatedAt.Format("2006-01-02")),
						formatFeedback(c.Content),
					)
				}
			}

			if copyContent {
				if err := clipboard.WriteAll(r.Content); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println(formatMuted("\nContent copied to clipboard."))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&copyContent, "copy", false, "Copy record content to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid record id %q", s)
	}
	return id, nil
}
