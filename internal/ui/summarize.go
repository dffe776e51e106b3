package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsinyuc/worklog/internal/llm"
)

func (a *App) summarizeCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "summarize <id>",
		Short: "Summarize a record with the configured LLM",
		Long: `Summarize a single record's content into concise work items.

Uses the provider and model from the config file. Export does this for
every record in the week; this command previews one.`,
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

			summarizer, err := a.newSummarizer()
			if err != nil {
				return err
			}

			summary, err := summarizer.Summarize(ctx, r.Content)
			if err != nil {
				return fmt.Errorf("summarizing record: %w", err)
			}

			fmt.Printf("#%d %s\n\n%s\n", r.ID, formatHeader(r.Title), summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

func (a *App) newSummarizer() (*llm.Summarizer, error) {
	client, err := llm.NewClient(a.config.LLM.Provider, a.config.LLM.Model, a.config.LLM.BaseURL, a.config.LLM.OllamaURL)
	if err != nil {
		return nil, fmt.Errorf("creating LLM client: %w", err)
	}
	return llm.NewSummarizer(client), nil
}
