package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hsinyuc/worklog/internal/dateutil"
	"github.com/hsinyuc/worklog/internal/report"
	"github.com/hsinyuc/worklog/internal/timesheet"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		refDate   string
		format    string
		outPath   string
		noOpen    bool
		noSummary bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a weekly timesheet",
		Long: `Export the week's records as a printable timesheet.

Without flags an interactive picker proposes the current Monday-Sunday
week. --start and --end skip the picker; --date selects another week.
The HTML format opens in the browser for print-to-PDF.`,
		Example: `  worklog export
  worklog export --date=2025-03-12
  worklog export --start=2025-03-10 --end=2025-03-16 --format=xlsx
  worklog export --out=week11.html --no-open`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := time.Now()
			if refDate != "" {
				parsed, err := dateutil.ParseDate(refDate)
				if err != nil {
					return err
				}
				ref = parsed
			}

			picker, err := a.exportPicker(cmd, startDate, endDate)
			if err != nil {
				return err
			}

			renderer, err := a.exportRenderer(format, outPath)
			if err != nil {
				return err
			}

			var summarizer timesheet.Summarizer
			if !noSummary {
				s, err := a.newSummarizer()
				if err != nil {
					fmt.Printf("Warning: %v; falling back to local summaries.\n", err)
				} else {
					summarizer = s
				}
			}

			exporter := timesheet.NewExporter(a.repo, picker, summarizer, renderer, a.config.Report.Department)

			doc, handle, err := exporter.Export(context.Background(), ref)
			switch {
			case errors.Is(err, timesheet.ErrCancelled):
				fmt.Println("Export cancelled.")
				return nil
			case errors.Is(err, timesheet.ErrNoRecords):
				fmt.Println("No records in the selected date range; nothing to export.")
				return nil
			case err != nil:
				return err
			}

			fmt.Printf("Exported %d records, %s hours total\n", len(doc.Rows), formatHours(doc.TotalBillableHours))
			fmt.Printf("Report written to %s\n", handle.Path())

			if !noOpen {
				if err := handle.Open(); err != nil {
					fmt.Printf("Warning: %v\n", err)
					fmt.Println("Open the file manually to print it.")
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Range start (YYYY-MM-DD, skips the picker)")
	cmd.Flags().StringVar(&endDate, "end", "", "Range end (YYYY-MM-DD, skips the picker)")
	cmd.Flags().StringVar(&refDate, "date", "", "Any date inside the week to export (default: today)")
	cmd.Flags().StringVar(&format, "format", "html", "Output format: html or xlsx")
	cmd.Flags().StringVar(&outPath, "out", "", "Exact output file path")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Do not open the report after writing")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "Skip LLM summarization, use record text as-is")

	return cmd
}

// exportPicker returns the static range when both bounds were passed and
// the interactive picker otherwise.
func (a *App) exportPicker(cmd *cobra.Command, startDate, endDate string) (timesheet.RangePicker, error) {
	if !cmd.Flags().Changed("start") && !cmd.Flags().Changed("end") {
		return RangePicker{}, nil
	}
	if startDate == "" || endDate == "" {
		return nil, fmt.Errorf("--start and --end must be used together")
	}
	dateRange, err := dateutil.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return timesheet.StaticRange{Start: dateRange.Start, End: dateutil.EndOfDay(dateRange.End)}, nil
}

func (a *App) exportRenderer(format, outPath string) (timesheet.Renderer, error) {
	cfg := a.config.Report
	switch format {
	case "html", "":
		r := report.NewHTMLRenderer(cfg.OutputDir, cfg.OpenCommand)
		if outPath != "" {
			r.SetOutputPath(outPath)
		}
		return r, nil
	case "xlsx":
		r := report.NewXLSXRenderer(cfg.OutputDir, cfg.OpenCommand)
		if outPath != "" {
			r.SetOutputPath(outPath)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown format %q (use html or xlsx)", format)
	}
}

func formatHours(h float64) string {
	return fmt.Sprintf("%g", h)
}
