package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hsinyuc/worklog/internal/timesheet"
)

// XLSXRenderer writes the timesheet as a spreadsheet workbook.
type XLSXRenderer struct {
	outputDir   string
	outPath     string
	openCommand string
}

// NewXLSXRenderer creates a renderer writing into outputDir. openCommand
// overrides the platform open command when non-empty.
func NewXLSXRenderer(outputDir, openCommand string) *XLSXRenderer {
	return &XLSXRenderer{outputDir: outputDir, openCommand: openCommand}
}

// SetOutputPath pins the output to an exact file path instead of a
// generated name under the output directory.
func (r *XLSXRenderer) SetOutputPath(path string) { r.outPath = path }

// Render writes the document and returns a handle to the written file.
func (r *XLSXRenderer) Render(doc *timesheet.Document) (timesheet.PrintHandle, error) {
	path := r.outPath
	if path == "" {
		path = filepath.Join(r.outputDir, fileName(doc, "xlsx"))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Timesheet"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "Period")
	write(2, 1, doc.PeriodLabel)
	write(3, 1, "Department")
	write(4, 1, doc.Department)
	write(5, 1, "Intern")
	write(6, 1, doc.InternName)

	headers := []string{"Date", "Day", "From", "To", "Hours", "Intern Notes", "Supervisor Feedback"}
	for i, h := range headers {
		write(i+1, 3, h)
	}

	row := 4
	for _, r := range doc.Rows {
		write(1, row, r.DateLabel)
		write(2, row, r.WeekdayLabel)
		write(3, row, r.StartTime)
		write(4, row, r.EndTime)
		write(5, row, r.BillableHours)
		write(6, row, strings.Join(r.SummaryItems, "\n"))
		write(7, row, r.FeedbackText)
		row++
	}

	write(1, row, "Total")
	write(5, row, doc.TotalBillableHours)

	_ = f.SetColWidth(sheet, "A", "A", 10)
	_ = f.SetColWidth(sheet, "B", "B", 8)
	_ = f.SetColWidth(sheet, "C", "D", 9)
	_ = f.SetColWidth(sheet, "E", "E", 8)
	_ = f.SetColWidth(sheet, "F", "G", 48)

	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	return &PrintView{path: path, openCommand: r.openCommand}, nil
}
