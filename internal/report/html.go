// Package report materializes a timesheet document as a printable file.
//
// The HTML renderer produces a fixed-layout A4 form meant to be handed to
// the system browser, where printing to PDF preserves the layout without
// bundling fonts. The XLSX renderer targets spreadsheet workflows instead.
package report

import (
	"fmt"
	"html/template"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/hsinyuc/worklog/internal/timesheet"
)

// MinRows pads the table so short weeks still look like a full form.
const MinRows = 5

// HTMLRenderer writes the timesheet as a printable HTML file.
type HTMLRenderer struct {
	outputDir   string
	outPath     string
	openCommand string
}

// NewHTMLRenderer creates a renderer writing into outputDir. openCommand
// overrides the platform browser-open command when non-empty.
func NewHTMLRenderer(outputDir, openCommand string) *HTMLRenderer {
	return &HTMLRenderer{outputDir: outputDir, openCommand: openCommand}
}

// SetOutputPath pins the output to an exact file path instead of a
// generated name under the output directory.
func (r *HTMLRenderer) SetOutputPath(path string) { r.outPath = path }

// Render writes the document and returns a handle to the written file.
func (r *HTMLRenderer) Render(doc *timesheet.Document) (timesheet.PrintHandle, error) {
	path := r.outPath
	if path == "" {
		path = filepath.Join(r.outputDir, fileName(doc, "html"))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := timesheetTemplate.Execute(f, templateData(doc)); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("rendering report: %w", err)
	}

	return &PrintView{path: path, openCommand: r.openCommand}, nil
}

// PrintView is a rendered report on disk. Open hands the file to the
// system browser for print-to-PDF; Close removes it.
type PrintView struct {
	path        string
	openCommand string
	removed     bool
}

// Path returns the location of the rendered file.
func (v *PrintView) Path() string { return v.path }

// Open launches the configured or platform open command on the file.
func (v *PrintView) Open() error {
	name, args := openCommand(v.openCommand, v.path)
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("opening %s: %w", v.path, err)
	}
	return nil
}

// Close removes the rendered file. Calling it twice is safe.
func (v *PrintView) Close() error {
	if v.removed {
		return nil
	}
	v.removed = true
	if err := os.Remove(v.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func openCommand(override, path string) (string, []string) {
	if override != "" {
		parts := strings.Fields(override)
		return parts[0], append(parts[1:], path)
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

func fileName(doc *timesheet.Document, ext string) string {
	slug := strings.ToLower(strings.ReplaceAll(doc.PeriodLabel, " ", "-"))
	if slug == "" {
		slug = "report"
	}
	return "timesheet-" + slug + "." + ext
}

// reportData is the template payload: document rows followed by blank
// padding rows up to the minimum table height.
type reportData struct {
	*timesheet.Document
	PaddingRows []struct{}
}

func templateData(doc *timesheet.Document) reportData {
	data := reportData{Document: doc}
	if n := MinRows - len(doc.Rows); n > 0 {
		data.PaddingRows = make([]struct{}, n)
	}
	return data
}

// formatHours renders billable hours without trailing zeros.
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

var timesheetTemplate = template.Must(template.New("timesheet").Funcs(template.FuncMap{
	"hours": formatHours,
}).Parse(timesheetHTML))

const timesheetHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Weekly Intern Timesheet</title>
<style>
  @page { size: A4; margin: 0.4cm; }
  body { font-family: Georgia, "Times New Roman", serif; color: #000; background: #fff; margin: 0; }
  .container { padding: 5px 30px; box-sizing: border-box; }
  h2 { text-align: center; margin-bottom: 10px; font-size: 24px; letter-spacing: 2px; }
  .meta { width: 100%; font-size: 15px; margin-bottom: 10px; }
  .meta td { padding: 2px 0; }
  table.sheet { width: 100%; border-collapse: collapse; margin-bottom: 20px; font-size: 14px; table-layout: fixed; }
  table.sheet th, table.sheet td { border: 1px solid #000; padding: 8px; }
  table.sheet th { text-align: center; }
  td.center { text-align: center; }
  td.summary { text-align: left; vertical-align: top; }
  td.feedback { vertical-align: top; white-space: pre-wrap; line-height: 1.4; }
  tr.blank td { height: 38px; }
  table.sign { width: 100%; border-collapse: collapse; border: none; margin: 0; text-align: center; table-layout: fixed; }
  table.sign th { border: none; border-right: 1px solid #000; border-bottom: 1px solid #000; padding: 8px; }
  table.sign th:last-child { border-right: none; }
  table.sign td { border: none; border-right: 1px solid #000; height: 60px; vertical-align: bottom; padding: 8px; }
  table.sign td:last-child { border-right: none; }
  .notes { font-size: 12px; color: #666; border-top: 1px solid #ccc; padding-top: 10px; }
</style>
</head>
<body>
<div class="container">
  <h2>Weekly Intern Timesheet</h2>
  <table class="meta">
    <tr>
      <td><strong>Period</strong>: {{.PeriodLabel}}</td>
      <td><strong>Department</strong>: {{.Department}}</td>
      <td><strong>Intern</strong>: {{.InternName}}</td>
    </tr>
  </table>
  <table class="sheet">
    <colgroup>
      <col style="width: 11%"><col style="width: 6%"><col style="width: 9%"><col style="width: 9%">
      <col style="width: 5%"><col style="width: 30%"><col style="width: 30%">
    </colgroup>
    <thead>
      <tr>
        <th rowspan="2">Date</th>
        <th rowspan="2">Day</th>
        <th colspan="2">Working Hours</th>
        <th rowspan="2">Hours</th>
        <th colspan="2">Work Summary</th>
      </tr>
      <tr>
        <th>From</th>
        <th>To</th>
        <th>Intern Notes</th>
        <th>Supervisor Feedback</th>
      </tr>
    </thead>
    <tbody>
{{- range .Rows}}
      <tr>
        <td class="center">{{.DateLabel}}</td>
        <td class="center">{{.WeekdayLabel}}</td>
        <td class="center">{{.StartTime}}</td>
        <td class="center">{{.EndTime}}</td>
        <td class="center">{{hours .BillableHours}}</td>
        <td class="summary">{{range .SummaryItems}}{{.}}<br>{{end}}</td>
        <td class="feedback">{{.FeedbackText}}</td>
      </tr>
{{- end}}
{{- range .PaddingRows}}
      <tr class="blank"><td></td><td></td><td></td><td></td><td></td><td></td><td></td></tr>
{{- end}}
      <tr>
        <td class="center"><strong>Total</strong></td>
        <td colspan="6" class="center">{{hours .TotalBillableHours}} hours (this week)</td>
      </tr>
      <tr>
        <td class="center"><strong>Amount</strong></td>
        <td colspan="6"></td>
      </tr>
      <tr>
        <td colspan="7" style="padding: 0;">
          <table class="sign">
            <tr>
              <th style="width: 25%">Approval</th>
              <th style="width: 25%">HR</th>
              <th style="width: 25%">Supervisor</th>
              <th style="width: 25%">Prepared by</th>
            </tr>
            <tr>
              <td></td><td></td><td></td><td></td>
            </tr>
          </table>
        </td>
      </tr>
    </tbody>
  </table>
  <div class="notes">
    <p><strong>Notes</strong>:<br>
    1. Submit the previous week's timesheet every Monday.<br>
    2. Late submissions are paid out with the following month's stipend.<br>
    3. Remote work requires supervisor approval; hours exclude meal breaks.<br>
    4. Hours are verified against the attendance system.</p>
  </div>
</div>
</body>
</html>
`
