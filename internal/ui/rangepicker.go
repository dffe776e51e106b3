package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hsinyuc/worklog/internal/dateutil"
	"github.com/hsinyuc/worklog/internal/timesheet"
)

// RangePicker is the interactive date range selector for exports. It
// proposes the default week and lets the user adjust or dismiss it.
type RangePicker struct{}

// Pick runs the picker and reports the chosen range. ok is false when the
// user dismissed it.
func (RangePicker) Pick(_ context.Context, def dateutil.DateRange) (dateutil.DateRange, bool, error) {
	model := newRangePickerModel(def)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return dateutil.DateRange{}, false, fmt.Errorf("running range picker: %w", err)
	}

	m, ok := final.(rangePickerModel)
	if !ok || m.cancelled {
		return dateutil.DateRange{}, false, nil
	}
	return dateutil.DateRange{Start: m.result.Start, End: dateutil.EndOfDay(m.result.End)}, true, nil
}

var (
	pickerTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	pickerLabelStyle = lipgloss.NewStyle().Width(7)
	pickerFocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	pickerErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	pickerHelpStyle  = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

type rangePickerModel struct {
	inputs    [2]textinput.Model
	focus     int
	errMsg    string
	cancelled bool
	done      bool
	result    dateutil.DateRange
}

func newRangePickerModel(def dateutil.DateRange) rangePickerModel {
	start := textinput.New()
	start.Placeholder = "YYYY-MM-DD"
	start.SetValue(def.Start.Format("2006-01-02"))
	start.CharLimit = 10
	start.Width = 12
	start.Focus()

	end := textinput.New()
	end.Placeholder = "YYYY-MM-DD"
	end.SetValue(def.End.Format("2006-01-02"))
	end.CharLimit = 10
	end.Width = 12

	return rangePickerModel{inputs: [2]textinput.Model{start, end}}
}

func (m rangePickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m rangePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, nil
		case "enter":
			startVal := strings.TrimSpace(m.inputs[0].Value())
			endVal := strings.TrimSpace(m.inputs[1].Value())
			if startVal == "" || endVal == "" {
				m.errMsg = "both start and end dates are required"
				return m, nil
			}
			r, err := dateutil.NewDateRange(startVal, endVal)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.result = *r
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m rangePickerModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	labels := [2]string{"Start", "End"}
	view := pickerTitleStyle.Render("Select export range") + "\n"
	for i, input := range m.inputs {
		label := pickerLabelStyle.Render(labels[i] + ":")
		if i == m.focus {
			label = pickerFocusStyle.Render(label)
		}
		view += fmt.Sprintf("%s %s\n", label, input.View())
	}
	if m.errMsg != "" {
		view += pickerErrorStyle.Render(m.errMsg) + "\n"
	}
	view += pickerHelpStyle.Render("enter confirm · tab switch · esc cancel")
	return view
}

var _ timesheet.RangePicker = RangePicker{}
