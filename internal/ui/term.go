package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Titles and headers: bold
	colorHeader = color.New(color.Bold)

	// Dates and times: cyan
	colorDate = color.New(color.FgCyan)

	// Tags: yellow
	colorTag = color.New(color.FgYellow)

	// Feedback: green to stand out from the intern's own text
	colorFeedback = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// truncate shortens s to at most width runes, ending with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatDate formats date and time text.
func formatDate(s string) string {
	return colorDate.Sprint(s)
}

// formatTag formats a tag.
func formatTag(s string) string {
	return colorTag.Sprint(s)
}

// formatFeedback formats supervisor feedback text.
func formatFeedback(s string) string {
	return colorFeedback.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
