package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsinyuc/worklog/internal/config"
	"github.com/hsinyuc/worklog/internal/record"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   record.Repository
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given repository and config.
func NewApp(repo record.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "worklog",
		Short: "A CLI work journal for interns",
		Long: `Worklog is a CLI work journal for internships.

It keeps dated work records with supervisor feedback, summarizes them
with an LLM, and exports weekly timesheets ready for print or
spreadsheet submission.`,
		SilenceUsage: true,
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.commentCmd())
	a.root.AddCommand(a.profileCmd())
	a.root.AddCommand(a.summarizeCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("worklog %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
