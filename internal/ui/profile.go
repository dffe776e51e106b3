package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hsinyuc/worklog/internal/record"
)

func (a *App) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or edit the intern profile",
		Long: `The profile supplies the name and company printed on exported
timesheets. Unset fields fall back to placeholders.`,
	}

	cmd.AddCommand(a.profileShowCmd())
	cmd.AddCommand(a.profileSetCmd())

	return cmd
}

func (a *App) profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := a.repo.GetProfile(context.Background())
			if err != nil {
				return fmt.Errorf("fetching profile: %w", err)
			}
			if p == nil {
				fmt.Println("No profile saved; exports will use placeholders.")
				p = record.DefaultProfile()
			}

			fmt.Printf("Name:      %s\n", p.Name)
			fmt.Printf("Company:   %s\n", p.Company)
			fmt.Printf("Position:  %s\n", p.Position)
			if p.Interests != "" {
				fmt.Printf("Interests: %s\n", p.Interests)
			}
			if p.Email != "" {
				fmt.Printf("Email:     %s\n", p.Email)
			}
			if p.GitHub != "" {
				fmt.Printf("GitHub:    %s\n", p.GitHub)
			}
			if p.LinkedIn != "" {
				fmt.Printf("LinkedIn:  %s\n", p.LinkedIn)
			}
			return nil
		},
	}
}

func (a *App) profileSetCmd() *cobra.Command {
	var (
		name      string
		company   string
		position  string
		interests string
		email     string
		github    string
		linkedin  string
	)

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Set profile fields",
		Example: `  worklog profile set --name="Hsin-Yu Chang" --company="eLand" --position=Intern`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			p, err := a.repo.GetProfile(ctx)
			if err != nil {
				return fmt.Errorf("fetching profile: %w", err)
			}
			if p == nil {
				p = record.DefaultProfile()
			}

			set := func(flag string, dst *string, v string) {
				if cmd.Flags().Changed(flag) {
					*dst = v
				}
			}
			set("name", &p.Name, name)
			set("company", &p.Company, company)
			set("position", &p.Position, position)
			set("interests", &p.Interests, interests)
			set("email", &p.Email, email)
			set("github", &p.GitHub, github)
			set("linkedin", &p.LinkedIn, linkedin)
			p.UpdatedAt = time.Now()

			if err := a.repo.SaveProfile(ctx, p); err != nil {
				return fmt.Errorf("saving profile: %w", err)
			}

			fmt.Println("Profile saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Intern name")
	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVar(&position, "position", "", "Position title")
	cmd.Flags().StringVar(&interests, "interests", "", "Interests")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&github, "github", "", "GitHub profile URL")
	cmd.Flags().StringVar(&linkedin, "linkedin", "", "LinkedIn profile URL")

	return cmd
}
