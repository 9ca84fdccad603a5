package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rampkit/rampup/internal/cli/formatter"
	"github.com/rampkit/rampup/internal/domain"
	"github.com/spf13/cobra"
)

func newRepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rep",
		Short: "Manage the roster",
	}

	cmd.AddCommand(
		newRepAddCmd(app),
		newRepListCmd(app),
		newRepAssignCmd(app),
		newRepRemoveCmd(app),
	)

	return cmd
}

func newRepAddCmd(app *App) *cobra.Command {
	var name, email, roleStr, manager string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a rep to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// Prompt for missing fields on a terminal; otherwise require flags.
			if (name == "" || email == "") && app.interactive() {
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title("Name").
							Value(&name).
							Validate(func(s string) error {
								if strings.TrimSpace(s) == "" {
									return fmt.Errorf("name is required")
								}
								return nil
							}),
						huh.NewInput().
							Title("Email").
							Value(&email).
							Validate(func(s string) error {
								if !strings.Contains(s, "@") {
									return fmt.Errorf("email must contain @")
								}
								return nil
							}),
						huh.NewSelect[string]().
							Title("Role").
							Options(
								huh.NewOption("BDR", string(domain.RoleBDR)),
								huh.NewOption("Manager", string(domain.RoleManager)),
								huh.NewOption("Superadmin", string(domain.RoleSuperadmin)),
							).
							Value(&roleStr),
					),
				).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}

			role := domain.Role(roleStr)

			var managerID *string
			if manager != "" {
				mgr, err := resolveRep(ctx, app, manager)
				if err != nil {
					return err
				}
				managerID = &mgr.ID
			}

			rep, err := app.Roster.AddRep(ctx, name, email, role, managerID)
			if err != nil {
				return err
			}

			fmt.Printf("Added %s <%s> as %s [%s]\n", rep.Name, rep.Email, rep.Role, rep.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&roleStr, "role", string(domain.RoleBDR), "Role (bdr|manager|superadmin)")
	cmd.Flags().StringVar(&manager, "manager", "", "Manager (ID, email, or name)")

	return cmd
}

func newRepListCmd(app *App) *cobra.Command {
	var bdrsOnly bool
	var team string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reps",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var reps []*domain.Rep
			var err error
			switch {
			case team != "":
				mgr, rerr := resolveRep(ctx, app, team)
				if rerr != nil {
					return rerr
				}
				reps, err = app.Roster.ListTeam(ctx, mgr.ID)
			case bdrsOnly:
				reps, err = app.Roster.ListBDRs(ctx)
			default:
				reps, err = app.Roster.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(reps) == 0 {
				fmt.Println("No reps found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatRepList(reps))
			return nil
		},
	}

	cmd.Flags().BoolVar(&bdrsOnly, "bdrs", false, "Only show BDRs")
	cmd.Flags().StringVar(&team, "team", "", "Only show a manager's team")

	return cmd
}

func newRepAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign REP MANAGER",
		Short: "Assign a rep to a manager",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}
			mgr, err := resolveRep(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Roster.AssignManager(ctx, rep.ID, mgr.ID); err != nil {
				return err
			}
			fmt.Printf("Assigned %s to %s\n", rep.Name, mgr.Name)
			return nil
		},
	}
}

func newRepRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REP",
		Short: "Remove a rep and their onboarding data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Roster.RemoveRep(ctx, rep.ID); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", rep.Name)
			return nil
		},
	}
}
