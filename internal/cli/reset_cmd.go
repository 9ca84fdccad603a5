package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset REP",
		Short: "Clear a rep's activity state and evidence",
		Long:  "Clear a rep's activity state and evidence. The start date is kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !force {
				if !app.interactive() {
					return fmt.Errorf("refusing to reset without --force on a non-interactive terminal")
				}
				confirmed := false
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title(fmt.Sprintf("Reset all progress for %s?", rep.Name)).
							Description("Every checked activity and attached evidence will be cleared.").
							Value(&confirmed),
					),
				).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Onboarding.Reset(ctx, rep.ID); err != nil {
				return err
			}
			fmt.Printf("Reset progress for %s\n", rep.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
