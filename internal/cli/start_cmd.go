package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rampkit/rampup/internal/schedule"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "start REP",
		Short: "Set a rep's ramp start date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			if dateStr != "" {
				start, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", dateStr, err)
				}
			}

			// Mondays make week boundaries line up with calendar weeks, but
			// any weekday is accepted. Offer the next Monday on a terminal.
			if start.Weekday() != time.Monday && app.interactive() {
				monday := schedule.NextMonday(start)
				useMonday := true
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title(fmt.Sprintf("%s is a %s. Start on Monday %s instead?",
								start.Format("Jan 2"), start.Weekday(), monday.Format("Jan 2"))).
							Value(&useMonday),
					),
				).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if useMonday {
					start = monday
				}
			}

			if err := app.Onboarding.SetStartDate(ctx, rep.ID, start); err != nil {
				return err
			}

			fmt.Printf("%s starts day 1 on %s\n", rep.Name, start.Format("Mon, Jan 2 2006"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Start date (YYYY-MM-DD, default today)")

	return cmd
}
