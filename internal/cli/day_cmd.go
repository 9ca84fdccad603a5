package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rampkit/rampup/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day REP [N]",
		Short: "Show a ramp day's checklist",
		Long:  "Show a ramp day's checklist. Without N, shows the rep's current day.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}

			now := time.Now()
			day := 0
			if len(args) == 2 {
				day, err = strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid day number %q", args[1])
				}
			} else {
				report, err := app.Reports.BuildReport(ctx, rep.ID, now)
				if err != nil {
					return err
				}
				if report.Pace.CurrentDay == nil {
					return fmt.Errorf("%s has no start date yet; run `rampup start %s` or pass a day number", rep.Name, rep.Name)
				}
				day = *report.Pace.CurrentDay
			}

			view, err := app.Reports.BuildDay(ctx, rep.ID, day, now)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatDay(view))
			return nil
		},
	}
}
