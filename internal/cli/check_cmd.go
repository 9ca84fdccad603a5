package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rampkit/rampup/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	var wholeDay bool

	cmd := &cobra.Command{
		Use:   "check REP DAY [INDEX]",
		Short: "Toggle checklist items",
		Long: "Toggle one checklist item by its 1-based index, or the whole day " +
			"with --all. Without an index, opens an interactive checklist on a terminal.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}
			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day number %q", args[1])
			}

			if wholeDay {
				if err := app.Onboarding.ToggleDay(ctx, rep.ID, day); err != nil {
					return err
				}
				view, err := app.Reports.BuildDay(ctx, rep.ID, day, time.Now())
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatDay(view))
				return nil
			}

			if len(args) == 3 {
				index, err := strconv.Atoi(args[2])
				if err != nil || index < 1 {
					return fmt.Errorf("invalid activity index %q", args[2])
				}
				done, err := app.Onboarding.ToggleActivity(ctx, rep.ID, day, index-1)
				if err != nil {
					return err
				}
				state := "unchecked"
				if done {
					state = "checked"
				}
				fmt.Printf("Day %d item %d %s\n", day, index, state)
				return nil
			}

			if !app.interactive() {
				return fmt.Errorf("no terminal detected; pass an activity index or --all")
			}
			return runChecklist(ctx, app, rep.ID, day)
		},
	}

	cmd.Flags().BoolVar(&wholeDay, "all", false, "Toggle every item of the day at once")

	return cmd
}
