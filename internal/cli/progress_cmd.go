package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rampkit/rampup/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	var byWeek, showTargets bool

	cmd := &cobra.Command{
		Use:   "progress REP",
		Short: "Show progress by phase or week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rep, err := resolveRep(ctx, app, args[0])
			if err != nil {
				return err
			}
			report, err := app.Reports.BuildReport(ctx, rep.ID, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("%s\n\n", formatter.FormatOverall(report))
			if byWeek {
				fmt.Printf("%s\n", formatter.FormatWeeks(report.Weeks))
			} else {
				fmt.Printf("%s\n", formatter.FormatPhases(report.Phases))
			}
			if showTargets {
				fmt.Printf("\n%s\n%s\n", formatter.Header("Activity Targets"),
					formatter.FormatTargets(app.Catalog.Targets()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byWeek, "weeks", false, "Break progress down by week instead of phase")
	cmd.Flags().BoolVar(&showTargets, "targets", false, "Show expected activity volume targets")

	return cmd
}
