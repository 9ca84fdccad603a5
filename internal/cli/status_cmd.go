package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rampkit/rampup/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status REP",
		Short: "Show a rep's ramp dashboard",
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

			fmt.Printf("%s\n", formatter.FormatStatus(report))
			return nil
		},
	}
}
