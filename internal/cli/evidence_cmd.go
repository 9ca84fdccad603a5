package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rampkit/rampup/internal/domain"
	"github.com/spf13/cobra"
)

func newEvidenceCmd(app *App) *cobra.Command {
	var typeStr, value, name string

	cmd := &cobra.Command{
		Use:   "evidence REP DAY",
		Short: "Attach certification evidence to a checkpoint day",
		Args:  cobra.ExactArgs(2),
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

			if name == "" {
				name = value
			}
			ev := domain.Evidence{
				Type:  domain.EvidenceType(typeStr),
				Value: value,
				Name:  name,
				Date:  time.Now(),
			}
			if err := app.Onboarding.AttachEvidence(ctx, rep.ID, day, ev); err != nil {
				return err
			}

			fmt.Printf("Attached %s evidence to day %d for %s\n", typeStr, day, rep.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&typeStr, "type", string(domain.EvidenceLink), "Evidence type (link|file)")
	cmd.Flags().StringVar(&value, "value", "", "URL or file path")
	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the value)")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
